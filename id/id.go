// Package id generates time-sortable identifiers for calculation runs
// and journal rows.
package id

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	mu      sync.Mutex
	entropy = newEntropy()
)

func newEntropy() *ulid.MonotonicEntropy {
	var seed int64
	_ = binary.Read(cryptorand.Reader, binary.LittleEndian, &seed)
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	// monotonic entropy keeps IDs within one millisecond sortable
	return ulid.Monotonic(rand.New(rand.NewSource(seed)), 0)
}

// NewRunID returns a ULID string for a calculation run. IDs sort by
// generation time, which keeps journal queries by run cheap.
func NewRunID() string {
	mu.Lock()
	defer mu.Unlock()

	u, err := ulid.New(ulid.Timestamp(time.Now().UTC()), entropy)
	if err != nil {
		// only possible if the clock runs backwards past the ULID epoch
		panic(err)
	}
	return u.String()
}
