package id

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRunIDUniqueAndSortable(t *testing.T) {
	t.Parallel()

	const n = 100
	ids := make([]string, n)
	for i := range ids {
		ids[i] = NewRunID()
	}

	seen := map[string]bool{}
	for _, id := range ids {
		assert.Len(t, id, 26)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}

	// generation order matches lexical order
	assert.True(t, sort.StringsAreSorted(ids))
}
