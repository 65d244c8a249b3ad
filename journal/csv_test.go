package journal

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVWritesHeaderAndRows(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "results.csv")
	j, err := NewCSV(path)
	require.NoError(t, err)

	require.NoError(t, j.RecordRun(RunRecord{RunID: "01RUN"}))
	require.NoError(t, j.RecordResult(testResult("01RUN")))
	require.NoError(t, j.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "run_id", rows[0][0])
	assert.Equal(t, "computed_at", rows[0][8])

	assert.Equal(t, "01RUN", rows[1][0])
	assert.Equal(t, "FX-1", rows[1][1])
	assert.Equal(t, "PresentValue", rows[1][2])
	assert.Equal(t, "16.500000", rows[1][5])
	assert.Equal(t, StatusOK, rows[1][6])
}
