package daycount

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestYearFraction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		conv  Convention
		want  float64
	}{
		{"act360_halfYear", date(2026, time.January, 1), date(2026, time.July, 1), Act360, 181.0 / 360.0},
		{"act365_oneYear", date(2026, time.January, 1), date(2027, time.January, 1), Act365F, 1.0},
		{"thirty360_quarter", date(2026, time.March, 15), date(2026, time.June, 15), Thirty360E, 0.25},
		{"thirty360_eom", date(2026, time.January, 31), date(2026, time.February, 28), Thirty360E, float64(30-2) / 360.0},
		{"zeroSpan", date(2026, time.May, 5), date(2026, time.May, 5), Act360, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := YearFraction(tt.start, tt.end, tt.conv)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-6)
		})
	}
}

func TestYearFractionUnknownConvention(t *testing.T) {
	t.Parallel()

	_, err := YearFraction(date(2026, 1, 1), date(2026, 2, 1), Convention("BUS/252"))
	assert.Error(t, err)
}
