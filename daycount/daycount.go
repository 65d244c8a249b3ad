// Package daycount provides year-fraction calculations for common day
// count conventions.
package daycount

import (
	"fmt"
	"time"
)

// Convention names a day count convention.
type Convention string

const (
	Act360  Convention = "ACT/360"
	Act365F Convention = "ACT/365F"
	Thirty360E Convention = "30E/360"
)

// YearFraction computes the year fraction between two dates under the
// given convention. An unknown convention is an error rather than a
// silent fallback.
func YearFraction(start, end time.Time, conv Convention) (float64, error) {
	switch conv {
	case Act360:
		return days(start, end) / 360.0, nil
	case Act365F:
		return days(start, end) / 365.0, nil
	case Thirty360E:
		// 30E/360 Eurobond basis: day-of-month capped at 30
		d1 := start.Day()
		if d1 > 30 {
			d1 = 30
		}
		d2 := end.Day()
		if d2 > 30 {
			d2 = 30
		}
		y1, m1 := start.Year(), int(start.Month())
		y2, m2 := end.Year(), int(end.Month())
		return float64(360*(y2-y1)+30*(m2-m1)+(d2-d1)) / 360.0, nil
	default:
		return 0, fmt.Errorf("unknown day count convention %q", conv)
	}
}

func days(start, end time.Time) float64 {
	return end.Sub(start).Hours() / 24
}
