package marketdata

import (
	"sort"
	"time"
)

// SeriesPoint is a dated observation in a time series.
type SeriesPoint struct {
	Date  time.Time
	Value float64
}

// LocalDateSeries is an immutable date-ordered series of observations,
// typically historical index fixings.
type LocalDateSeries struct {
	points []SeriesPoint
}

// SeriesOf builds a series from observations in any order.
func SeriesOf(points ...SeriesPoint) LocalDateSeries {
	sorted := make([]SeriesPoint, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })
	return LocalDateSeries{points: sorted}
}

func (s LocalDateSeries) Len() int {
	return len(s.points)
}

func (s LocalDateSeries) IsEmpty() bool {
	return len(s.points) == 0
}

// Value reports the observation on an exact date.
func (s LocalDateSeries) Value(date time.Time) (float64, bool) {
	for _, p := range s.points {
		if sameDay(p.Date, date) {
			return p.Value, true
		}
	}
	return 0, false
}

// LatestOnOrBefore reports the most recent observation not after the
// given date.
func (s LocalDateSeries) LatestOnOrBefore(date time.Time) (SeriesPoint, bool) {
	for i := len(s.points) - 1; i >= 0; i-- {
		if !s.points[i].Date.After(date) {
			return s.points[i], true
		}
	}
	return SeriesPoint{}, false
}

// Points returns a copy of the observations, earliest first.
func (s LocalDateSeries) Points() []SeriesPoint {
	out := make([]SeriesPoint, len(s.points))
	copy(out, s.points)
	return out
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
