// Package schedule provides the date-period schedule consumed by
// pricing functions.
package schedule

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// ErrEmptySchedule is returned when a schedule is built from no periods.
var ErrEmptySchedule = errors.New("schedule must contain at least one period")

// Period is a date range within a schedule. Periods order by start date,
// then end date.
type Period struct {
	Start time.Time
	End   time.Time
}

func NewPeriod(start, end time.Time) (Period, error) {
	if !end.After(start) {
		return Period{}, fmt.Errorf("period end %s must be after start %s",
			end.Format("2006-01-02"), start.Format("2006-01-02"))
	}
	return Period{Start: start, End: end}, nil
}

// Before reports whether p sorts ahead of other.
func (p Period) Before(other Period) bool {
	if !p.Start.Equal(other.Start) {
		return p.Start.Before(other.Start)
	}
	return p.End.Before(other.End)
}

func (p Period) String() string {
	return p.Start.Format("2006-01-02") + ".." + p.End.Format("2006-01-02")
}

// PeriodicSchedule is an ordered, non-empty sequence of periods sorted
// earliest to latest. Periods are intended to be adjacent but adjacency
// is not enforced; each period stands alone. Immutable once built.
type PeriodicSchedule struct {
	periods []Period
}

// Of builds a schedule from periods in any order. The input is copied
// and sorted; an empty input is rejected.
func Of(periods []Period) (PeriodicSchedule, error) {
	if len(periods) == 0 {
		return PeriodicSchedule{}, ErrEmptySchedule
	}
	sorted := make([]Period, len(periods))
	copy(sorted, periods)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })
	return PeriodicSchedule{periods: sorted}, nil
}

// Size returns the number of periods, at least one.
func (s PeriodicSchedule) Size() int {
	return len(s.periods)
}

// Period returns the period at a zero-based index. An index outside the
// valid range fails rather than clamping.
func (s PeriodicSchedule) Period(index int) (Period, error) {
	if index < 0 || index >= len(s.periods) {
		return Period{}, fmt.Errorf("period index %d out of range [0,%d)", index, len(s.periods))
	}
	return s.periods[index], nil
}

// Periods returns a copy of all periods, earliest first.
func (s PeriodicSchedule) Periods() []Period {
	out := make([]Period, len(s.periods))
	copy(out, s.periods)
	return out
}

// First returns the earliest period.
func (s PeriodicSchedule) First() Period {
	return s.periods[0]
}

// Last returns the latest period.
func (s PeriodicSchedule) Last() Period {
	return s.periods[len(s.periods)-1]
}

// Builder accumulates periods for multi-step construction. It is a plain
// mutable value consumed once by Build; the resulting schedule does not
// share state with the builder.
type Builder struct {
	periods []Period
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) Add(p Period) *Builder {
	b.periods = append(b.periods, p)
	return b
}

func (b *Builder) AddRange(start, end time.Time) (*Builder, error) {
	p, err := NewPeriod(start, end)
	if err != nil {
		return b, err
	}
	return b.Add(p), nil
}

func (b *Builder) Build() (PeriodicSchedule, error) {
	return Of(b.periods)
}
