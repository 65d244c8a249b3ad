package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustPeriod(t *testing.T, start, end time.Time) Period {
	t.Helper()
	p, err := NewPeriod(start, end)
	require.NoError(t, err)
	return p
}

func TestOfSortsInput(t *testing.T) {
	t.Parallel()

	q3 := mustPeriod(t, date(2026, time.July, 1), date(2026, time.October, 1))
	q1 := mustPeriod(t, date(2026, time.January, 1), date(2026, time.April, 1))
	q2 := mustPeriod(t, date(2026, time.April, 1), date(2026, time.July, 1))

	s, err := Of([]Period{q3, q1, q2})
	require.NoError(t, err)

	assert.Equal(t, 3, s.Size())
	assert.Equal(t, []Period{q1, q2, q3}, s.Periods())
	assert.Equal(t, q1, s.First())
	assert.Equal(t, q3, s.Last())
}

func TestOfRejectsEmpty(t *testing.T) {
	t.Parallel()

	_, err := Of(nil)
	assert.ErrorIs(t, err, ErrEmptySchedule)

	_, err = Of([]Period{})
	assert.ErrorIs(t, err, ErrEmptySchedule)
}

func TestOfAllowsNonAdjacentPeriods(t *testing.T) {
	t.Parallel()

	// gap between periods is permitted, only ordering is guaranteed
	a := mustPeriod(t, date(2026, time.January, 1), date(2026, time.February, 1))
	b := mustPeriod(t, date(2026, time.June, 1), date(2026, time.July, 1))

	s, err := Of([]Period{b, a})
	require.NoError(t, err)
	assert.Equal(t, []Period{a, b}, s.Periods())
}

func TestPeriodIndexAccess(t *testing.T) {
	t.Parallel()

	a := mustPeriod(t, date(2026, time.January, 1), date(2026, time.April, 1))
	b := mustPeriod(t, date(2026, time.April, 1), date(2026, time.July, 1))
	s, err := Of([]Period{a, b})
	require.NoError(t, err)

	got, err := s.Period(1)
	require.NoError(t, err)
	assert.Equal(t, b, got)

	_, err = s.Period(-1)
	assert.Error(t, err)
	_, err = s.Period(2)
	assert.Error(t, err)
}

func TestOfDoesNotAliasInput(t *testing.T) {
	t.Parallel()

	a := mustPeriod(t, date(2026, time.January, 1), date(2026, time.April, 1))
	b := mustPeriod(t, date(2026, time.April, 1), date(2026, time.July, 1))
	input := []Period{b, a}

	s, err := Of(input)
	require.NoError(t, err)

	input[0] = mustPeriod(t, date(2030, time.January, 1), date(2030, time.April, 1))
	assert.Equal(t, a, s.Periods()[0])
}

func TestNewPeriodValidation(t *testing.T) {
	t.Parallel()

	_, err := NewPeriod(date(2026, time.April, 1), date(2026, time.April, 1))
	assert.Error(t, err)
	_, err = NewPeriod(date(2026, time.April, 2), date(2026, time.April, 1))
	assert.Error(t, err)
}

func TestBuilder(t *testing.T) {
	t.Parallel()

	b := NewBuilder()
	_, err := b.AddRange(date(2026, time.April, 1), date(2026, time.July, 1))
	require.NoError(t, err)
	_, err = b.AddRange(date(2026, time.January, 1), date(2026, time.April, 1))
	require.NoError(t, err)

	s, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, 2, s.Size())
	first, err := s.Period(0)
	require.NoError(t, err)
	assert.Equal(t, date(2026, time.January, 1), first.Start)

	_, err = NewBuilder().Build()
	assert.ErrorIs(t, err, ErrEmptySchedule)
}
