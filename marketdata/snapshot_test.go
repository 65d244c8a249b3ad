package marketdata

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openquant/calcengine/currency"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testSnapshot(t *testing.T) Snapshot {
	t.Helper()
	valDate := date(2026, time.June, 30)
	return NewSnapshot(valDate,
		map[Key]any{
			DiscountFactorsKey{Currency: currency.GBP}: NewConstantDiscountFactors(currency.GBP, 0.99),
			DiscountFactorsKey{Currency: currency.USD}: NewConstantDiscountFactors(currency.USD, 0.98),
			FxRateKey{Pair: currency.NewPair(currency.GBP, currency.USD)}: 1.6,
			QuoteKey{SecurityID: "SR3-DEC26"}:                             0.9975,
		},
		map[Key]LocalDateSeries{
			FixingSeriesKey{Index: "USD-SOFR-3M"}: SeriesOf(
				SeriesPoint{Date: date(2026, time.June, 26), Value: 0.041},
				SeriesPoint{Date: date(2026, time.June, 29), Value: 0.042},
			),
		},
	)
}

func TestSnapshotLookups(t *testing.T) {
	t.Parallel()

	md := testSnapshot(t)

	df, err := md.DiscountFactors(currency.GBP)
	require.NoError(t, err)
	assert.Equal(t, currency.GBP, df.Currency())
	assert.InDelta(t, 0.99, df.DF(date(2027, time.June, 30)), 1e-12)

	q, err := md.Quote("SR3-DEC26")
	require.NoError(t, err)
	assert.InDelta(t, 0.9975, q, 1e-12)

	ts, err := md.TimeSeries(FixingSeriesKey{Index: "USD-SOFR-3M"})
	require.NoError(t, err)
	assert.Equal(t, 2, ts.Len())
}

func TestSnapshotMissingKeyFailsExplicitly(t *testing.T) {
	t.Parallel()

	md := testSnapshot(t)

	_, err := md.DiscountFactors(currency.JPY)
	var missing MissingDataError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, DiscountFactorsKey{Currency: currency.JPY}, missing.Key)

	_, err = md.TimeSeries(FixingSeriesKey{Index: "EUR-EURIBOR-6M"})
	require.ErrorAs(t, err, &missing)

	_, err = md.Quote("UNKNOWN")
	require.ErrorAs(t, err, &missing)
}

func TestSnapshotFxRate(t *testing.T) {
	t.Parallel()

	md := testSnapshot(t)

	rate, err := md.FxRate(currency.GBP, currency.USD)
	require.NoError(t, err)
	assert.InDelta(t, 1.6, rate, 1e-12)

	// inverse direction resolves through the stored pair
	rate, err = md.FxRate(currency.USD, currency.GBP)
	require.NoError(t, err)
	assert.InDelta(t, 0.625, rate, 1e-12)

	rate, err = md.FxRate(currency.USD, currency.USD)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, rate, 1e-12)

	_, err = md.FxRate(currency.GBP, currency.JPY)
	var missing currency.MissingFxRateError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, currency.NewPair(currency.GBP, currency.JPY), missing.Pair)
}

func TestSnapshotCopiesInputMaps(t *testing.T) {
	t.Parallel()

	values := map[Key]any{
		QuoteKey{SecurityID: "X"}: 1.0,
	}
	md := NewSnapshot(date(2026, time.January, 2), values, nil)
	delete(values, QuoteKey{SecurityID: "X"})

	q, err := md.Quote("X")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, q, 1e-12)
}

func TestZeroRateDiscountFactors(t *testing.T) {
	t.Parallel()

	valDate := date(2026, time.June, 30)
	df := NewZeroRateDiscountFactors(currency.USD, valDate, 0.04)

	// exp(-0.04 * 1) one year out
	assert.InDelta(t, 0.960789, df.DF(date(2027, time.June, 30)), 1e-5)
	// on or before valuation the factor is 1
	assert.InDelta(t, 1.0, df.DF(valDate), 1e-12)
	assert.InDelta(t, 1.0, df.DF(date(2026, time.January, 1)), 1e-12)
}

func TestLocalDateSeries(t *testing.T) {
	t.Parallel()

	ts := SeriesOf(
		SeriesPoint{Date: date(2026, time.June, 29), Value: 0.042},
		SeriesPoint{Date: date(2026, time.June, 26), Value: 0.041},
	)

	// re-sorted on construction
	pts := ts.Points()
	require.Len(t, pts, 2)
	assert.True(t, pts[0].Date.Before(pts[1].Date))

	v, ok := ts.Value(date(2026, time.June, 26))
	require.True(t, ok)
	assert.InDelta(t, 0.041, v, 1e-12)

	_, ok = ts.Value(date(2026, time.June, 27))
	assert.False(t, ok)

	p, ok := ts.LatestOnOrBefore(date(2026, time.June, 28))
	require.True(t, ok)
	assert.InDelta(t, 0.041, p.Value, 1e-12)

	_, ok = ts.LatestOnOrBefore(date(2026, time.June, 25))
	assert.False(t, ok)
}

func TestScenarioSnapshots(t *testing.T) {
	t.Parallel()

	base := testSnapshot(t)
	defs := []ScenarioDefinition{
		{Name: "base"},
		{Name: "rates+100bp", DiscountShiftBp: 100},
		{Name: "gbp-10pct", FxShiftPct: -10},
	}

	snaps := ScenarioSnapshots(base, defs)
	require.Len(t, snaps, 3)

	oneYear := date(2027, time.June, 30)

	// base scenario is untouched
	df0, err := snaps[0].DiscountFactors(currency.GBP)
	require.NoError(t, err)
	assert.InDelta(t, 0.99, df0.DF(oneYear), 1e-12)

	// 100bp shift scales a one-year factor by exp(-0.01)
	df1, err := snaps[1].DiscountFactors(currency.GBP)
	require.NoError(t, err)
	assert.InDelta(t, 0.99*0.990050, df1.DF(oneYear), 1e-5)

	// FX shift scales spot, leaves curves alone
	rate, err := snaps[2].FxRate(currency.GBP, currency.USD)
	require.NoError(t, err)
	assert.InDelta(t, 1.44, rate, 1e-9)
	df2, err := snaps[2].DiscountFactors(currency.GBP)
	require.NoError(t, err)
	assert.InDelta(t, 0.99, df2.DF(oneYear), 1e-12)
}
