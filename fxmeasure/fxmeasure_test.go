package fxmeasure

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openquant/calcengine/currency"
	"github.com/openquant/calcengine/engine"
	"github.com/openquant/calcengine/marketdata"
	"github.com/openquant/calcengine/measure"
	"github.com/openquant/calcengine/trade"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func gbpUsdTrade(t *testing.T) trade.FxSingleTrade {
	t.Helper()
	product, err := trade.NewFxSingle(
		currency.NewAmount(currency.GBP, 1000),
		currency.NewAmount(currency.USD, -1600),
		date(2026, time.June, 30),
	)
	require.NoError(t, err)
	info, err := trade.InfoBuilder{ID: "FX-1", TradeDate: date(2026, time.June, 1)}.Build()
	require.NoError(t, err)
	return trade.FxSingleTrade{Info: info, Product: product}
}

func snapshotAt(valDate time.Time, dfGBP, dfUSD float64, extra map[marketdata.Key]any) marketdata.Snapshot {
	values := map[marketdata.Key]any{
		marketdata.DiscountFactorsKey{Currency: currency.GBP}: marketdata.NewConstantDiscountFactors(currency.GBP, dfGBP),
		marketdata.DiscountFactorsKey{Currency: currency.USD}: marketdata.NewConstantDiscountFactors(currency.USD, dfUSD),
	}
	for k, v := range extra {
		values[k] = v
	}
	return marketdata.NewSnapshot(valDate, values, nil)
}

func TestDiscountingGroupConfiguredMeasures(t *testing.T) {
	t.Parallel()

	g := DiscountingGroup()
	got := g.ConfiguredMeasures(gbpUsdTrade(t))

	want := []measure.Measure{
		measure.BucketedPv01,
		measure.CurrencyExposure,
		measure.ForwardFxRate,
		measure.Pv01,
		measure.ParSpread,
		measure.PresentValue,
	}
	measure.Sort(want)
	assert.Equal(t, want, got)
}

func TestPresentValueRequirements(t *testing.T) {
	t.Parallel()

	tr := gbpUsdTrade(t)
	g := DiscountingGroup()
	cfg, ok := g.FunctionConfig(tr, measure.PresentValue)
	require.True(t, ok)

	fn := cfg.CreateFunction()
	reqs := fn.Requirements(tr)

	assert.Equal(t, []marketdata.Key{
		marketdata.DiscountFactorsKey{Currency: currency.GBP},
		marketdata.DiscountFactorsKey{Currency: currency.USD},
	}, reqs.SingleValues())
	assert.Empty(t, reqs.TimeSeries())
	assert.Equal(t, []currency.Currency{currency.GBP, currency.USD}, reqs.OutputCurrencies())

	ccy, ok := fn.DefaultReportingCurrency(tr)
	require.True(t, ok)
	assert.Equal(t, currency.GBP, ccy)
}

func TestPresentValueExpiredTradeIsEmpty(t *testing.T) {
	t.Parallel()

	tr := gbpUsdTrade(t)
	// valuation 7 days after payment: the exchange already settled
	valDate := tr.Product.PaymentDate().AddDate(0, 0, 7)
	md := snapshotAt(valDate, 0.99, 0.99, nil)

	fn := PresentValueFunction{}
	got, err := fn.Execute(tr, md)
	require.NoError(t, err)

	mca, ok := got.(currency.MultiAmount)
	require.True(t, ok)
	assert.True(t, mca.IsEmpty())
}

func TestPresentValueLiveTrade(t *testing.T) {
	t.Parallel()

	tr := gbpUsdTrade(t)
	// valuation a week before payment
	md := snapshotAt(date(2026, time.June, 23), 0.99, 0.98, nil)

	got, err := PresentValueFunction{}.Execute(tr, md)
	require.NoError(t, err)

	mca := got.(currency.MultiAmount)
	gbp, ok := mca.Amount(currency.GBP)
	require.True(t, ok)
	assert.InDelta(t, 990, gbp.Value, 1e-9)
	usd, ok := mca.Amount(currency.USD)
	require.True(t, ok)
	assert.InDelta(t, -1568, usd.Value, 1e-9)
}

func TestPresentValueOnPaymentDate(t *testing.T) {
	t.Parallel()

	tr := gbpUsdTrade(t)
	// payment on the valuation date still contributes
	md := snapshotAt(tr.Product.PaymentDate(), 1.0, 1.0, nil)

	got, err := PresentValueFunction{}.Execute(tr, md)
	require.NoError(t, err)
	mca := got.(currency.MultiAmount)
	assert.False(t, mca.IsEmpty())
}

func TestPresentValueMissingCurveFails(t *testing.T) {
	t.Parallel()

	tr := gbpUsdTrade(t)
	md := marketdata.NewSnapshot(date(2026, time.June, 23), map[marketdata.Key]any{
		marketdata.DiscountFactorsKey{Currency: currency.GBP}: marketdata.NewConstantDiscountFactors(currency.GBP, 0.99),
	}, nil)

	_, err := PresentValueFunction{}.Execute(tr, md)
	var missing marketdata.MissingDataError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, marketdata.DiscountFactorsKey{Currency: currency.USD}, missing.Key)
}

func TestCurrencyExposureMatchesPresentValue(t *testing.T) {
	t.Parallel()

	tr := gbpUsdTrade(t)
	md := snapshotAt(date(2026, time.June, 23), 0.99, 0.98, nil)

	pv, err := PresentValueFunction{}.Execute(tr, md)
	require.NoError(t, err)
	exp, err := CurrencyExposureFunction{}.Execute(tr, md)
	require.NoError(t, err)
	assert.Equal(t, pv, exp)
}

func TestPv01Signs(t *testing.T) {
	t.Parallel()

	tr := gbpUsdTrade(t)
	md := snapshotAt(date(2026, time.June, 23), 0.99, 0.98, nil)

	got, err := Pv01Function{}.Execute(tr, md)
	require.NoError(t, err)
	mca := got.(currency.MultiAmount)

	// receiving GBP: rates up, PV down; paying USD the reverse
	gbp, ok := mca.Amount(currency.GBP)
	require.True(t, ok)
	assert.Negative(t, gbp.Value)
	usd, ok := mca.Amount(currency.USD)
	require.True(t, ok)
	assert.Positive(t, usd.Value)

	// 7 days at ACT/365F, 1bp
	tf := 7.0 / 365.0
	assert.InDelta(t, -tf*0.99*1000*1e-4, gbp.Value, 1e-12)
	assert.InDelta(t, tf*0.98*1600*1e-4, usd.Value, 1e-12)
}

func TestPv01ExpiredTradeIsEmpty(t *testing.T) {
	t.Parallel()

	tr := gbpUsdTrade(t)
	md := snapshotAt(tr.Product.PaymentDate().AddDate(0, 0, 7), 0.99, 0.99, nil)

	got, err := Pv01Function{}.Execute(tr, md)
	require.NoError(t, err)
	assert.True(t, got.(currency.MultiAmount).IsEmpty())
}

func TestBucketedPv01(t *testing.T) {
	t.Parallel()

	tr := gbpUsdTrade(t)
	md := snapshotAt(date(2026, time.June, 23), 0.99, 0.98, nil)

	got, err := BucketedPv01Function{}.Execute(tr, md)
	require.NoError(t, err)

	buckets := got.([]CurveSensitivity)
	require.Len(t, buckets, 2)
	assert.Equal(t, "Discount/GBP", buckets[0].Curve)
	assert.Equal(t, currency.GBP, buckets[0].Currency)
	require.Len(t, buckets[0].Sensitivities, 1)
	assert.Equal(t, tr.Product.PaymentDate(), buckets[0].Sensitivities[0].Date)
	assert.Equal(t, "Discount/USD", buckets[1].Curve)

	// bucketed points sum to the parallel PV01 per currency
	pv01, err := Pv01Function{}.Execute(tr, md)
	require.NoError(t, err)
	mca := pv01.(currency.MultiAmount)
	for _, b := range buckets {
		total := 0.0
		for _, p := range b.Sensitivities {
			total += p.Value
		}
		parallel, ok := mca.Amount(b.Currency)
		require.True(t, ok)
		assert.InDelta(t, parallel.Value, total, 1e-12)
	}
}

func TestForwardFxRate(t *testing.T) {
	t.Parallel()

	tr := gbpUsdTrade(t)
	spot := 1.61
	md := snapshotAt(date(2026, time.June, 23), 0.99, 0.98, map[marketdata.Key]any{
		marketdata.FxRateKey{Pair: currency.NewPair(currency.GBP, currency.USD)}: spot,
	})

	fn := ForwardFxRateFunction{}
	reqs := fn.Requirements(tr)
	assert.True(t, reqs.RequiresSingleValue(marketdata.FxRateKey{Pair: currency.NewPair(currency.GBP, currency.USD)}))

	got, err := fn.Execute(tr, md)
	require.NoError(t, err)
	rate := got.(currency.FxRate)
	assert.Equal(t, currency.NewPair(currency.GBP, currency.USD), rate.Pair)
	assert.InDelta(t, spot*0.99/0.98, rate.Rate, 1e-12)
}

func TestParSpread(t *testing.T) {
	t.Parallel()

	tr := gbpUsdTrade(t)
	valDate := date(2026, time.June, 23)

	// struck exactly at the forward: par spread is zero
	md := snapshotAt(valDate, 0.99, 0.99, map[marketdata.Key]any{
		marketdata.FxRateKey{Pair: currency.NewPair(currency.GBP, currency.USD)}: 1.6,
	})
	got, err := ParSpreadFunction{}.Execute(tr, md)
	require.NoError(t, err)
	spread := got.(Spread)
	assert.InDelta(t, 0, spread.Value, 1e-12)

	// forward above the struck rate: positive spread for the GBP receiver
	md = snapshotAt(valDate, 0.99, 0.99, map[marketdata.Key]any{
		marketdata.FxRateKey{Pair: currency.NewPair(currency.GBP, currency.USD)}: 1.65,
	})
	got, err = ParSpreadFunction{}.Execute(tr, md)
	require.NoError(t, err)
	assert.InDelta(t, 0.05, got.(Spread).Value, 1e-12)
}

func TestParSpreadMissingSpotFails(t *testing.T) {
	t.Parallel()

	tr := gbpUsdTrade(t)
	md := snapshotAt(date(2026, time.June, 23), 0.99, 0.99, nil)

	_, err := ParSpreadFunction{}.Execute(tr, md)
	var missing currency.MissingFxRateError
	require.ErrorAs(t, err, &missing)
}

func TestFunctionsAreDeterministic(t *testing.T) {
	t.Parallel()

	tr := gbpUsdTrade(t)
	md := snapshotAt(date(2026, time.June, 23), 0.99, 0.98, nil)

	a, err := PresentValueFunction{}.Execute(tr, md)
	require.NoError(t, err)
	b, err := PresentValueFunction{}.Execute(tr, md)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRequirementsCoverExecuteLookups(t *testing.T) {
	t.Parallel()

	// conformance: a snapshot holding exactly the declared keys is
	// sufficient for Execute, for every configured measure
	tr := gbpUsdTrade(t)
	g := DiscountingGroup()
	valDate := date(2026, time.June, 23)

	for _, m := range g.ConfiguredMeasures(tr) {
		m := m
		t.Run(m.String(), func(t *testing.T) {
			t.Parallel()
			cfg, ok := g.FunctionConfig(tr, m)
			require.True(t, ok)
			fn := cfg.CreateFunction()
			reqs := fn.Requirements(tr)

			values := map[marketdata.Key]any{}
			for _, k := range reqs.SingleValues() {
				switch key := k.(type) {
				case marketdata.DiscountFactorsKey:
					values[k] = marketdata.NewConstantDiscountFactors(key.Currency, 0.99)
				case marketdata.FxRateKey:
					values[k] = 1.6
				}
			}
			md := marketdata.NewSnapshot(valDate, values, nil)
			require.Empty(t, reqs.MissingFrom(md))

			_, err := fn.Execute(tr, md)
			assert.NoError(t, err)
		})
	}
}

func TestEndToEndThroughRunner(t *testing.T) {
	t.Parallel()

	tr := gbpUsdTrade(t)
	r := engine.Runner[trade.FxSingleTrade]{Group: DiscountingGroup()}

	md := snapshotAt(date(2026, time.June, 23), 0.99, 0.98, map[marketdata.Key]any{
		marketdata.FxRateKey{Pair: currency.NewPair(currency.GBP, currency.USD)}: 1.6,
	})

	res, err := r.Run(tr, measure.PresentValue, []marketdata.Snapshot{md}, currency.USD)
	require.NoError(t, err)
	v, err := res.Value(0)
	require.NoError(t, err)
	amount := v.(currency.Amount)
	assert.Equal(t, currency.USD, amount.Currency)
	// 990 GBP * 1.6 - 1568 USD
	assert.InDelta(t, 990*1.6-1568, amount.Value, 1e-9)
}
