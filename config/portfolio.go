package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/openquant/calcengine/currency"
	"github.com/openquant/calcengine/trade"
)

// Portfolio is the loaded trade population, grouped by variant family.
type Portfolio struct {
	FxTrades     []trade.FxSingleTrade
	FutureTrades []trade.IborFutureTrade
}

// Size returns the total number of trades.
func (p *Portfolio) Size() int {
	return len(p.FxTrades) + len(p.FutureTrades)
}

type portfolioFile struct {
	Trades []tradeEntry `yaml:"trades"`
}

type amountEntry struct {
	Currency string  `yaml:"currency"`
	Amount   float64 `yaml:"amount"`
}

type tradeEntry struct {
	Type         string `yaml:"type"`
	ID           string `yaml:"id"`
	TradeDate    string `yaml:"trade_date"`
	Counterparty string `yaml:"counterparty,omitempty"`

	// fx_single
	BaseAmount    *amountEntry `yaml:"base_amount,omitempty"`
	CounterAmount *amountEntry `yaml:"counter_amount,omitempty"`
	PaymentDate   string       `yaml:"payment_date,omitempty"`

	// ibor_future
	SecurityID    string  `yaml:"security_id,omitempty"`
	Currency      string  `yaml:"currency,omitempty"`
	Notional      float64 `yaml:"notional,omitempty"`
	AccrualFactor float64 `yaml:"accrual_factor,omitempty"`
	LastTradeDate string  `yaml:"last_trade_date,omitempty"`
	RateIndex     string  `yaml:"rate_index,omitempty"`
	Quantity      float64 `yaml:"quantity,omitempty"`
	Price         float64 `yaml:"price,omitempty"`
}

// LoadPortfolio reads a YAML portfolio file into typed trades. Every
// trade is validated on construction; the first bad trade fails the
// load.
func LoadPortfolio(path string) (*Portfolio, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read portfolio file: %w", err)
	}
	var pf portfolioFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parse portfolio file: %w", err)
	}
	if len(pf.Trades) == 0 {
		return nil, fmt.Errorf("portfolio contains no trades")
	}

	out := &Portfolio{}
	for i, entry := range pf.Trades {
		info, err := entry.buildInfo()
		if err != nil {
			return nil, fmt.Errorf("trades[%d]: %w", i, err)
		}
		switch entry.Type {
		case "fx_single":
			tr, err := entry.buildFxSingle(info)
			if err != nil {
				return nil, fmt.Errorf("trades[%d] (%s): %w", i, entry.ID, err)
			}
			out.FxTrades = append(out.FxTrades, tr)
		case "ibor_future":
			tr, err := entry.buildIborFuture(info)
			if err != nil {
				return nil, fmt.Errorf("trades[%d] (%s): %w", i, entry.ID, err)
			}
			out.FutureTrades = append(out.FutureTrades, tr)
		default:
			return nil, fmt.Errorf("trades[%d]: unknown trade type %q", i, entry.Type)
		}
	}
	return out, nil
}

func (e tradeEntry) buildInfo() (trade.Info, error) {
	tradeDate, err := parseDate(e.TradeDate, "trade_date")
	if err != nil {
		return trade.Info{}, err
	}
	return trade.InfoBuilder{
		ID:           e.ID,
		TradeDate:    tradeDate,
		Counterparty: e.Counterparty,
	}.Build()
}

func (e tradeEntry) buildFxSingle(info trade.Info) (trade.FxSingleTrade, error) {
	if e.BaseAmount == nil || e.CounterAmount == nil {
		return trade.FxSingleTrade{}, fmt.Errorf("fx_single needs base_amount and counter_amount")
	}
	base, err := e.BaseAmount.toAmount()
	if err != nil {
		return trade.FxSingleTrade{}, err
	}
	counter, err := e.CounterAmount.toAmount()
	if err != nil {
		return trade.FxSingleTrade{}, err
	}
	payDate, err := parseDate(e.PaymentDate, "payment_date")
	if err != nil {
		return trade.FxSingleTrade{}, err
	}
	product, err := trade.NewFxSingle(base, counter, payDate)
	if err != nil {
		return trade.FxSingleTrade{}, err
	}
	return trade.FxSingleTrade{Info: info, Product: product}, nil
}

func (e tradeEntry) buildIborFuture(info trade.Info) (trade.IborFutureTrade, error) {
	ccy, err := currency.Parse(e.Currency)
	if err != nil {
		return trade.IborFutureTrade{}, err
	}
	lastTrade, err := parseDate(e.LastTradeDate, "last_trade_date")
	if err != nil {
		return trade.IborFutureTrade{}, err
	}
	sec, err := trade.IborFutureBuilder{
		SecurityID:    e.SecurityID,
		Currency:      ccy,
		Notional:      e.Notional,
		AccrualFactor: e.AccrualFactor,
		LastTradeDate: lastTrade,
		RateIndex:     e.RateIndex,
	}.Build()
	if err != nil {
		return trade.IborFutureTrade{}, err
	}
	if e.Quantity == 0 {
		return trade.IborFutureTrade{}, fmt.Errorf("ibor_future quantity must be non-zero")
	}
	return trade.IborFutureTrade{Info: info, Security: sec, Quantity: e.Quantity, Price: e.Price}, nil
}

func (a amountEntry) toAmount() (currency.Amount, error) {
	ccy, err := currency.Parse(a.Currency)
	if err != nil {
		return currency.Amount{}, err
	}
	return currency.NewAmount(ccy, a.Amount), nil
}
