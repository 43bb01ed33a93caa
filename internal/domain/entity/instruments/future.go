package instruments

import (
	"time"

	"github.com/shopspring/decimal"
)

// Future is a derivative contract; its price depends on the contract month and year.
type Future struct {
	Instrument
	ContractMonth time.Month
	ContractYear  int
}

func NewFuture(id, symbol, exchange string, month time.Month, year int) Future {
	return Future{
		Instrument:    Instrument{ID: id, Symbol: symbol, Exchange: exchange},
		ContractMonth: month,
		ContractYear:  year,
	}
}

func (f Future) GetType() InstrumentType { return FutureType }
func (f Future) Price(src PriceSource) decimal.Decimal {
	return src.ContractPrice(f.Symbol, f.Exchange, f.ContractMonth, f.ContractYear)
}
