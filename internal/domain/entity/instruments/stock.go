package instruments

import "github.com/shopspring/decimal"

// Stock is a spot instrument priced by symbol and exchange.
type Stock struct {
	Instrument
}

func NewStock(id, symbol, exchange string) Stock {
	return Stock{Instrument: Instrument{ID: id, Symbol: symbol, Exchange: exchange}}
}

func (s Stock) GetType() InstrumentType { return StockType }
func (s Stock) Price(src PriceSource) decimal.Decimal {
	return src.Price(s.Symbol, s.Exchange)
}
