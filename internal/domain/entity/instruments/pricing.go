package instruments

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceSource answers the current unit price of an instrument.
type PriceSource interface {
	Price(symbol, exchange string) decimal.Decimal
	ContractPrice(symbol, exchange string, month time.Month, year int) decimal.Decimal
}
