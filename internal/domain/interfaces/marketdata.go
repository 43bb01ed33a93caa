package interfaces

import (
	marketdata "marketledger/internal/domain/entity/marketdata"

	"github.com/shopspring/decimal"
)

// TradesRepository is the append-only ledger of the day's accepted trades.
type TradesRepository interface {
	AddTrade(trade marketdata.Trade)
	GetTrades() []marketdata.Trade
	CountTrades() int
	TotalQuantity() int64
	TotalValue() decimal.Decimal
	ProductSummaries() map[string]marketdata.ProductSummary
}
