package marketdata

import (
	domain "marketledger/internal/domain/entity/marketdata"
	interfaces "marketledger/internal/domain/interfaces"

	"github.com/shopspring/decimal"
)

var _ interfaces.TradesRepository = (*Repository)(nil)

// Repository is an in-memory, append-only trade ledger for one trading day.
// Totals are maintained on every append. It is not safe for concurrent use.
type Repository struct {
	trades        []domain.Trade
	totalQuantity int64
	totalValue    decimal.Decimal
	byProduct     map[string]domain.ProductSummary
}

func NewRepository() *Repository {
	return &Repository{
		totalValue: decimal.Zero,
		byProduct:  make(map[string]domain.ProductSummary),
	}
}

// Trades

func (r *Repository) AddTrade(trade domain.Trade) {
	r.trades = append(r.trades, trade)
	r.totalQuantity += trade.Quantity
	r.totalValue = r.totalValue.Add(trade.Value)

	summary := r.byProduct[trade.ProductID]
	summary.Trades++
	summary.Quantity += trade.Quantity
	summary.Value = summary.Value.Add(trade.Value)
	r.byProduct[trade.ProductID] = summary
}

func (r *Repository) GetTrades() []domain.Trade {
	out := make([]domain.Trade, len(r.trades))
	copy(out, r.trades)
	return out
}

func (r *Repository) CountTrades() int {
	return len(r.trades)
}

// Aggregates

func (r *Repository) TotalQuantity() int64 {
	return r.totalQuantity
}

func (r *Repository) TotalValue() decimal.Decimal {
	return r.totalValue
}

func (r *Repository) ProductSummaries() map[string]domain.ProductSummary {
	out := make(map[string]domain.ProductSummary, len(r.byProduct))
	for id, summary := range r.byProduct {
		out[id] = summary
	}
	return out
}
