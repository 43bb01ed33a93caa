package marketdata

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Trade is an accepted execution against a registered product for the current day.
// Value is always Quantity × Price, with Price resolved at the moment the trade was accepted.
type Trade struct {
	ID        uuid.UUID       `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Value     decimal.Decimal `json:"value"`
}

func NewTrade(productID string, quantity int64, price decimal.Decimal) Trade {
	return Trade{
		ID:        uuid.New(),
		ProductID: productID,
		Quantity:  quantity,
		Price:     price,
		Value:     price.Mul(decimal.NewFromInt(quantity)),
	}
}

// ProductSummary aggregates the day's trades of a single product.
type ProductSummary struct {
	Trades   int             `json:"trades"`
	Quantity int64           `json:"quantity"`
	Value    decimal.Decimal `json:"value"`
}

// DaySummary is a read-only snapshot of the day's registry and ledger state.
type DaySummary struct {
	RegisteredProducts int                       `json:"registered_products"`
	Trades             int                       `json:"trades"`
	TotalQuantity      int64                     `json:"total_quantity"`
	TotalValue         decimal.Decimal           `json:"total_value"`
	Products           map[string]ProductSummary `json:"products"`
}
