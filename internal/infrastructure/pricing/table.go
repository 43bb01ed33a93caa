package pricing

import (
	"fmt"
	"sync"
	"time"

	domain "marketledger/internal/domain/entity/instruments"

	"github.com/shopspring/decimal"
)

var _ domain.PriceSource = (*Table)(nil)

// Table is a static quote table. Lookups for unknown instruments return the fallback price.
type Table struct {
	mu       sync.RWMutex
	quotes   map[string]decimal.Decimal
	fallback decimal.Decimal
}

func NewTable(fallback decimal.Decimal) *Table {
	return &Table{
		quotes:   make(map[string]decimal.Decimal),
		fallback: fallback,
	}
}

// SetPrice stores the spot quote for symbol on exchange.
func (t *Table) SetPrice(symbol, exchange string, price decimal.Decimal) {
	t.set(spotKey(symbol, exchange), price)
}

// SetContractPrice stores the quote of a dated contract.
func (t *Table) SetContractPrice(symbol, exchange string, month time.Month, year int, price decimal.Decimal) {
	t.set(contractKey(symbol, exchange, month, year), price)
}

func (t *Table) Price(symbol, exchange string) decimal.Decimal {
	return t.get(spotKey(symbol, exchange))
}

func (t *Table) ContractPrice(symbol, exchange string, month time.Month, year int) decimal.Decimal {
	return t.get(contractKey(symbol, exchange, month, year))
}

func (t *Table) set(key string, price decimal.Decimal) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.quotes[key] = price
}

func (t *Table) get(key string) decimal.Decimal {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if price, ok := t.quotes[key]; ok {
		return price
	}
	return t.fallback
}

func spotKey(symbol, exchange string) string {
	return exchange + ":" + symbol
}

func contractKey(symbol, exchange string, month time.Month, year int) string {
	return fmt.Sprintf("%s:%s:%04d-%02d", exchange, symbol, year, int(month))
}
