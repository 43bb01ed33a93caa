package instruments

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type InstrumentType string

const (
	StockType  InstrumentType = "stock"
	FutureType InstrumentType = "future"
)

func (it InstrumentType) String() string {
	return string(it)
}

func (it InstrumentType) IsValid() bool {
	switch it {
	case StockType, FutureType:
		return true
	default:
		return false
	}
}

func NewInstrumentType(s string) (InstrumentType, error) {
	it := InstrumentType(s)
	if !it.IsValid() {
		return "", fmt.Errorf("invalid instrument type: %s", s)
	}
	return it, nil
}

// Product is a tradable instrument. The set of implementations is closed:
// only the variants declared in this package satisfy it.
type Product interface {
	GetID() string
	GetSymbol() string
	GetExchange() string
	GetType() InstrumentType
	// Price resolves the current unit price through src.
	Price(src PriceSource) decimal.Decimal

	product()
}

// Instrument holds the fields shared by every product variant.
// Two instruments are the same product when their IDs are equal.
type Instrument struct {
	ID       string
	Symbol   string
	Exchange string
}

func (i Instrument) GetID() string       { return i.ID }
func (i Instrument) GetSymbol() string   { return i.Symbol }
func (i Instrument) GetExchange() string { return i.Exchange }

func (Instrument) product() {}

// IsNil reports whether p is nil, including a nil pointer to a variant.
func IsNil(p Product) bool {
	switch v := p.(type) {
	case nil:
		return true
	case *Stock:
		return v == nil
	case *Future:
		return v == nil
	default:
		return false
	}
}
