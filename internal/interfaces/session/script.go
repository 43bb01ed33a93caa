package session

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	domain "marketledger/internal/domain/entity/instruments"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type Action string

const (
	ActionRegister Action = "register"
	ActionTrade    Action = "trade"
	ActionQuote    Action = "quote"
)

var (
	ErrUnknownProduct      = errors.New("product not in catalogue")
	ErrUnknownAction       = errors.New("unknown action")
	ErrInvalidMonth        = errors.New("contract month must be between 1 and 12")
	ErrDuplicateInstrument = errors.New("duplicate instrument id")
)

// Script describes one trading session: the instruments that may appear, the
// opening quotes and the ordered steps to replay against the market.
type Script struct {
	Market      string           `yaml:"market"`
	Instruments []InstrumentSpec `yaml:"instruments"`
	Quotes      []Quote          `yaml:"quotes"`
	Steps       []Step           `yaml:"steps"`
}

type InstrumentSpec struct {
	ID       string `yaml:"id"`
	Type     string `yaml:"type"`
	Symbol   string `yaml:"symbol"`
	Exchange string `yaml:"exchange"`
	Month    int    `yaml:"month,omitempty"`
	Year     int    `yaml:"year,omitempty"`
}

// Quote sets a spot price, or a contract price when Month is set.
type Quote struct {
	Symbol   string `yaml:"symbol"`
	Exchange string `yaml:"exchange"`
	Month    int    `yaml:"month,omitempty"`
	Year     int    `yaml:"year,omitempty"`
	Price    string `yaml:"price"`
}

type Step struct {
	Action   Action `yaml:"action"`
	Product  string `yaml:"product,omitempty"`
	Quantity int64  `yaml:"quantity,omitempty"`
	Quote    `yaml:",inline"`
}

func ParseFile(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open session script: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

func Parse(r io.Reader) (*Script, error) {
	var script Script
	if err := yaml.NewDecoder(r).Decode(&script); err != nil {
		return nil, fmt.Errorf("decode session script: %w", err)
	}
	return &script, nil
}

func (s InstrumentSpec) toDomain() (domain.Product, error) {
	it, err := domain.NewInstrumentType(s.Type)
	if err != nil {
		return nil, err
	}
	switch it {
	case domain.FutureType:
		month, err := contractMonth(s.Month)
		if err != nil {
			return nil, err
		}
		return domain.NewFuture(s.ID, s.Symbol, s.Exchange, month, s.Year), nil
	default:
		return domain.NewStock(s.ID, s.Symbol, s.Exchange), nil
	}
}

func (q Quote) price() (decimal.Decimal, error) {
	price, err := decimal.NewFromString(q.Price)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse price %q: %w", q.Price, err)
	}
	return price, nil
}

func contractMonth(m int) (time.Month, error) {
	if m < 1 || m > 12 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidMonth, m)
	}
	return time.Month(m), nil
}
