package session

import (
	"errors"
	"fmt"
	"time"

	"marketledger/internal/application/service/market"
	domain "marketledger/internal/domain/entity/instruments"
	marketdata "marketledger/internal/domain/entity/marketdata"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// QuoteBoard receives quote updates from the script.
type QuoteBoard interface {
	SetPrice(symbol, exchange string, price decimal.Decimal)
	SetContractPrice(symbol, exchange string, month time.Month, year int, price decimal.Decimal)
}

// Report is the outcome of a replayed session.
type Report struct {
	Market               string                `json:"market"`
	Registered           int                   `json:"registered"`
	RejectedRegistration int                   `json:"rejected_registration"`
	AcceptedTrades       int                   `json:"accepted_trades"`
	IgnoredTrades        int                   `json:"ignored_trades"`
	Summary              marketdata.DaySummary `json:"summary"`
}

// Runner replays session scripts against a market.
type Runner struct {
	market *market.Service
	quotes QuoteBoard
	logger *logrus.Entry
}

func NewRunner(svc *market.Service, quotes QuoteBoard, logger *logrus.Logger) *Runner {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Runner{
		market: svc,
		quotes: quotes,
		logger: logger.WithField("component", "session"),
	}
}

// Run applies the opening quotes and every step in order. Duplicate registrations are
// counted and skipped; any other failure, including a repeated catalogue ID, stops the run.
func (r *Runner) Run(script *Script) (*Report, error) {
	catalogue := make(map[string]domain.Product, len(script.Instruments))
	for i, spec := range script.Instruments {
		if _, ok := catalogue[spec.ID]; ok {
			return nil, fmt.Errorf("instrument %d (%s): %w", i, spec.ID, ErrDuplicateInstrument)
		}
		product, err := spec.toDomain()
		if err != nil {
			return nil, fmt.Errorf("instrument %d (%s): %w", i, spec.ID, err)
		}
		catalogue[spec.ID] = product
	}
	for i, quote := range script.Quotes {
		if err := r.applyQuote(quote); err != nil {
			return nil, fmt.Errorf("quote %d: %w", i, err)
		}
	}

	report := &Report{Market: script.Market}
	for i, step := range script.Steps {
		if err := r.applyStep(step, catalogue, report); err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i, step.Action, err)
		}
	}
	report.Summary = r.market.Summary()

	r.logger.WithFields(logrus.Fields{
		"market":      report.Market,
		"registered":  report.Registered,
		"trades":      report.Summary.Trades,
		"ignored":     report.IgnoredTrades,
		"total_qty":   report.Summary.TotalQuantity,
		"total_value": report.Summary.TotalValue.String(),
	}).Info("session replayed")
	return report, nil
}

func (r *Runner) applyStep(step Step, catalogue map[string]domain.Product, report *Report) error {
	switch step.Action {
	case ActionQuote:
		return r.applyQuote(step.Quote)
	case ActionRegister, ActionTrade:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, step.Action)
	}

	product, ok := catalogue[step.Product]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownProduct, step.Product)
	}

	if step.Action == ActionRegister {
		err := r.market.RegisterProduct(product)
		if errors.Is(err, domain.ErrProductAlreadyRegistered) {
			report.RejectedRegistration++
			return nil
		}
		if err != nil {
			return err
		}
		report.Registered++
		return nil
	}

	before := r.market.TradedProductCount()
	if err := r.market.RecordTrade(product, step.Quantity); err != nil {
		return err
	}
	if r.market.TradedProductCount() > before {
		report.AcceptedTrades++
	} else {
		report.IgnoredTrades++
	}
	return nil
}

func (r *Runner) applyQuote(q Quote) error {
	price, err := q.price()
	if err != nil {
		return err
	}
	if q.Month == 0 {
		r.quotes.SetPrice(q.Symbol, q.Exchange, price)
		return nil
	}
	month, err := contractMonth(q.Month)
	if err != nil {
		return err
	}
	r.quotes.SetContractPrice(q.Symbol, q.Exchange, month, q.Year, price)
	return nil
}
