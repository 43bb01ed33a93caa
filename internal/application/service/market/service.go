package market

import (
	"errors"
	"math"
	"sync"

	domain "marketledger/internal/domain/entity/instruments"
	marketdata "marketledger/internal/domain/entity/marketdata"
	interfaces "marketledger/internal/domain/interfaces"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	ErrNilProduct       = domain.ErrNilProduct
	ErrEmptyProductID   = errors.New("product id is empty")
	ErrNegativeQuantity = errors.New("quantity must not be negative")
	ErrQuantityOverflow = errors.New("quantity overflows the day's total")
	ErrNilDependency    = errors.New("market: nil dependency")
)

// Service is the registry and ledger of a single market for one trading day.
// All operations are serialized, so registration is linearizable with trade validation.
type Service struct {
	mu       sync.RWMutex
	products interfaces.ProductsRepository
	trades   interfaces.TradesRepository
	pricing  domain.PriceSource
	logger   *logrus.Entry
}

func NewService(products interfaces.ProductsRepository, trades interfaces.TradesRepository, pricing domain.PriceSource, logger *logrus.Logger) (*Service, error) {
	if products == nil || trades == nil || pricing == nil {
		return nil, ErrNilDependency
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Service{
		products: products,
		trades:   trades,
		pricing:  pricing,
		logger:   logger.WithField("component", "market"),
	}, nil
}

// RegisterProduct makes product eligible for trading. A second registration of the
// same ID fails with *domain.DuplicateProductError and leaves the set unchanged.
func (s *Service) RegisterProduct(product domain.Product) error {
	if err := validateProduct(product); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	log := s.logger.WithFields(logrus.Fields{
		"product_id": product.GetID(),
		"type":       product.GetType(),
	})
	if err := s.products.AddProduct(product); err != nil {
		log.WithError(err).Warn("product registration rejected")
		return err
	}
	log.Info("product registered")
	return nil
}

// RecordTrade records quantity units of product at the price resolved now.
// Trades on unregistered products are ignored without error.
func (s *Service) RecordTrade(product domain.Product, quantity int64) error {
	if err := validateProduct(product); err != nil {
		return err
	}
	if quantity < 0 {
		return ErrNegativeQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	log := s.logger.WithField("product_id", product.GetID())
	if !s.products.HasProduct(product.GetID()) {
		log.WithField("quantity", quantity).Debug("ignored trade on unregistered product")
		return nil
	}

	if quantity > math.MaxInt64-s.trades.TotalQuantity() {
		log.WithField("quantity", quantity).Warn("trade rejected: total quantity overflow")
		return ErrQuantityOverflow
	}

	trade := marketdata.NewTrade(product.GetID(), quantity, product.Price(s.pricing))
	s.trades.AddTrade(trade)

	log.WithFields(logrus.Fields{
		"trade_id": trade.ID,
		"quantity": trade.Quantity,
		"price":    trade.Price.String(),
		"value":    trade.Value.String(),
	}).Debug("trade recorded")
	return nil
}

func (s *Service) RegisteredProductCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.products.CountProducts()
}

// TradedProductCount returns the number of accepted trades; repeated trades on one product count separately.
func (s *Service) TradedProductCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.trades.CountTrades()
}

func (s *Service) TotalTradedQuantity() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.trades.TotalQuantity()
}

func (s *Service) TotalTradedValue() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.trades.TotalValue()
}

func (s *Service) IsRegistered(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.products.HasProduct(id)
}

// Products returns the registered products in registration order.
func (s *Service) Products() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.products.ListProducts()
}

// Trades returns a copy of the day's trades in acceptance order.
func (s *Service) Trades() []marketdata.Trade {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.trades.GetTrades()
}

// Summary returns every aggregate taken under the same lock.
func (s *Service) Summary() marketdata.DaySummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return marketdata.DaySummary{
		RegisteredProducts: s.products.CountProducts(),
		Trades:             s.trades.CountTrades(),
		TotalQuantity:      s.trades.TotalQuantity(),
		TotalValue:         s.trades.TotalValue(),
		Products:           s.trades.ProductSummaries(),
	}
}

func validateProduct(product domain.Product) error {
	if domain.IsNil(product) {
		return ErrNilProduct
	}
	if product.GetID() == "" {
		return ErrEmptyProductID
	}
	return nil
}
