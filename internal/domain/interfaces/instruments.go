package interfaces

import (
	domain "marketledger/internal/domain/entity/instruments"
)

// ProductsRepository stores the registered product set. Add must check for an
// existing ID and insert in one step, returning *domain.DuplicateProductError on conflict.
type ProductsRepository interface {
	AddProduct(product domain.Product) error
	GetProduct(id string) (domain.Product, bool)
	HasProduct(id string) bool
	CountProducts() int
	ListProducts() []domain.Product
}
