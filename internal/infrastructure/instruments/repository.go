package instruments

import (
	domain "marketledger/internal/domain/entity/instruments"
	interfaces "marketledger/internal/domain/interfaces"
)

var _ interfaces.ProductsRepository = (*Repository)(nil)

// Repository keeps the registered product set in memory, keyed by product ID.
// It is not safe for concurrent use; callers serialize access.
type Repository struct {
	products map[string]domain.Product
	order    []string
}

func NewRepository() *Repository {
	return &Repository{products: make(map[string]domain.Product)}
}

func (r *Repository) AddProduct(product domain.Product) error {
	if domain.IsNil(product) {
		return domain.ErrNilProduct
	}
	id := product.GetID()
	if _, ok := r.products[id]; ok {
		return &domain.DuplicateProductError{ProductID: id}
	}
	r.products[id] = product
	r.order = append(r.order, id)
	return nil
}

func (r *Repository) GetProduct(id string) (domain.Product, bool) {
	product, ok := r.products[id]
	return product, ok
}

func (r *Repository) HasProduct(id string) bool {
	_, ok := r.products[id]
	return ok
}

func (r *Repository) CountProducts() int {
	return len(r.products)
}

// ListProducts returns the registered products in registration order.
func (r *Repository) ListProducts() []domain.Product {
	out := make([]domain.Product, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.products[id])
	}
	return out
}
