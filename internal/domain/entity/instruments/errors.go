package instruments

import (
	"errors"
	"fmt"
)

var (
	ErrNilProduct               = errors.New("product is nil")
	ErrProductAlreadyRegistered = errors.New("product already registered")
)

// DuplicateProductError reports a registration attempt for an ID that is already present.
type DuplicateProductError struct {
	ProductID string
}

func (e *DuplicateProductError) Error() string {
	return fmt.Sprintf("%s: %s", ErrProductAlreadyRegistered, e.ProductID)
}

func (e *DuplicateProductError) Is(target error) bool {
	return target == ErrProductAlreadyRegistered
}
