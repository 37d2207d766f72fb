package repositories

import (
	"errors"

	"catalog/internal/models"
)

// Store-level failure signals. Concrete repositories translate their driver
// errors into these; services never see a raw driver error.
var (
	// ErrNotFound signals that the requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrIntegrityViolation signals a write rejected because another record
	// still references the target.
	ErrIntegrityViolation = errors.New("referential integrity violation")
)

// ProductRepository defines the data store contract for products.
type ProductRepository interface {
	FindByID(id uint) (*models.Product, error)
	FindAll(req PageRequest) (Page[models.Product], error)
	SearchByName(name string, req PageRequest) (Page[models.Product], error)
	Save(product *models.Product) error
	DeleteByID(id uint) error
	ExistsByID(id uint) (bool, error)
}
