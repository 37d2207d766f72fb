package repositories

import (
	"catalog/internal/models"
)

// CategoryRepository defines the data store contract for categories.
type CategoryRepository interface {
	FindAll() ([]models.Category, error)
}
