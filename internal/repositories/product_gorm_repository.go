package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"catalog/internal/models"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
// The *gorm.DB must be opened with TranslateError so driver failures arrive
// as gorm.ErrRecordNotFound / gorm.ErrForeignKeyViolated.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// FindByID retrieves a single product by its ID.
func (r *GORMProductRepository) FindByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product by ID %d: %w", id, err)
	}
	return &product, nil
}

// FindAll retrieves one page of products, ordered per the page request.
func (r *GORMProductRepository) FindAll(req PageRequest) (Page[models.Product], error) {
	return r.findPage(r.db.Model(&models.Product{}), req)
}

// SearchByName retrieves one page of products whose name contains the given
// fragment, case-insensitively.
func (r *GORMProductRepository) SearchByName(name string, req PageRequest) (Page[models.Product], error) {
	query := r.db.Model(&models.Product{}).
		Where("UPPER(name) LIKE UPPER(?)", "%"+name+"%")
	return r.findPage(query, req)
}

func (r *GORMProductRepository) findPage(query *gorm.DB, req PageRequest) (Page[models.Product], error) {
	var total int64
	// Count on a fresh session so it does not pollute the listing statement.
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return Page[models.Product]{}, fmt.Errorf("failed to count products: %w", err)
	}

	var products []models.Product
	err := query.
		Order(req.OrderClause()).
		Offset(req.Offset()).
		Limit(req.Size).
		Find(&products).Error
	if err != nil {
		return Page[models.Product]{}, fmt.Errorf("failed to list products: %w", err)
	}
	return NewPage(products, req, total), nil
}

// Save persists the product. A zero ID inserts and lets the store assign the
// identity; a non-zero ID updates the existing row.
func (r *GORMProductRepository) Save(product *models.Product) error {
	if err := r.db.Save(product).Error; err != nil {
		return fmt.Errorf("failed to save product: %w", err)
	}
	return nil
}

// DeleteByID removes a product row. A foreign key rejection (an order item
// still references the product) surfaces as ErrIntegrityViolation.
func (r *GORMProductRepository) DeleteByID(id uint) error {
	res := r.db.Delete(&models.Product{}, id)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrForeignKeyViolated) {
			return ErrIntegrityViolation
		}
		return fmt.Errorf("failed to delete product %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ExistsByID reports whether a product row with the given ID exists.
func (r *GORMProductRepository) ExistsByID(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Product{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check product %d: %w", id, err)
	}
	return count > 0, nil
}
