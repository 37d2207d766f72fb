package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"catalog/internal/dto"
	"catalog/internal/models"
	"catalog/internal/repositories"
)

// EventPublisher delivers catalog change events to interested consumers.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}

// ProductService handles business logic related to products: one store call
// per operation, store failures re-expressed as domain errors, entities
// mapped to DTOs at the boundary.
type ProductService struct {
	repo      repositories.ProductRepository
	publisher EventPublisher
	validate  *validator.Validate
}

// NewProductService creates a new ProductService. The publisher may be nil;
// events are then skipped.
func NewProductService(repo repositories.ProductRepository, publisher EventPublisher) *ProductService {
	return &ProductService{
		repo:      repo,
		publisher: publisher,
		validate:  newDTOValidator(),
	}
}

// FindByID retrieves a single product by its ID.
func (s *ProductService) FindByID(id uint) (dto.ProductDTO, error) {
	product, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return dto.ProductDTO{}, ErrResourceNotFound
		}
		return dto.ProductDTO{}, fmt.Errorf("failed to find product %d: %w", id, err)
	}
	return dto.NewProductDTO(product), nil
}

// FindAll retrieves one page of products. Pagination is delegated entirely to
// the store; order and page metadata are preserved through the DTO mapping.
func (s *ProductService) FindAll(req repositories.PageRequest) (repositories.Page[dto.ProductDTO], error) {
	page, err := s.repo.FindAll(req)
	if err != nil {
		return repositories.Page[dto.ProductDTO]{}, fmt.Errorf("failed to list products: %w", err)
	}
	return repositories.MapPage(page, dto.NewProductDTO), nil
}

// SearchByName retrieves one page of products filtered server-side by name.
func (s *ProductService) SearchByName(name string, req repositories.PageRequest) (repositories.Page[dto.ProductDTO], error) {
	page, err := s.repo.SearchByName(name, req)
	if err != nil {
		return repositories.Page[dto.ProductDTO]{}, fmt.Errorf("failed to search products by name: %w", err)
	}
	return repositories.MapPage(page, dto.NewProductDTO), nil
}

// Insert validates and persists a new product. Any client-supplied ID is
// ignored; the store assigns the identity.
func (s *ProductService) Insert(payload dto.ProductDTO) (dto.ProductDTO, error) {
	if err := checkDTO(s.validate, payload); err != nil {
		return dto.ProductDTO{}, err
	}

	product := models.Product{}
	copyDTOToProduct(payload, &product)
	if err := s.repo.Save(&product); err != nil {
		return dto.ProductDTO{}, fmt.Errorf("failed to insert product: %w", err)
	}

	created := dto.NewProductDTO(&product)
	s.publishEvent("product.created", created)
	return created, nil
}

// Update loads the existing product, overwrites its mutable fields from the
// payload and persists. It never creates a new product for a missing ID.
func (s *ProductService) Update(id uint, payload dto.ProductDTO) (dto.ProductDTO, error) {
	if err := checkDTO(s.validate, payload); err != nil {
		return dto.ProductDTO{}, err
	}

	product, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return dto.ProductDTO{}, ErrResourceNotFound
		}
		return dto.ProductDTO{}, fmt.Errorf("failed to load product %d for update: %w", id, err)
	}

	copyDTOToProduct(payload, product)
	if err := s.repo.Save(product); err != nil {
		return dto.ProductDTO{}, fmt.Errorf("failed to update product %d: %w", id, err)
	}

	updated := dto.NewProductDTO(product)
	s.publishEvent("product.updated", updated)
	return updated, nil
}

// DeleteByID removes a product. The existence check runs first so a missing
// ID reports NotFound rather than a bare store error; a referential
// rejection from the store reports an integrity conflict.
func (s *ProductService) DeleteByID(id uint) error {
	exists, err := s.repo.ExistsByID(id)
	if err != nil {
		return fmt.Errorf("failed to check product %d: %w", id, err)
	}
	if !exists {
		return ErrResourceNotFound
	}

	if err := s.repo.DeleteByID(id); err != nil {
		switch {
		case errors.Is(err, repositories.ErrIntegrityViolation):
			return ErrDatabaseIntegrity
		case errors.Is(err, repositories.ErrNotFound):
			// Lost a race with a concurrent delete.
			return ErrResourceNotFound
		default:
			return fmt.Errorf("failed to delete product %d: %w", id, err)
		}
	}

	s.publishEvent("product.deleted", dto.ProductDTO{ID: id})
	return nil
}

// copyDTOToProduct overwrites the product's mutable fields from the payload.
// Identity and associations are left untouched.
func copyDTOToProduct(payload dto.ProductDTO, product *models.Product) {
	product.Name = payload.Name
	product.Description = payload.Description
	product.Price = payload.Price
	product.ImgURL = payload.ImgURL
}

// catalogEvent is the envelope published for every successful write.
type catalogEvent struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	Timestamp time.Time      `json:"timestamp"`
	Product   dto.ProductDTO `json:"product"`
}

// publishEvent sends a catalog change event. Publishing is best-effort:
// failures are logged and never fail the request.
func (s *ProductService) publishEvent(eventType string, product dto.ProductDTO) {
	if s.publisher == nil {
		return
	}

	body, err := json.Marshal(catalogEvent{
		ID:        uuid.New().String(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Product:   product,
	})
	if err != nil {
		log.Printf("Failed to marshal %s event for product %d: %v", eventType, product.ID, err)
		return
	}
	if err := s.publisher.Publish(eventType, body); err != nil {
		log.Printf("Warning: failed to publish %s event for product %d: %v", eventType, product.ID, err)
	}
}
