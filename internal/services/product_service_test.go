package services_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"catalog/internal/dto"
	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/internal/services"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(id uint) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(req repositories.PageRequest) (repositories.Page[models.Product], error) {
	args := m.Called(req)
	return args.Get(0).(repositories.Page[models.Product]), args.Error(1)
}

func (m *MockProductRepository) SearchByName(name string, req repositories.PageRequest) (repositories.Page[models.Product], error) {
	args := m.Called(name, req)
	return args.Get(0).(repositories.Page[models.Product]), args.Error(1)
}

func (m *MockProductRepository) Save(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) DeleteByID(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockProductRepository) ExistsByID(id uint) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

// MockEventPublisher is a mock implementation of services.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(routingKey string, body []byte) error {
	args := m.Called(routingKey, body)
	return args.Error(0)
}

func TestProductService_FindByID(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	entity := &models.Product{ID: 1, Name: "Laptop", Description: "High performance", Price: 1200.0, ImgURL: "http://img/laptop.png"}

	// Test successful retrieval and field mapping
	mockRepo.On("FindByID", uint(1)).Return(entity, nil).Once()
	found, err := service.FindByID(1)
	assert.NoError(t, err)
	assert.Equal(t, dto.ProductDTO{ID: 1, Name: "Laptop", Description: "High performance", Price: 1200.0, ImgURL: "http://img/laptop.png"}, found)
	mockRepo.AssertExpectations(t)

	// Test not-found translation
	mockRepo.On("FindByID", uint(99)).Return(nil, repositories.ErrNotFound).Once()
	_, err = service.FindByID(99)
	assert.ErrorIs(t, err, services.ErrResourceNotFound)
	mockRepo.AssertExpectations(t)
}

func TestProductService_Insert(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockPub := new(MockEventPublisher)
	service := services.NewProductService(mockRepo, mockPub)

	// Store assigns ID 42 on save; any client-supplied ID is ignored.
	mockRepo.On("Save", mock.AnythingOfType("*models.Product")).Run(func(args mock.Arguments) {
		p := args.Get(0).(*models.Product)
		assert.Zero(t, p.ID)
		p.ID = 42
	}).Return(nil).Once()
	mockPub.On("Publish", "product.created", mock.Anything).Return(nil).Once()

	created, err := service.Insert(dto.ProductDTO{ID: 7, Name: "Keyboard", Description: "Mechanical", Price: 75.0})
	assert.NoError(t, err)
	assert.Equal(t, uint(42), created.ID)
	assert.Equal(t, "Keyboard", created.Name)
	assert.Equal(t, 75.0, created.Price)
	mockRepo.AssertExpectations(t)
	mockPub.AssertExpectations(t)
}

func TestProductService_Insert_ValidationCollectsAllViolations(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	// Both fields invalid: both must be reported, nothing persisted.
	_, err := service.Insert(dto.ProductDTO{Name: "ab", Price: -5.0})
	assert.Error(t, err)

	var vErr *services.ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Len(t, vErr.Fields, 2)
	assert.Equal(t, "name", vErr.Fields[0].Field)
	assert.Equal(t, "name must have at least 3 characters", vErr.Fields[0].Message)
	assert.Equal(t, "price", vErr.Fields[1].Field)
	assert.Equal(t, "price must be positive", vErr.Fields[1].Message)
	mockRepo.AssertNotCalled(t, "Save", mock.Anything)
}

func TestProductService_Insert_ValidationSingleViolation(t *testing.T) {
	service := services.NewProductService(new(MockProductRepository), nil)

	_, err := service.Insert(dto.ProductDTO{Name: "Valid Name", Price: -1.0})
	var vErr *services.ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Len(t, vErr.Fields, 1)
	assert.Equal(t, "price", vErr.Fields[0].Field)

	longName := make([]byte, 81)
	for i := range longName {
		longName[i] = 'x'
	}
	_, err = service.Insert(dto.ProductDTO{Name: string(longName), Price: 10.0})
	assert.ErrorAs(t, err, &vErr)
	assert.Len(t, vErr.Fields, 1)
	assert.Equal(t, "name must have at most 80 characters", vErr.Fields[0].Message)
}

func TestProductService_Update(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockPub := new(MockEventPublisher)
	service := services.NewProductService(mockRepo, mockPub)

	existing := &models.Product{ID: 1, Name: "Old Name", Description: "Old", Price: 10.0, ImgURL: "old.png"}

	mockRepo.On("FindByID", uint(1)).Return(existing, nil).Once()
	mockRepo.On("Save", mock.AnythingOfType("*models.Product")).Return(nil).Once()
	mockPub.On("Publish", "product.updated", mock.Anything).Return(nil).Once()

	updated, err := service.Update(1, dto.ProductDTO{Name: "New Name", Description: "New", Price: 20.0, ImgURL: "new.png"})
	assert.NoError(t, err)
	assert.Equal(t, uint(1), updated.ID)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, 20.0, updated.Price)
	assert.Equal(t, "new.png", updated.ImgURL)
	mockRepo.AssertExpectations(t)
	mockPub.AssertExpectations(t)
}

func TestProductService_Update_NotFound(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	mockRepo.On("FindByID", uint(99)).Return(nil, repositories.ErrNotFound).Once()

	_, err := service.Update(99, dto.ProductDTO{Name: "New Name", Price: 20.0})
	assert.ErrorIs(t, err, services.ErrResourceNotFound)
	// A missing ID must never turn into an insert.
	mockRepo.AssertNotCalled(t, "Save", mock.Anything)
}

func TestProductService_Update_ValidatesBeforeLoad(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	_, err := service.Update(1, dto.ProductDTO{Name: "", Price: 0})
	var vErr *services.ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Len(t, vErr.Fields, 2)
	mockRepo.AssertNotCalled(t, "FindByID", mock.Anything)
	mockRepo.AssertNotCalled(t, "Save", mock.Anything)
}

func TestProductService_DeleteByID(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockPub := new(MockEventPublisher)
	service := services.NewProductService(mockRepo, mockPub)

	// Successful delete publishes an event.
	mockRepo.On("ExistsByID", uint(1)).Return(true, nil).Once()
	mockRepo.On("DeleteByID", uint(1)).Return(nil).Once()
	mockPub.On("Publish", "product.deleted", mock.Anything).Return(nil).Once()
	assert.NoError(t, service.DeleteByID(1))
	mockRepo.AssertExpectations(t)
	mockPub.AssertExpectations(t)

	// Missing ID is checked before the delete is attempted.
	mockRepo.On("ExistsByID", uint(99)).Return(false, nil).Once()
	assert.ErrorIs(t, service.DeleteByID(99), services.ErrResourceNotFound)
	mockRepo.AssertNotCalled(t, "DeleteByID", uint(99))

	// Referential rejection is translated, not propagated raw.
	mockRepo.On("ExistsByID", uint(2)).Return(true, nil).Once()
	mockRepo.On("DeleteByID", uint(2)).Return(repositories.ErrIntegrityViolation).Once()
	assert.ErrorIs(t, service.DeleteByID(2), services.ErrDatabaseIntegrity)
	mockRepo.AssertExpectations(t)
}

func TestProductService_PublishFailureDoesNotFailRequest(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockPub := new(MockEventPublisher)
	service := services.NewProductService(mockRepo, mockPub)

	mockRepo.On("Save", mock.AnythingOfType("*models.Product")).Return(nil).Once()
	mockPub.On("Publish", "product.created", mock.Anything).Return(fmt.Errorf("broker down")).Once()

	_, err := service.Insert(dto.ProductDTO{Name: "Monitor", Price: 200.0})
	assert.NoError(t, err)
	mockPub.AssertExpectations(t)
}

func TestProductService_FindAll_PaginationPartition(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()
	service := services.NewProductService(repo, nil)

	const n, size = 25, 10
	for i := 0; i < n; i++ {
		_, err := service.Insert(dto.ProductDTO{Name: fmt.Sprintf("Product %02d", i), Price: float64(i + 1)})
		assert.NoError(t, err)
	}

	seen := make(map[uint]int)
	pages := 0
	for page := 0; ; page++ {
		result, err := service.FindAll(repositories.NewPageRequest(page, size, "id"))
		assert.NoError(t, err)
		if len(result.Content) == 0 {
			break
		}
		pages++
		assert.Equal(t, int64(n), result.TotalElements)
		assert.Equal(t, 3, result.TotalPages)
		for _, p := range result.Content {
			seen[p.ID]++
		}
	}

	// ceil(25/10) pages whose concatenation covers every product exactly once.
	assert.Equal(t, 3, pages)
	assert.Len(t, seen, n)
	for id, count := range seen {
		assert.Equalf(t, 1, count, "product %d appeared %d times", id, count)
	}
}

func TestProductService_SearchByName(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()
	service := services.NewProductService(repo, nil)

	for _, name := range []string{"Gaming Laptop", "Office Laptop", "Ergonomic Mouse"} {
		_, err := service.Insert(dto.ProductDTO{Name: name, Price: 100.0})
		assert.NoError(t, err)
	}

	result, err := service.SearchByName("laptop", repositories.NewPageRequest(0, 10, "name"))
	assert.NoError(t, err)
	assert.Equal(t, int64(2), result.TotalElements)
	assert.Len(t, result.Content, 2)
	assert.Equal(t, "Gaming Laptop", result.Content[0].Name)
	assert.Equal(t, "Office Laptop", result.Content[1].Name)
}

func TestProductService_DeleteReferencedProduct(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()
	service := services.NewProductService(repo, nil)

	created, err := service.Insert(dto.ProductDTO{Name: "Ordered Product", Price: 10.0})
	assert.NoError(t, err)
	repo.AddReference(created.ID)

	assert.ErrorIs(t, service.DeleteByID(created.ID), services.ErrDatabaseIntegrity)

	// Still present after the rejected delete.
	_, err = service.FindByID(created.ID)
	assert.NoError(t, err)
}
