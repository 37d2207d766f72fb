package repositories

import (
	"sort"
	"strings"
	"sync"

	"catalog/internal/models"
)

// MemoryProductRepository is an in-memory implementation of
// ProductRepository. It mirrors the relational store's contract, including
// the referential rejection of deletes, so services can be exercised without
// a database.
type MemoryProductRepository struct {
	mu         sync.RWMutex
	products   map[uint]models.Product
	referenced map[uint]bool
	nextID     uint
}

// NewMemoryProductRepository creates an empty in-memory repository.
func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{
		products:   make(map[uint]models.Product),
		referenced: make(map[uint]bool),
		nextID:     1,
	}
}

// AddReference marks a product as referenced by an order item, so DeleteByID
// rejects it the way the relational store would.
func (r *MemoryProductRepository) AddReference(productID uint) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.referenced[productID] = true
}

// FindByID returns a product by its ID.
func (r *MemoryProductRepository) FindByID(id uint) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &product, nil
}

// FindAll returns one page of products, ordered per the page request.
func (r *MemoryProductRepository) FindAll(req PageRequest) (Page[models.Product], error) {
	return r.page(req, func(models.Product) bool { return true })
}

// SearchByName returns one page of products whose name contains the fragment,
// case-insensitively.
func (r *MemoryProductRepository) SearchByName(name string, req PageRequest) (Page[models.Product], error) {
	fragment := strings.ToUpper(name)
	return r.page(req, func(p models.Product) bool {
		return strings.Contains(strings.ToUpper(p.Name), fragment)
	})
}

func (r *MemoryProductRepository) page(req PageRequest, keep func(models.Product) bool) (Page[models.Product], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matching := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		if keep(p) {
			matching = append(matching, p)
		}
	}

	column, desc := "id", false
	if parts := strings.SplitN(req.OrderClause(), " ", 2); len(parts) == 2 {
		column, desc = parts[0], parts[1] == "desc"
	}
	sort.Slice(matching, func(i, j int) bool {
		a, b := matching[i], matching[j]
		var c int
		switch column {
		case "name":
			c = strings.Compare(a.Name, b.Name)
		case "price":
			switch {
			case a.Price < b.Price:
				c = -1
			case a.Price > b.Price:
				c = 1
			}
		default:
			switch {
			case a.ID < b.ID:
				c = -1
			case a.ID > b.ID:
				c = 1
			}
		}
		if desc {
			c = -c
		}
		if c != 0 {
			return c < 0
		}
		return a.ID < b.ID // stable tie-break for deterministic paging
	})

	start := req.Offset()
	if start > len(matching) {
		start = len(matching)
	}
	end := start + req.Size
	if end > len(matching) {
		end = len(matching)
	}
	return NewPage(matching[start:end], req, int64(len(matching))), nil
}

// Save stores the product, assigning an ID when it has none.
func (r *MemoryProductRepository) Save(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == 0 {
		product.ID = r.nextID
		r.nextID++
	} else if product.ID >= r.nextID {
		r.nextID = product.ID + 1
	}
	r.products[product.ID] = *product
	return nil
}

// DeleteByID removes a product, rejecting the delete while a reference to it
// exists.
func (r *MemoryProductRepository) DeleteByID(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return ErrNotFound
	}
	if r.referenced[id] {
		return ErrIntegrityViolation
	}
	delete(r.products, id)
	return nil
}

// ExistsByID reports whether a product with the given ID exists.
func (r *MemoryProductRepository) ExistsByID(id uint) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.products[id]
	return ok, nil
}
