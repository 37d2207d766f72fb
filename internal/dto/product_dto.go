package dto

import "catalog/internal/models"

// ProductDTO is the client-facing projection of a product. It carries no
// category or order data. On create the ID field is ignored; the store
// assigns one.
type ProductDTO struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name" validate:"required,min=3,max=80"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	ImgURL      string  `json:"imgUrl"`
}

// NewProductDTO projects a product entity into its transfer shape. Pure
// field copy, no store access.
func NewProductDTO(p *models.Product) ProductDTO {
	return ProductDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		ImgURL:      p.ImgURL,
	}
}

// CategoryDTO is the transfer shape for a category.
type CategoryDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// NewCategoryDTO projects a category entity into its transfer shape.
func NewCategoryDTO(c *models.Category) CategoryDTO {
	return CategoryDTO{ID: c.ID, Name: c.Name}
}
