package models

// Product represents a catalog product.
// No soft-delete column on purpose: DELETE must be a real row removal so the
// order_items foreign key can reject it while references exist.
type Product struct {
	ID          uint        `json:"id" gorm:"primaryKey"`
	Name        string      `json:"name" gorm:"type:varchar(80);not null"`
	Description string      `json:"description" gorm:"type:text"`
	Price       float64     `json:"price" gorm:"not null"`
	ImgURL      string      `json:"imgUrl" gorm:"column:img_url"`
	Categories  []Category  `json:"categories,omitempty" gorm:"many2many:product_categories"`
	Items       []OrderItem `json:"-" gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT"`
}

// Category groups products. The relation is owned by Product; a category
// never cascades into its products.
type Category struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	Name     string    `json:"name" gorm:"type:varchar(80);not null"`
	Products []Product `json:"-" gorm:"many2many:product_categories"`
}
