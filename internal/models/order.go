package models

import "time"

// Order is the parent record for order items.
type Order struct {
	ID     uint        `json:"id" gorm:"primaryKey"`
	Moment time.Time   `json:"moment"`
	Status string      `json:"status" gorm:"type:varchar(20)"`
	Items  []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// OrderItem links an order to a product. The composite primary key keeps at
// most one row per (order, product). Price is a snapshot taken at order time
// and does not follow the product's current price.
//
// The OnDelete:RESTRICT constraint declared on Product.Items is what turns a
// DELETE of a still-ordered product into a foreign key violation instead of
// a cascade.
type OrderItem struct {
	OrderID   uint    `json:"orderId" gorm:"primaryKey;autoIncrement:false"`
	ProductID uint    `json:"productId" gorm:"primaryKey;autoIncrement:false"`
	Quantity  int     `json:"quantity" gorm:"not null"`
	Price     float64 `json:"price" gorm:"not null"`
	Order     Order   `json:"-" gorm:"foreignKey:OrderID"`
	Product   Product `json:"-" gorm:"foreignKey:ProductID"`
}
