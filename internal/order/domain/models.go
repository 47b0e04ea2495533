// Package domain contains order types. Orders are a record of purchase
// intent: rows are inserted as pending and never transition.
package domain

import "time"

const StatusPending = "pending"

type Order struct {
	ID         int64     `gorm:"primaryKey" json:"id"`
	CustomerID int64     `gorm:"column:customer_id;index" json:"customer_id"`
	ProductID  int64     `gorm:"column:product_id;index" json:"product_id"`
	Status     string    `gorm:"type:text;not null;default:pending" json:"status"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
}

// TableName sets the database table name.
func (Order) TableName() string { return "orders" }

// Summary is an order history row joined with the ordered product.
type Summary struct {
	ID          int64     `json:"id"`
	CustomerID  int64     `gorm:"column:customer_id" json:"customer_id"`
	ProductID   int64     `gorm:"column:product_id" json:"product_id"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	ProductName string    `json:"product_name"`
	Price       float64   `json:"price"`
	ImageURL    string    `gorm:"column:image_url" json:"image_url"`
}
