package models

import (
	"time"
)

// Order statuses accepted by the API.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

type Order struct {
	ID          uint      `json:"id"           gorm:"primary_key"`
	ProductName string    `json:"product_name" gorm:"type:varchar(255)"`
	Quantity    int       `json:"quantity"`
	Price       float64   `json:"price"        gorm:"type:decimal(10,2)"`
	Status      string    `json:"status"       gorm:"type:varchar(16);index"`
	CustomerID  uint      `json:"customer_id"  gorm:"index;not null"`
	OrderDate   time.Time `json:"order_date"   gorm:"type:date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
