package models

import (
	"time"
)

type Customer struct {
	ID        uint      `json:"id"    gorm:"primary_key"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone" gorm:"type:varchar(32)"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Orders []Order `json:"orders,omitempty" gorm:"foreignkey:CustomerID"`
}
