package postgres

import (
	"time"

	"github.com/jinzhu/gorm"
)

// Filter scopes are free functions over the query builder so they compose
// with gorm's Scopes and can be tested independently of the entities.

// CustomerOrderStatus keeps customers having at least one order with the
// given status.
func CustomerOrderStatus(status string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(
			"EXISTS (SELECT 1 FROM orders WHERE orders.customer_id = customers.id AND orders.status = ?)",
			status,
		)
	}
}

// CustomerOrderDateRange keeps customers having at least one order dated
// within [start, end], bounds inclusive.
func CustomerOrderDateRange(start, end time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(
			"EXISTS (SELECT 1 FROM orders WHERE orders.customer_id = customers.id AND orders.order_date BETWEEN ? AND ?)",
			start, end,
		)
	}
}

// OrderProductLike keeps orders whose product name contains text, matched
// case-insensitively.
func OrderProductLike(text string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("product_name ILIKE ?", "%"+text+"%")
	}
}
