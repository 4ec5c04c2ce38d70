package models

import (
	"time"
)

// CustomerFilter narrows a customer listing by attributes of the customers'
// orders. Filters are optional and AND-combined.
type CustomerFilter struct {
	OrderStatus string
	StartDate   *time.Time
	EndDate     *time.Time
}

// OrderFilter narrows an order listing by a product name substring.
type OrderFilter struct {
	Product string
}
