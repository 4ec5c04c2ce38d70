package requests

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/TukaHeba/Optional-Task6/internal/models"
)

type StoreOrderRequest struct {
	ProductName string  `json:"product_name" validate:"required,min=2,max=255"`
	Quantity    int     `json:"quantity"     validate:"required,min=1"`
	Price       float64 `json:"price"        validate:"required,min=1"`
	Status      string  `json:"status"       validate:"required,oneof=pending completed"`
	CustomerID  uint    `json:"customer_id"  validate:"required"`
	OrderDate   string  `json:"order_date"   validate:"required,datetime=2006-01-02"`
}

// Normalize trims the product name and capitalizes each word. It runs before
// validation, so length rules apply to the normalized value and the
// normalized value is what gets persisted.
func (r *StoreOrderRequest) Normalize() {
	r.ProductName = ucwords(strings.TrimSpace(r.ProductName))
}

func (r *StoreOrderRequest) ToModel() models.Order {
	date, _ := time.Parse(DateLayout, r.OrderDate)
	return models.Order{
		ProductName: r.ProductName,
		Quantity:    r.Quantity,
		Price:       r.Price,
		Status:      r.Status,
		CustomerID:  r.CustomerID,
		OrderDate:   date,
	}
}

type UpdateOrderRequest struct {
	ProductName *string  `json:"product_name" validate:"omitempty,min=2,max=255"`
	Quantity    *int     `json:"quantity"     validate:"omitempty,min=1"`
	Price       *float64 `json:"price"        validate:"omitempty,min=1"`
	Status      *string  `json:"status"       validate:"omitempty,oneof=pending completed"`
	CustomerID  *uint    `json:"customer_id"  validate:"-"`
	OrderDate   *string  `json:"order_date"   validate:"omitempty,datetime=2006-01-02"`
}

func (r *UpdateOrderRequest) Normalize() {
	if r.ProductName != nil {
		name := ucwords(strings.TrimSpace(*r.ProductName))
		r.ProductName = &name
	}
}

// Updates builds the merge-patch column map. Absent, null and empty values
// are dropped, never written.
func (r *UpdateOrderRequest) Updates() map[string]interface{} {
	u := map[string]interface{}{}
	if r.ProductName != nil && *r.ProductName != "" {
		u["product_name"] = *r.ProductName
	}
	if r.Quantity != nil && *r.Quantity != 0 {
		u["quantity"] = *r.Quantity
	}
	if r.Price != nil && *r.Price != 0 {
		u["price"] = *r.Price
	}
	if r.Status != nil && *r.Status != "" {
		u["status"] = *r.Status
	}
	if r.CustomerID != nil && *r.CustomerID != 0 {
		u["customer_id"] = *r.CustomerID
	}
	if r.OrderDate != nil && *r.OrderDate != "" {
		if date, err := time.Parse(DateLayout, *r.OrderDate); err == nil {
			u["order_date"] = date
		}
	}
	return u
}

// StoreOrder validates an order creation payload. The order_date must not be
// in the past and customer_id must reference an existing customer.
func (vl *Validator) StoreOrder(req *StoreOrderRequest) error {
	msgs, err := vl.structMessages(req)
	if err != nil {
		return err
	}

	if req.OrderDate != "" {
		if date, perr := time.Parse(DateLayout, req.OrderDate); perr == nil && date.Before(vl.today()) {
			msgs = append(msgs, "The order date must be a date after or equal to today.")
		}
	}

	if req.CustomerID != 0 {
		ok, cerr := vl.customerExists(req.CustomerID)
		if cerr != nil {
			return fmt.Errorf("customer existence check: %w", cerr)
		}
		if !ok {
			msgs = append(msgs, "The selected customer ID is invalid.")
		}
	}

	return fail(msgs)
}

// UpdateOrder validates a merge-patch payload. Only supplied fields are
// checked; the after-or-equal-today rule applies to creation only.
func (vl *Validator) UpdateOrder(req *UpdateOrderRequest) error {
	msgs, err := vl.structMessages(req)
	if err != nil {
		return err
	}

	if req.CustomerID != nil && *req.CustomerID != 0 {
		ok, cerr := vl.customerExists(*req.CustomerID)
		if cerr != nil {
			return fmt.Errorf("customer existence check: %w", cerr)
		}
		if !ok {
			msgs = append(msgs, "The selected customer ID is invalid.")
		}
	}

	return fail(msgs)
}

// ucwords upper-cases the first letter of every space-separated word,
// leaving the rest of each word untouched.
func ucwords(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevSpace := true
	for _, r := range s {
		if prevSpace {
			r = unicode.ToUpper(r)
		}
		prevSpace = unicode.IsSpace(r)
		b.WriteRune(r)
	}
	return b.String()
}
