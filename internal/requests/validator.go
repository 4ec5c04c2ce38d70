package requests

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the wire format for order_date fields.
const DateLayout = "2006-01-02"

// CustomerExistsFunc reports whether a customer row exists. The validator
// uses it for the customer_id foreign-key rule.
type CustomerExistsFunc func(id uint) (bool, error)

// ValidationError carries the ordered, human-readable rule violations for a
// single request. It is rendered by the HTTP boundary, never logged.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "The given data was invalid."
}

// Validator runs the second stage of the request pipeline: requests are
// normalized first, then validated here.
type Validator struct {
	v              *validator.Validate
	customerExists CustomerExistsFunc
	now            func() time.Time
}

func NewValidator(customerExists CustomerExistsFunc) *Validator {
	return &Validator{
		v:              validator.New(),
		customerExists: customerExists,
		now:            time.Now,
	}
}

// today returns midnight of the current day in UTC, matching the timezone of
// parsed order_date values.
func (vl *Validator) today() time.Time {
	y, m, d := vl.now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (vl *Validator) structMessages(req interface{}) ([]string, error) {
	err := vl.v.Struct(req)
	if err == nil {
		return nil, nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil, fmt.Errorf("validate: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, message(fe))
	}
	return msgs, nil
}

// attributes maps struct fields to the attribute names used in messages.
var attributes = map[string]string{
	"Name":        "name",
	"Email":       "email",
	"Phone":       "phone",
	"ProductName": "product name",
	"Quantity":    "product quantity",
	"Price":       "product price",
	"Status":      "order status",
	"CustomerID":  "customer ID",
	"OrderDate":   "order date",
}

func attribute(field string) string {
	if a, ok := attributes[field]; ok {
		return a
	}
	return strings.ToLower(field)
}

func message(fe validator.FieldError) string {
	attr := attribute(fe.StructField())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", attr)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("The %s must be at least %s characters.", attr, fe.Param())
		}
		return fmt.Sprintf("The %s must be at least %s.", attr, fe.Param())
	case "max":
		return fmt.Sprintf("The %s may not be greater than %s characters.", attr, fe.Param())
	case "oneof":
		return fmt.Sprintf("The selected %s is invalid. Allowed values are: pending, completed.", attr)
	case "datetime":
		return fmt.Sprintf("The %s is not a valid date.", attr)
	default:
		return fmt.Sprintf("The %s is invalid.", attr)
	}
}

func fail(msgs []string) error {
	if len(msgs) == 0 {
		return nil
	}
	return &ValidationError{Messages: msgs}
}
