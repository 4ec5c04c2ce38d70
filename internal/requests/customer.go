package requests

import (
	"github.com/TukaHeba/Optional-Task6/internal/models"
)

type StoreCustomerRequest struct {
	Name  string `json:"name"  validate:"required"`
	Email string `json:"email" validate:"required"`
	Phone string `json:"phone" validate:"required"`
}

func (r *StoreCustomerRequest) ToModel() models.Customer {
	return models.Customer{
		Name:  r.Name,
		Email: r.Email,
		Phone: r.Phone,
	}
}

type UpdateCustomerRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

// Updates builds the merge-patch column map. Null and empty fields are left
// untouched on the stored row.
func (r *UpdateCustomerRequest) Updates() map[string]interface{} {
	u := map[string]interface{}{}
	if r.Name != nil && *r.Name != "" {
		u["name"] = *r.Name
	}
	if r.Email != nil && *r.Email != "" {
		u["email"] = *r.Email
	}
	if r.Phone != nil && *r.Phone != "" {
		u["phone"] = *r.Phone
	}
	return u
}

func (vl *Validator) StoreCustomer(req *StoreCustomerRequest) error {
	msgs, err := vl.structMessages(req)
	if err != nil {
		return err
	}
	return fail(msgs)
}

// UpdateCustomer accepts any subset of fields; there are no per-field rules
// beyond presence on create, so a merge-patch payload is always valid.
func (vl *Validator) UpdateCustomer(req *UpdateCustomerRequest) error {
	msgs, err := vl.structMessages(req)
	if err != nil {
		return err
	}
	return fail(msgs)
}
