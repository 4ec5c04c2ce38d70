package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/TukaHeba/Optional-Task6/internal/models"
	"github.com/TukaHeba/Optional-Task6/internal/requests"
)

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, nil, "invalid id")
		return 0, false
	}
	return uint(id), true
}

func parsePaging(c *gin.Context) (page, perPage int) {
	page, _ = strconv.Atoi(c.Query("page"))
	perPage, _ = strconv.Atoi(c.Query("perPage"))
	return page, perPage
}

// handleValidation renders a validation failure, or a 500 when the validator
// itself failed (the customer existence check hits the store).
func (h *Handler) handleValidation(c *gin.Context, err error) {
	var verr *requests.ValidationError
	if errors.As(err, &verr) {
		newValidationErrorResponse(c, verr)
		return
	}
	newInternalErrorResponse(c)
}

// ListCustomers
// @Summary ListCustomers
// @Description Lists customers, optionally filtered by their orders' status and date range
// @ID list-customers
// @Produce json
// @Param status query string false "order status" Enums(pending, completed)
// @Param startDate query string false "order date range start (YYYY-MM-DD)"
// @Param endDate query string false "order date range end (YYYY-MM-DD)"
// @Param page query int false "page number"
// @Param perPage query int false "page size"
// @Success 200 {object} response
// @Failure 500 {object} response
// @Router /api/customers [get]
func (h *Handler) ListCustomers(c *gin.Context) {
	var f models.CustomerFilter
	f.OrderStatus = c.Query("status")

	start, serr := time.Parse(requests.DateLayout, c.Query("startDate"))
	end, eerr := time.Parse(requests.DateLayout, c.Query("endDate"))
	if serr == nil && eerr == nil {
		f.StartDate, f.EndDate = &start, &end
	}

	page, perPage := parsePaging(c)
	customers, err := h.customers.ListCustomers(f, page, perPage)
	if err != nil {
		newInternalErrorResponse(c)
		return
	}
	newSuccessResponse(c, http.StatusOK, newCustomerCollection(customers), "Customers retrieved successfully")
}

// CreateCustomer
// @Summary CreateCustomer
// @Description Creates a customer
// @ID create-customer
// @Accept json
// @Produce json
// @Param input body requests.StoreCustomerRequest true "customer fields"
// @Success 201 {object} response
// @Failure 403,500 {object} response
// @Router /api/customers [post]
func (h *Handler) CreateCustomer(c *gin.Context) {
	var req requests.StoreCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, nil, "invalid request body")
		return
	}
	if err := h.validator.StoreCustomer(&req); err != nil {
		h.handleValidation(c, err)
		return
	}

	customer, err := h.customers.CreateCustomer(req.ToModel())
	if err != nil {
		newInternalErrorResponse(c)
		return
	}
	newSuccessResponse(c, http.StatusCreated, newCustomerResource(customer), "Customer created successfully")
}

// GetCustomerById
// @Summary GetCustomerById
// @Description Returns a customer with its orders
// @ID get-customer-by-id
// @Produce json
// @Param id path int true "customer id"
// @Success 200 {object} response
// @Failure 404,500 {object} response
// @Router /api/customers/{id} [get]
func (h *Handler) GetCustomerById(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	customer, err := h.customers.ShowCustomer(id)
	if err != nil {
		newServiceErrorResponse(c, err, "customer not found")
		return
	}
	newSuccessResponse(c, http.StatusOK, newCustomerResource(customer), "Customer retrieved successfully")
}

// UpdateCustomer
// @Summary UpdateCustomer
// @Description Merge-patch update; absent, null and empty fields keep their stored values
// @ID update-customer
// @Accept json
// @Produce json
// @Param id path int true "customer id"
// @Param input body requests.UpdateCustomerRequest true "any subset of customer fields"
// @Success 200 {object} response
// @Failure 403,404,500 {object} response
// @Router /api/customers/{id} [put]
func (h *Handler) UpdateCustomer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req requests.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, nil, "invalid request body")
		return
	}
	if err := h.validator.UpdateCustomer(&req); err != nil {
		h.handleValidation(c, err)
		return
	}

	customer, err := h.customers.UpdateCustomer(id, req.Updates())
	if err != nil {
		newServiceErrorResponse(c, err, "customer not found")
		return
	}
	newSuccessResponse(c, http.StatusOK, newCustomerResource(customer), "Customer updated successfully")
}

// DeleteCustomer
// @Summary DeleteCustomer
// @Description Deletes a customer; a second delete of the same id is a 404
// @ID delete-customer
// @Produce json
// @Param id path int true "customer id"
// @Success 200 {object} response
// @Failure 404,500 {object} response
// @Router /api/customers/{id} [delete]
func (h *Handler) DeleteCustomer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.customers.DeleteCustomer(id); err != nil {
		newServiceErrorResponse(c, err, "customer not found")
		return
	}
	newSuccessResponse(c, http.StatusOK, nil, "Customer deleted successfully")
}
