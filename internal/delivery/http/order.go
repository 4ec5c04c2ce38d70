package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/TukaHeba/Optional-Task6/internal/models"
	"github.com/TukaHeba/Optional-Task6/internal/requests"
)

// ListOrders
// @Summary ListOrders
// @Description Lists orders, optionally filtered by a product name substring
// @ID list-orders
// @Produce json
// @Param product_name query string false "product name substring"
// @Param page query int false "page number"
// @Param perPage query int false "page size"
// @Success 200 {object} response
// @Failure 500 {object} response
// @Router /api/orders [get]
func (h *Handler) ListOrders(c *gin.Context) {
	f := models.OrderFilter{Product: c.Query("product_name")}

	page, perPage := parsePaging(c)
	orders, err := h.orders.ListOrders(f, page, perPage)
	if err != nil {
		newInternalErrorResponse(c)
		return
	}
	newSuccessResponse(c, http.StatusOK, newOrderCollection(orders), "Orders retrieved successfully")
}

// CreateOrder
// @Summary CreateOrder
// @Description Creates an order; the product name is trimmed and title-cased before validation
// @ID create-order
// @Accept json
// @Produce json
// @Param input body requests.StoreOrderRequest true "order fields"
// @Success 201 {object} response
// @Failure 403,500 {object} response
// @Router /api/orders [post]
func (h *Handler) CreateOrder(c *gin.Context) {
	var req requests.StoreOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, nil, "invalid request body")
		return
	}
	req.Normalize()
	if err := h.validator.StoreOrder(&req); err != nil {
		h.handleValidation(c, err)
		return
	}

	order, err := h.orders.CreateOrder(req.ToModel())
	if err != nil {
		newInternalErrorResponse(c)
		return
	}
	newSuccessResponse(c, http.StatusCreated, newOrderResource(order), "Order created successfully")
}

// GetOrderById
// @Summary GetOrderById
// @ID get-order-by-id
// @Produce json
// @Param id path int true "order id"
// @Success 200 {object} response
// @Failure 404,500 {object} response
// @Router /api/orders/{id} [get]
func (h *Handler) GetOrderById(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	order, err := h.orders.ShowOrder(id)
	if err != nil {
		newServiceErrorResponse(c, err, "order not found")
		return
	}
	newSuccessResponse(c, http.StatusOK, newOrderResource(order), "Order retrieved successfully")
}

// UpdateOrder
// @Summary UpdateOrder
// @Description Merge-patch update; the after-or-equal-today date rule applies to creation only
// @ID update-order
// @Accept json
// @Produce json
// @Param id path int true "order id"
// @Param input body requests.UpdateOrderRequest true "any subset of order fields"
// @Success 200 {object} response
// @Failure 403,404,500 {object} response
// @Router /api/orders/{id} [put]
func (h *Handler) UpdateOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req requests.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, nil, "invalid request body")
		return
	}
	req.Normalize()
	if err := h.validator.UpdateOrder(&req); err != nil {
		h.handleValidation(c, err)
		return
	}

	order, err := h.orders.UpdateOrder(id, req.Updates())
	if err != nil {
		newServiceErrorResponse(c, err, "order not found")
		return
	}
	newSuccessResponse(c, http.StatusOK, newOrderResource(order), "Order updated successfully")
}

// DeleteOrder
// @Summary DeleteOrder
// @ID delete-order
// @Produce json
// @Param id path int true "order id"
// @Success 200 {object} response
// @Failure 404,500 {object} response
// @Router /api/orders/{id} [delete]
func (h *Handler) DeleteOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.orders.DeleteOrder(id); err != nil {
		newServiceErrorResponse(c, err, "order not found")
		return
	}
	newSuccessResponse(c, http.StatusOK, nil, "Order deleted successfully")
}

// MakeOrder
// @Summary MakeOrder
// @Description Places an order for the given customer. The payload is validated like a direct create, but its customer_id is ignored in favor of the customerId parameter.
// @ID make-order
// @Accept json
// @Produce json
// @Param customerId query int true "customer id"
// @Param input body requests.StoreOrderRequest true "order fields"
// @Success 201 {object} response
// @Failure 403,404,500 {object} response
// @Router /api/make_order [post]
func (h *Handler) MakeOrder(c *gin.Context) {
	customerID, err := strconv.ParseUint(c.Query("customerId"), 10, 32)
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, nil, "invalid customerId")
		return
	}

	var req requests.StoreOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, nil, "invalid request body")
		return
	}
	req.Normalize()
	if err := h.validator.StoreOrder(&req); err != nil {
		h.handleValidation(c, err)
		return
	}

	order, err := h.orders.PlaceOrder(uint(customerID), req.ToModel())
	if err != nil {
		newServiceErrorResponse(c, err, "customer not found")
		return
	}
	newSuccessResponse(c, http.StatusCreated, newOrderResource(order), "Order placed successfully")
}
