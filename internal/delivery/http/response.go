package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/TukaHeba/Optional-Task6/internal/models"
	"github.com/TukaHeba/Optional-Task6/internal/requests"
	"github.com/TukaHeba/Optional-Task6/internal/service"
)

// response is the uniform envelope for every outcome, success or failure.
type response struct {
	Success    bool        `json:"success"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	StatusCode int         `json:"statusCode"`
}

func newSuccessResponse(c *gin.Context, statusCode int, data interface{}, message string) {
	c.JSON(statusCode, response{
		Success:    true,
		Data:       data,
		Message:    message,
		StatusCode: statusCode,
	})
}

func newErrorResponse(c *gin.Context, statusCode int, data interface{}, message string) {
	c.AbortWithStatusJSON(statusCode, response{
		Success:    false,
		Data:       data,
		Message:    message,
		StatusCode: statusCode,
	})
}

// newValidationErrorResponse renders the ordered field messages in the data
// slot with the fixed validation status.
func newValidationErrorResponse(c *gin.Context, verr *requests.ValidationError) {
	newErrorResponse(c, http.StatusForbidden, verr.Messages, verr.Error())
}

// newInternalErrorResponse is for operations that cannot miss a row, where
// any service failure is the sanitized 500.
func newInternalErrorResponse(c *gin.Context) {
	newErrorResponse(c, http.StatusInternalServerError, nil, service.ErrInternal.Error())
}

func newServiceErrorResponse(c *gin.Context, err error, notFoundMessage string) {
	if errors.Is(err, service.ErrNotFound) {
		newErrorResponse(c, http.StatusNotFound, nil, notFoundMessage)
		return
	}
	newErrorResponse(c, http.StatusInternalServerError, nil, service.ErrInternal.Error())
}

// displayDateLayout is how order dates are rendered on the wire.
const displayDateLayout = "02-01-2006"

type orderResource struct {
	ID          uint      `json:"id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	Price       float64   `json:"price"`
	Status      string    `json:"status"`
	CustomerID  uint      `json:"customer_id"`
	OrderDate   string    `json:"order_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newOrderResource(o models.Order) orderResource {
	return orderResource{
		ID:          o.ID,
		ProductName: o.ProductName,
		Quantity:    o.Quantity,
		Price:       o.Price,
		Status:      o.Status,
		CustomerID:  o.CustomerID,
		OrderDate:   o.OrderDate.Format(displayDateLayout),
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

type customerResource struct {
	ID        uint            `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Phone     string          `json:"phone"`
	Orders    []orderResource `json:"orders,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func newCustomerResource(c models.Customer) customerResource {
	res := customerResource{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	for _, o := range c.Orders {
		res.Orders = append(res.Orders, newOrderResource(o))
	}
	return res
}

// collection wraps a page of resources with its pagination metadata.
type collection struct {
	Items interface{}        `json:"items"`
	Meta  service.Pagination `json:"meta"`
}

func newCustomerCollection(p service.CustomerPage) collection {
	items := make([]customerResource, 0, len(p.Customers))
	for _, c := range p.Customers {
		items = append(items, newCustomerResource(c))
	}
	return collection{Items: items, Meta: p.Pagination}
}

func newOrderCollection(p service.OrderPage) collection {
	items := make([]orderResource, 0, len(p.Orders))
	for _, o := range p.Orders {
		items = append(items, newOrderResource(o))
	}
	return collection{Items: items, Meta: p.Pagination}
}
