package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/TukaHeba/Optional-Task6/internal/requests"
	"github.com/TukaHeba/Optional-Task6/internal/service"

	_ "github.com/TukaHeba/Optional-Task6/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Handler struct {
	customers service.Customer
	orders    service.Order
	validator *requests.Validator
}

func NewHandler(customers service.Customer, orders service.Order) *Handler {
	return &Handler{
		customers: customers,
		orders:    orders,
		validator: requests.NewValidator(customers.CustomerExists),
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.Default()

	api := router.Group("/api")
	{
		api.GET("/customers", h.ListCustomers)
		api.POST("/customers", h.CreateCustomer)
		api.GET("/customers/:id", h.GetCustomerById)
		api.PUT("/customers/:id", h.UpdateCustomer)
		api.PATCH("/customers/:id", h.UpdateCustomer)
		api.DELETE("/customers/:id", h.DeleteCustomer)

		api.GET("/orders", h.ListOrders)
		api.POST("/orders", h.CreateOrder)
		api.GET("/orders/:id", h.GetOrderById)
		api.PUT("/orders/:id", h.UpdateOrder)
		api.PATCH("/orders/:id", h.UpdateOrder)
		api.DELETE("/orders/:id", h.DeleteOrder)

		api.POST("/make_order", h.MakeOrder)
	}

	router.NoRoute(func(c *gin.Context) {
		newErrorResponse(c, http.StatusNotFound, nil, "not found")
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}
