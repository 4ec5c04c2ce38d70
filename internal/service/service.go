package service

import (
	"context"

	"github.com/TukaHeba/Optional-Task6/internal/models"
	"github.com/TukaHeba/Optional-Task6/internal/repository"
)

type Customer interface {
	ListCustomers(f models.CustomerFilter, page, perPage int) (CustomerPage, error)
	CreateCustomer(c models.Customer) (models.Customer, error)
	ShowCustomer(id uint) (models.Customer, error)
	UpdateCustomer(id uint, updates map[string]interface{}) (models.Customer, error)
	DeleteCustomer(id uint) error
	CustomerExists(id uint) (bool, error)
}

type Order interface {
	ListOrders(f models.OrderFilter, page, perPage int) (OrderPage, error)
	CreateOrder(o models.Order) (models.Order, error)
	ShowOrder(id uint) (models.Order, error)
	UpdateOrder(id uint, updates map[string]interface{}) (models.Order, error)
	DeleteOrder(id uint) error
	PlaceOrder(customerID uint, o models.Order) (models.Order, error)
}

// OrderEvents receives every successfully created order. A nil publisher
// disables the stream.
type OrderEvents interface {
	PublishOrder(ctx context.Context, o models.Order) error
}

type Pagination struct {
	Total       int `json:"total"`
	PerPage     int `json:"per_page"`
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
}

type CustomerPage struct {
	Customers []models.Customer
	Pagination
}

type OrderPage struct {
	Orders []models.Order
	Pagination
}

type Service struct {
	customers repository.CustomerPostgres
	orders    repository.OrderPostgres
	events    OrderEvents
	perPage   int
}

func NewService(repo *repository.Repository, events OrderEvents, defaultPerPage int) *Service {
	if defaultPerPage < 1 {
		defaultPerPage = 5
	}
	return &Service{
		customers: repo.CustomerPostgres,
		orders:    repo.OrderPostgres,
		events:    events,
		perPage:   defaultPerPage,
	}
}

func paginate(total, page, perPage int) Pagination {
	last := (total + perPage - 1) / perPage
	if last < 1 {
		last = 1
	}
	return Pagination{
		Total:       total,
		PerPage:     perPage,
		CurrentPage: page,
		LastPage:    last,
	}
}

func (s *Service) normalizePaging(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = s.perPage
	}
	return page, perPage
}
