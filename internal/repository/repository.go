package repository

import (
	"github.com/jinzhu/gorm"

	"github.com/TukaHeba/Optional-Task6/internal/models"
	"github.com/TukaHeba/Optional-Task6/internal/repository/postgres"
)

type CustomerPostgres interface {
	List(f models.CustomerFilter, page, perPage int) ([]models.Customer, int, error)
	Create(c *models.Customer) error
	Get(id uint) (models.Customer, error)
	Update(id uint, updates map[string]interface{}) (models.Customer, error)
	Delete(id uint) error
	Exists(id uint) (bool, error)
}

type OrderPostgres interface {
	List(f models.OrderFilter, page, perPage int) ([]models.Order, int, error)
	Create(o *models.Order) error
	Get(id uint) (models.Order, error)
	Update(id uint, updates map[string]interface{}) (models.Order, error)
	Delete(id uint) error
}

type Repository struct {
	CustomerPostgres
	OrderPostgres
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		CustomerPostgres: postgres.NewCustomerPostgres(db),
		OrderPostgres:    postgres.NewOrderPostgres(db),
	}
}
