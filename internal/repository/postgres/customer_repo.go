package postgres

import (
	"github.com/jinzhu/gorm"

	"github.com/TukaHeba/Optional-Task6/internal/models"
)

type CustomerPostgresRepo struct {
	db *gorm.DB
}

func NewCustomerPostgres(db *gorm.DB) *CustomerPostgresRepo {
	return &CustomerPostgresRepo{db: db}
}

func (r *CustomerPostgresRepo) List(f models.CustomerFilter, page, perPage int) ([]models.Customer, int, error) {
	q := r.db.Model(&models.Customer{})
	if f.OrderStatus != "" {
		q = q.Scopes(CustomerOrderStatus(f.OrderStatus))
	}
	if f.StartDate != nil && f.EndDate != nil {
		q = q.Scopes(CustomerOrderDateRange(*f.StartDate, *f.EndDate))
	}

	var total int
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var customers []models.Customer
	if err := q.Order("id").Offset((page - 1) * perPage).Limit(perPage).Find(&customers).Error; err != nil {
		return nil, 0, err
	}
	return customers, total, nil
}

func (r *CustomerPostgresRepo) Create(c *models.Customer) error {
	return r.db.Create(c).Error
}

// Get loads the customer together with its orders for the detail view.
func (r *CustomerPostgresRepo) Get(id uint) (models.Customer, error) {
	var c models.Customer
	q := r.db.Preload("Orders").First(&c, id)
	return c, q.Error
}

func (r *CustomerPostgresRepo) Update(id uint, updates map[string]interface{}) (models.Customer, error) {
	var c models.Customer
	if err := r.db.First(&c, id).Error; err != nil {
		return models.Customer{}, err
	}
	if len(updates) > 0 {
		if err := r.db.Model(&c).Updates(updates).Error; err != nil {
			return models.Customer{}, err
		}
	}

	var fresh models.Customer
	if err := r.db.First(&fresh, id).Error; err != nil {
		return models.Customer{}, err
	}
	return fresh, nil
}

func (r *CustomerPostgresRepo) Delete(id uint) error {
	var c models.Customer
	if err := r.db.First(&c, id).Error; err != nil {
		return err
	}
	return r.db.Delete(&c).Error
}

func (r *CustomerPostgresRepo) Exists(id uint) (bool, error) {
	var count int
	err := r.db.Model(&models.Customer{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
