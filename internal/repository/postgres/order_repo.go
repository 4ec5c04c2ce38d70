package postgres

import (
	"github.com/jinzhu/gorm"

	"github.com/TukaHeba/Optional-Task6/internal/models"
)

type OrderPostgresRepo struct {
	db *gorm.DB
}

func NewOrderPostgres(db *gorm.DB) *OrderPostgresRepo {
	return &OrderPostgresRepo{db: db}
}

func (r *OrderPostgresRepo) List(f models.OrderFilter, page, perPage int) ([]models.Order, int, error) {
	q := r.db.Model(&models.Order{})
	if f.Product != "" {
		q = q.Scopes(OrderProductLike(f.Product))
	}

	var total int
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []models.Order
	if err := q.Order("id").Offset((page - 1) * perPage).Limit(perPage).Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *OrderPostgresRepo) Create(o *models.Order) error {
	return r.db.Create(o).Error
}

func (r *OrderPostgresRepo) Get(id uint) (models.Order, error) {
	var o models.Order
	q := r.db.First(&o, id)
	return o, q.Error
}

func (r *OrderPostgresRepo) Update(id uint, updates map[string]interface{}) (models.Order, error) {
	var o models.Order
	if err := r.db.First(&o, id).Error; err != nil {
		return models.Order{}, err
	}
	if len(updates) > 0 {
		if err := r.db.Model(&o).Updates(updates).Error; err != nil {
			return models.Order{}, err
		}
	}

	var fresh models.Order
	if err := r.db.First(&fresh, id).Error; err != nil {
		return models.Order{}, err
	}
	return fresh, nil
}

func (r *OrderPostgresRepo) Delete(id uint) error {
	var o models.Order
	if err := r.db.First(&o, id).Error; err != nil {
		return err
	}
	return r.db.Delete(&o).Error
}
