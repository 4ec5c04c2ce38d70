package service

import (
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"

	"github.com/TukaHeba/Optional-Task6/internal/models"
)

func (s *Service) ListCustomers(f models.CustomerFilter, page, perPage int) (CustomerPage, error) {
	page, perPage = s.normalizePaging(page, perPage)

	customers, total, err := s.customers.List(f, page, perPage)
	if err != nil {
		logrus.WithError(err).Error("failed to retrieve customers")
		return CustomerPage{}, ErrInternal
	}
	return CustomerPage{Customers: customers, Pagination: paginate(total, page, perPage)}, nil
}

func (s *Service) CreateCustomer(c models.Customer) (models.Customer, error) {
	if err := s.customers.Create(&c); err != nil {
		logrus.WithError(err).Error("customer creation failed")
		return models.Customer{}, ErrInternal
	}
	return c, nil
}

func (s *Service) ShowCustomer(id uint) (models.Customer, error) {
	c, err := s.customers.Get(id)
	if gorm.IsRecordNotFoundError(err) {
		return models.Customer{}, ErrNotFound
	}
	if err != nil {
		logrus.WithError(err).WithField("id", id).Error("failed to retrieve customer")
		return models.Customer{}, ErrInternal
	}
	return c, nil
}

func (s *Service) UpdateCustomer(id uint, updates map[string]interface{}) (models.Customer, error) {
	c, err := s.customers.Update(id, updates)
	if gorm.IsRecordNotFoundError(err) {
		return models.Customer{}, ErrNotFound
	}
	if err != nil {
		logrus.WithError(err).WithField("id", id).Error("failed to update customer")
		return models.Customer{}, ErrInternal
	}
	return c, nil
}

func (s *Service) DeleteCustomer(id uint) error {
	err := s.customers.Delete(id)
	if gorm.IsRecordNotFoundError(err) {
		return ErrNotFound
	}
	if err != nil {
		logrus.WithError(err).WithField("id", id).Error("failed to delete customer")
		return ErrInternal
	}
	return nil
}

func (s *Service) CustomerExists(id uint) (bool, error) {
	ok, err := s.customers.Exists(id)
	if err != nil {
		logrus.WithError(err).WithField("id", id).Error("failed to check customer existence")
		return false, ErrInternal
	}
	return ok, nil
}
