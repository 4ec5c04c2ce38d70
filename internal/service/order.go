package service

import (
	"context"
	"time"

	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"

	"github.com/TukaHeba/Optional-Task6/internal/models"
)

func (s *Service) ListOrders(f models.OrderFilter, page, perPage int) (OrderPage, error) {
	page, perPage = s.normalizePaging(page, perPage)

	orders, total, err := s.orders.List(f, page, perPage)
	if err != nil {
		logrus.WithError(err).Error("failed to retrieve orders")
		return OrderPage{}, ErrInternal
	}
	return OrderPage{Orders: orders, Pagination: paginate(total, page, perPage)}, nil
}

func (s *Service) CreateOrder(o models.Order) (models.Order, error) {
	if err := s.orders.Create(&o); err != nil {
		logrus.WithError(err).Error("order creation failed")
		return models.Order{}, ErrInternal
	}
	s.publishOrder(o)
	return o, nil
}

func (s *Service) ShowOrder(id uint) (models.Order, error) {
	o, err := s.orders.Get(id)
	if gorm.IsRecordNotFoundError(err) {
		return models.Order{}, ErrNotFound
	}
	if err != nil {
		logrus.WithError(err).WithField("id", id).Error("failed to retrieve order")
		return models.Order{}, ErrInternal
	}
	return o, nil
}

func (s *Service) UpdateOrder(id uint, updates map[string]interface{}) (models.Order, error) {
	o, err := s.orders.Update(id, updates)
	if gorm.IsRecordNotFoundError(err) {
		return models.Order{}, ErrNotFound
	}
	if err != nil {
		logrus.WithError(err).WithField("id", id).Error("failed to update order")
		return models.Order{}, ErrInternal
	}
	return o, nil
}

func (s *Service) DeleteOrder(id uint) error {
	err := s.orders.Delete(id)
	if gorm.IsRecordNotFoundError(err) {
		return ErrNotFound
	}
	if err != nil {
		logrus.WithError(err).WithField("id", id).Error("failed to delete order")
		return ErrInternal
	}
	return nil
}

// PlaceOrder creates an order for the resolved customer. The customer id on
// the payload is discarded; the path customer always wins.
func (s *Service) PlaceOrder(customerID uint, o models.Order) (models.Order, error) {
	_, err := s.customers.Get(customerID)
	if gorm.IsRecordNotFoundError(err) {
		return models.Order{}, ErrNotFound
	}
	if err != nil {
		logrus.WithError(err).WithField("customer_id", customerID).Error("failed to place order")
		return models.Order{}, ErrInternal
	}

	o.CustomerID = customerID
	if err := s.orders.Create(&o); err != nil {
		logrus.WithError(err).WithField("customer_id", customerID).Error("failed to place order")
		return models.Order{}, ErrInternal
	}
	s.publishOrder(o)
	return o, nil
}

// publishOrder pushes the created order to the event stream. Failures are
// logged and never surface to the caller; the row is already committed.
func (s *Service) publishOrder(o models.Order) {
	if s.events == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.events.PublishOrder(ctx, o); err != nil {
		logrus.WithError(err).WithField("order_id", o.ID).Warn("failed to publish order event")
	}
}
