package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"food-delivery-payments/internal/model"
	"food-delivery-payments/internal/repository"
)

type OrderService interface {
	GetOrder(ctx context.Context, userID, orderID string) (*model.Order, error)
}

type orderServiceImpl struct {
	orderRepo repository.OrderRepository
}

func NewOrderService(orderRepo repository.OrderRepository) OrderService {
	return &orderServiceImpl{
		orderRepo: orderRepo,
	}
}

func (s *orderServiceImpl) GetOrder(ctx context.Context, userID, orderID string) (*model.Order, error) {
	if orderID == "" {
		return nil, ErrOrderIDRequired
	}

	order, err := s.orderRepo.FindByIDAndUser(ctx, orderID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}

	return order, nil
}
