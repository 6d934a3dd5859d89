package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"food-delivery-payments/internal/model"
)

type OrderRepository interface {
	// FindByIDAndUser looks an order up scoped by its owner. A caller asking
	// for someone else's order gets gorm.ErrRecordNotFound, same as a missing one.
	FindByIDAndUser(ctx context.Context, orderID, userID string) (*model.Order, error)
	UpdatePaymentState(ctx context.Context, order *model.Order) error
}

type orderRepoImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepoImpl{
		db: db,
	}
}

func (r *orderRepoImpl) FindByIDAndUser(ctx context.Context, orderID, userID string) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Preload("Restaurant").
		Preload("Items").
		Preload("Items.MenuItem").
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&order).Error

	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (r *orderRepoImpl) UpdatePaymentState(ctx context.Context, order *model.Order) error {
	result := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", order.ID).
		Updates(map[string]interface{}{
			"status":                    order.Status,
			"payment_status":            order.PaymentStatus,
			"payment_detail_intent_id":  order.PaymentDetails.IntentID,
			"payment_detail_payment_id": order.PaymentDetails.PaymentID,
			"payment_detail_status":     order.PaymentDetails.Status,
			"payment_detail_card_brand": order.PaymentDetails.CardBrand,
			"payment_detail_last4":      order.PaymentDetails.Last4,
			"updated_at":                time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
