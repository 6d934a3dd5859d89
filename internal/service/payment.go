package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"food-delivery-payments/internal/client"
	"food-delivery-payments/internal/dto"
	"food-delivery-payments/internal/model"
	"food-delivery-payments/internal/repository"
)

var (
	ErrGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrOrderIDRequired      = errors.New("order id is required")
	ErrIntentIDRequired     = errors.New("payment intent id is required")
	ErrOrderNotFound        = errors.New("order not found")
	ErrOrderHasNoItems      = errors.New("order has no items")
	ErrOrderAlreadyPaid     = errors.New("order already paid")
	ErrIntentMismatch       = errors.New("payment intent does not belong to this order")
)

// PaymentIncompleteError reports a confirmation attempt that found the remote
// intent in a non-succeeded state. Status carries the processor's status string.
type PaymentIncompleteError struct {
	Status string
}

func (e *PaymentIncompleteError) Error() string {
	return fmt.Sprintf("payment not completed: %s", e.Status)
}

type PaymentService interface {
	CreateIntent(ctx context.Context, userID, orderID string) (*dto.CreateIntentResponse, error)
	ConfirmPayment(ctx context.Context, userID, orderID, intentID string) (*dto.ConfirmPaymentResponse, error)
}

type paymentServiceImpl struct {
	stripeClient      client.StripeClient
	orderRepo         repository.OrderRepository
	gatewayConfigured bool
	currency          string
}

func NewPaymentService(
	stripeClient client.StripeClient,
	orderRepo repository.OrderRepository,
	gatewayConfigured bool,
	currency string,
) PaymentService {
	return &paymentServiceImpl{
		stripeClient:      stripeClient,
		orderRepo:         orderRepo,
		gatewayConfigured: gatewayConfigured,
		currency:          currency,
	}
}

func (s *paymentServiceImpl) CreateIntent(ctx context.Context, userID, orderID string) (*dto.CreateIntentResponse, error) {
	if !s.gatewayConfigured {
		return nil, ErrGatewayNotConfigured
	}
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

	if len(order.Items) == 0 {
		return nil, ErrOrderHasNoItems
	}
	if order.PaymentStatus == model.PaymentStatusPaid {
		return nil, ErrOrderAlreadyPaid
	}

	// Intent creation is keyed by order: a pending intent that is still
	// usable at the processor is handed back instead of minting a duplicate.
	if order.PaymentDetails.IntentID != "" && order.PaymentStatus == model.PaymentStatusPending {
		intent, err := s.stripeClient.RetrievePaymentIntent(ctx, order.PaymentDetails.IntentID)
		if err == nil && intentAwaitsPayment(intent.Status) {
			return &dto.CreateIntentResponse{
				Success:      true,
				ClientSecret: intent.ClientSecret,
				OrderID:      order.ID,
				Amount:       order.Total,
			}, nil
		}
	}

	intent, err := s.stripeClient.CreatePaymentIntent(ctx, &client.CreateIntentRequest{
		Amount:      toMinorUnits(order.Total),
		Currency:    s.currency,
		Description: fmt.Sprintf("Food delivery from %s", order.Restaurant.Name),
		Metadata: map[string]string{
			"orderId":      order.ID,
			"userId":       order.UserID,
			"restaurantId": order.RestaurantID,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("stripe create payment intent: %w", err)
	}

	order.PaymentStatus = model.PaymentStatusPending
	order.PaymentDetails = model.PaymentDetails{
		IntentID: intent.ID,
		Status:   model.PaymentStatusPending,
	}
	if err := s.orderRepo.UpdatePaymentState(ctx, order); err != nil {
		return nil, fmt.Errorf("store payment intent on order: %w", err)
	}

	return &dto.CreateIntentResponse{
		Success:      true,
		ClientSecret: intent.ClientSecret,
		OrderID:      order.ID,
		Amount:       order.Total,
	}, nil
}

func (s *paymentServiceImpl) ConfirmPayment(ctx context.Context, userID, orderID, intentID string) (*dto.ConfirmPaymentResponse, error) {
	if orderID == "" {
		return nil, ErrOrderIDRequired
	}
	if intentID == "" {
		return nil, ErrIntentIDRequired
	}

	order, err := s.orderRepo.FindByIDAndUser(ctx, orderID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}

	// The stored intent id names the one authoritative remote transaction for
	// this order; confirmation must reconcile against it, not any id a client
	// happens to hold.
	if order.PaymentDetails.IntentID != "" && order.PaymentDetails.IntentID != intentID {
		return nil, ErrIntentMismatch
	}

	intent, err := s.stripeClient.RetrievePaymentIntent(ctx, intentID)
	if err != nil {
		return nil, fmt.Errorf("stripe retrieve payment intent: %w", err)
	}

	if intent.Status != "succeeded" {
		order.PaymentStatus = model.PaymentStatusFailed
		order.PaymentDetails.Status = intent.Status
		if err := s.orderRepo.UpdatePaymentState(ctx, order); err != nil {
			return nil, fmt.Errorf("store failed payment state: %w", err)
		}

		return nil, &PaymentIncompleteError{Status: intent.Status}
	}

	cardBrand, last4 := cardDetails(intent)

	order.PaymentStatus = model.PaymentStatusPaid
	order.Status = model.OrderStatusProcessing
	order.PaymentDetails = model.PaymentDetails{
		IntentID:  intent.ID,
		PaymentID: intent.ID,
		Status:    "succeeded",
		CardBrand: cardBrand,
		Last4:     last4,
	}
	if err := s.orderRepo.UpdatePaymentState(ctx, order); err != nil {
		return nil, fmt.Errorf("store paid state: %w", err)
	}

	return &dto.ConfirmPaymentResponse{
		Success: true,
		Message: "Payment confirmed successfully",
		OrderID: order.ID,
	}, nil
}

// toMinorUnits converts a decimal currency amount into the gateway's integer
// cent representation, rounding half away from zero.
func toMinorUnits(total float64) int64 {
	return decimal.NewFromFloat(total).
		Mul(decimal.NewFromInt(100)).
		Round(0).
		IntPart()
}

// intentAwaitsPayment reports whether an intent can still collect a payment.
// Succeeded and canceled intents cannot be completed by the client anymore.
func intentAwaitsPayment(status string) bool {
	switch status {
	case "requires_payment_method", "requires_confirmation", "requires_action", "processing":
		return true
	}
	return false
}

// Card metadata is optional on the intent; absent fields resolve to "N/A".
func cardDetails(intent *client.PaymentIntent) (cardBrand, last4 string) {
	cardBrand, last4 = "N/A", "N/A"

	if len(intent.Charges.Data) == 0 {
		return
	}

	card := intent.Charges.Data[0].PaymentMethodDetails.Card
	if card == nil {
		return
	}

	if card.Brand != "" {
		cardBrand = card.Brand
	}
	if card.Last4 != "" {
		last4 = card.Last4
	}
	return
}
