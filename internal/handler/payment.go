package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"food-delivery-payments/internal/dto"
	"food-delivery-payments/internal/middleware"
	"food-delivery-payments/internal/service"
)

type PaymentHandler struct {
	paymentService service.PaymentService
	devMode        bool
}

func NewPaymentHandler(paymentService service.PaymentService, devMode bool) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		devMode:        devMode,
	}
}

func (h *PaymentHandler) CreatePaymentIntent(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	var req dto.CreateIntentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, &dto.ErrorResponse{Error: "Invalid request payload"})
	}

	result, err := h.paymentService.CreateIntent(ctx, userID, req.OrderID)
	if err != nil {
		return h.writeError(c, err, "Payment processing failed")
	}

	return c.JSON(http.StatusOK, result)
}

func (h *PaymentHandler) ConfirmPayment(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	var req dto.ConfirmPaymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, &dto.ErrorResponse{Error: "Invalid request payload"})
	}

	result, err := h.paymentService.ConfirmPayment(ctx, userID, req.OrderID, req.PaymentIntentID)
	if err != nil {
		return h.writeError(c, err, "Payment confirmation failed")
	}

	return c.JSON(http.StatusOK, result)
}

func (h *PaymentHandler) writeError(c echo.Context, err error, fallback string) error {
	var incomplete *service.PaymentIncompleteError

	switch {
	case errors.Is(err, service.ErrGatewayNotConfigured):
		return c.JSON(http.StatusInternalServerError, &dto.ErrorResponse{Error: "Payment service not configured"})
	case errors.Is(err, service.ErrOrderIDRequired):
		return c.JSON(http.StatusBadRequest, &dto.ErrorResponse{Error: "Order ID is required"})
	case errors.Is(err, service.ErrIntentIDRequired):
		return c.JSON(http.StatusBadRequest, &dto.ErrorResponse{Error: "Payment intent ID is required"})
	case errors.Is(err, service.ErrOrderNotFound):
		return c.JSON(http.StatusNotFound, &dto.ErrorResponse{Error: "Order not found"})
	case errors.Is(err, service.ErrOrderHasNoItems):
		return c.JSON(http.StatusBadRequest, &dto.ErrorResponse{Error: "Order has no items"})
	case errors.Is(err, service.ErrOrderAlreadyPaid):
		return c.JSON(http.StatusConflict, &dto.ErrorResponse{Error: "Order already paid"})
	case errors.Is(err, service.ErrIntentMismatch):
		return c.JSON(http.StatusBadRequest, &dto.ErrorResponse{Error: "Payment intent does not match this order"})
	case errors.As(err, &incomplete):
		return c.JSON(http.StatusBadRequest, &dto.ErrorResponse{
			Error:  "Payment not completed",
			Status: incomplete.Status,
		})
	}

	log.Println("payment error:", err)

	resp := &dto.ErrorResponse{Error: fallback}
	if h.devMode {
		resp.Details = err.Error()
	}
	return c.JSON(http.StatusInternalServerError, resp)
}
