package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"food-delivery-payments/internal/dto"
	"food-delivery-payments/internal/middleware"
	"food-delivery-payments/internal/service"
)

type OrderHandler struct {
	orderService service.OrderService
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	order, err := h.orderService.GetOrder(ctx, userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			return c.JSON(http.StatusNotFound, &dto.ErrorResponse{Error: "Order not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, order)
}
