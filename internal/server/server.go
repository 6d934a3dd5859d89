package server

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"food-delivery-payments/internal/config"
	"food-delivery-payments/internal/handler"
	mw "food-delivery-payments/internal/middleware"
	"food-delivery-payments/internal/service"
)

type Server struct {
	echo           *echo.Echo
	jwtSecret      string
	paymentHandler *handler.PaymentHandler
	orderHandler   *handler.OrderHandler
}

func NewServer(cfg *config.Config, paymentService service.PaymentService, orderService service.OrderService) *Server {
	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	paymentHandler := handler.NewPaymentHandler(paymentService, cfg.Environment.IsDevelopment())
	orderHandler := handler.NewOrderHandler(orderService)

	s := &Server{
		echo:           e,
		jwtSecret:      cfg.JWT.Secret,
		paymentHandler: paymentHandler,
		orderHandler:   orderHandler,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	authed := api.Group("", mw.JWTAuth(s.jwtSecret))

	authed.GET("/orders/:id", s.orderHandler.GetOrder)

	// -------- payments --------
	payments := authed.Group("/payments")
	payments.POST("/create-intent", s.paymentHandler.CreatePaymentIntent)
	payments.POST("/confirm", s.paymentHandler.ConfirmPayment)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
