package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	_ "time/tzdata"

	"github.com/adiwardana/marketplace/config"
	"github.com/adiwardana/marketplace/internal/client"
	"github.com/adiwardana/marketplace/internal/controller"
	circuitbreaker "github.com/adiwardana/marketplace/internal/infrastructure/circuit-breaker"
	"github.com/adiwardana/marketplace/internal/infrastructure/database/postgres"
	paymentgateway "github.com/adiwardana/marketplace/internal/infrastructure/payment-gateway"
	"github.com/adiwardana/marketplace/internal/infrastructure/tracing"
	localmiddleware "github.com/adiwardana/marketplace/internal/middleware"
	"github.com/adiwardana/marketplace/internal/repository"
	"github.com/adiwardana/marketplace/internal/service"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	config := config.CreateNewConfig()

	gateway, err := paymentgateway.CreateRazorpayGateway(config)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create payment gateway client")
	}

	verifier, err := paymentgateway.CreateSignatureVerifier(config.RazorpayConfig.KeySecret)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create signature verifier")
	}

	db, err := postgres.GetDBInstance(config.PostgreSQLConfig.DBUsername, config.PostgreSQLConfig.DBPassword, config.PostgreSQLConfig.DBHost, config.PostgreSQLConfig.DBPort, config.PostgreSQLConfig.DBName)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	traceProvider, err := tracing.InitTracing(config.TracingConfig.CollectorHost, "payment-service")
	if err != nil {
		fmt.Println(err)
	}

	defer func() {
		if err := traceProvider.Shutdown(context.Background()); err != nil {
			fmt.Println(err)
		}
	}()

	tracer := traceProvider.Tracer("payment-service")

	e := echo.New()
	g := e.Group("/payment")

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// span creation and naming
			ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
			defer span.End()

			// add the context to the request
			req := c.Request()
			c.SetRequest(req.WithContext(ctx))

			return next(c)
		}
	})

	// Used empty string so that metrics are not prefixed with the service name making it easier to aggregate across services
	e.Use(echoprometheus.NewMiddleware(""))
	go func() {
		metrics := echo.New()
		metrics.GET("/metrics", echoprometheus.NewHandler())
		if err := metrics.Start(fmt.Sprintf(":%s", config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start metrics server")
		}
	}()

	e.Use(localmiddleware.Logger)

	e.GET("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, "pong")
	})

	cb := circuitbreaker.CreateCircuitBreaker("payment-service")
	orderClient := client.CreateOrderServiceClient(config.OrderServiceHost, cb)
	dispatcher := client.CreateNotificationDispatcher(config.NotificationServiceHost, cb)

	transactionRepo := repository.CreateTransactionRepository(db)
	paymentSvc := service.CreatePaymentService(transactionRepo, gateway, verifier, orderClient, dispatcher)
	controller.CreatePaymentController(g, paymentSvc)

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%s", config.ServicePort)))
}
