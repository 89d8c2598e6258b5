package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	_ "time/tzdata"

	"github.com/adiwardana/marketplace/config"
	"github.com/adiwardana/marketplace/internal/controller"
	"github.com/adiwardana/marketplace/internal/infrastructure/database/postgres"
	messagequeue "github.com/adiwardana/marketplace/internal/infrastructure/message-queue/kafka"
	"github.com/adiwardana/marketplace/internal/infrastructure/tracing"
	localmiddleware "github.com/adiwardana/marketplace/internal/middleware"
	"github.com/adiwardana/marketplace/internal/repository"
	"github.com/adiwardana/marketplace/internal/service"
	"github.com/go-co-op/gocron/v2"
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

	// The topic must exist with its fixed partition layout before the
	// consumer group attaches.
	controllerConn, err := messagequeue.DialController(config.KafkaConfig.BrokerAddress)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Kafka controller")
	}
	if err := messagequeue.EnsureTopic(controllerConn, config.KafkaConfig.OrderEventsTopic); err != nil {
		log.Fatal().Err(err).Msg("Failed to provision order events topic")
	}
	controllerConn.Close()

	kafkaReader := messagequeue.CreateKafkaReader(config)

	db, err := postgres.GetDBInstance(config.PostgreSQLConfig.DBUsername, config.PostgreSQLConfig.DBPassword, config.PostgreSQLConfig.DBHost, config.PostgreSQLConfig.DBPort, config.PostgreSQLConfig.DBName)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	traceProvider, err := tracing.InitTracing(config.TracingConfig.CollectorHost, "notification-service")
	if err != nil {
		fmt.Println(err)
	}

	defer func() {
		if err := traceProvider.Shutdown(context.Background()); err != nil {
			fmt.Println(err)
		}
	}()

	tracer := traceProvider.Tracer("notification-service")

	notificationRepo := repository.CreateNotificationRepository(db)
	notificationSvc := service.CreateNotificationService(notificationRepo, kafkaReader)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		notificationSvc.ConsumeEvents(ctx)
	}()

	e := echo.New()
	g := e.Group("/api")

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

	controller.CreateNotificationController(g, notificationSvc)

	s, err := gocron.NewScheduler()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create scheduler")
	}

	_, err = s.NewJob(
		gocron.DurationJob(
			time.Minute,
		),
		gocron.NewTask(
			notificationSvc.RemoveExpiredNotifications,
		),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to schedule notification expiry job")
	}

	s.Start()

	go func() {
		if err := e.Start(fmt.Sprintf(":%s", config.ServicePort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	// Stop fetching first, let in-flight processing finish, then release
	// the broker connection and the HTTP listener.
	wg.Wait()
	if err := kafkaReader.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close Kafka reader")
	}

	if err := s.Shutdown(); err != nil {
		log.Error().Err(err).Msg("Failed to shut down scheduler")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Failed to shut down server")
	}
}
