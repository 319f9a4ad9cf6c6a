package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/alimikegami/e-commerce/catalog-service/config"
	"github.com/alimikegami/e-commerce/catalog-service/internal/controller"
	"github.com/alimikegami/e-commerce/catalog-service/internal/infrastructure/database/mongodb"
	"github.com/alimikegami/e-commerce/catalog-service/internal/infrastructure/message-queue/kafka"
	"github.com/alimikegami/e-commerce/catalog-service/internal/infrastructure/tracing"
	"github.com/alimikegami/e-commerce/catalog-service/internal/middleware"
	"github.com/alimikegami/e-commerce/catalog-service/internal/repository"
	"github.com/alimikegami/e-commerce/catalog-service/internal/service"
	"github.com/alimikegami/e-commerce/catalog-service/pkg/response"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
)

const serviceName = "catalog-service"

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	config := config.CreateNewConfig()

	db, err := mongodb.ConnectToMongoDB(fmt.Sprintf("mongodb://%s:%s", config.MongoDBConfig.DBHost, config.MongoDBConfig.DBPort), config.MongoDBConfig.DBName)
	if err != nil {
		panic(err)
	}

	defer db.Client().Disconnect(context.Background())

	kafkaProducer := kafka.CreateKafkaProducer(config)

	traceProvider, err := tracing.InitTracing(config.TracingConfig.CollectorHost, serviceName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize tracing")
	}

	defer func() {
		if traceProvider == nil {
			return
		}
		if err := traceProvider.Shutdown(context.Background()); err != nil {
			log.Error().Err(err).Msg("Failed to shut down trace provider")
		}
	}()

	tracer := otel.Tracer(serviceName)

	e := echo.New()
	g := e.Group("")

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
			defer span.End()

			req := c.Request()
			c.SetRequest(req.WithContext(ctx))

			return next(c)
		}
	})

	e.Use(echoprometheus.NewMiddleware(""))
	go func() {
		metrics := echo.New()
		metrics.GET("/metrics", echoprometheus.NewHandler())
		if err := metrics.Start(fmt.Sprintf(":%s", config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start metrics server")
		}
	}()

	e.Use(middleware.Logger)

	mongoDBRepo := repository.CreateNewMongoDBRepository(db)
	svc := service.CreateCatalogService(mongoDBRepo, kafkaProducer)
	controller.CreateCatalogController(g, svc)

	g.GET("/ping", func(c echo.Context) error {
		return response.WriteOKResponse(c, response.MessageResponse{Message: "pong"})
	})

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%s", config.ServicePort)))
}
