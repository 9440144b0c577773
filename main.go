package main

import (
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"github.com/jovannablesslyn/CAR-RENTAL-PLATFORM/config"
	"github.com/jovannablesslyn/CAR-RENTAL-PLATFORM/internal/auth"
	"github.com/jovannablesslyn/CAR-RENTAL-PLATFORM/internal/handler"
	"github.com/jovannablesslyn/CAR-RENTAL-PLATFORM/internal/middleware"
	"github.com/jovannablesslyn/CAR-RENTAL-PLATFORM/internal/repository"
	"github.com/jovannablesslyn/CAR-RENTAL-PLATFORM/internal/service"
	"github.com/jovannablesslyn/CAR-RENTAL-PLATFORM/pkg/database"
	"github.com/jovannablesslyn/CAR-RENTAL-PLATFORM/pkg/rabbitmq"
)

func main() {
	cfg := config.Load()

	if cfg.AppEnv == "production" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	db := database.NewPostgresDB(cfg.DSN())

	// Booking events are optional: no RABBITMQ_URL means no publisher.
	var publisher *rabbitmq.Publisher
	if cfg.RabbitURL != "" {
		var err error
		publisher, err = rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			logrus.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	carRepo := repository.NewCarRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	// Services
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, auth.DefaultTokenTTL)
	authSvc := service.NewAuthService(userRepo, tokens)
	carSvc := service.NewCarService(carRepo, bookingRepo)
	bookingSvc := service.NewBookingService(bookingRepo, carRepo, publisher)
	statsSvc := service.NewStatsService(carRepo, bookingRepo)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			logrus.WithFields(logrus.Fields{
				"method": v.Method,
				"uri":    v.URI,
				"status": v.Status,
			}).Info("request")
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	handler.NewHealthHandler(db, cfg.AppEnv).RegisterRoutes(e)

	requireAuth := middleware.RequireAuth(tokens)
	api := e.Group("/api")

	handler.NewAuthHandler(authSvc).RegisterRoutes(api.Group("/auth"), requireAuth)
	handler.NewCarHandler(carSvc).RegisterRoutes(api.Group("/cars", requireAuth))
	handler.NewBookingHandler(bookingSvc).RegisterRoutes(api.Group("/bookings", requireAuth))
	handler.NewDashboardHandler(statsSvc).RegisterRoutes(api.Group("/dashboard", requireAuth))

	logrus.Infof("car rental platform starting on :%s (%s)", cfg.ServerPort, cfg.AppEnv)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
