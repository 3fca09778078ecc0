package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/piresc/yavijexpress/internal/pkg/config"
	"github.com/piresc/yavijexpress/internal/pkg/constants"
	"github.com/piresc/yavijexpress/internal/pkg/database"
	httpclient "github.com/piresc/yavijexpress/internal/pkg/http"
	"github.com/piresc/yavijexpress/internal/pkg/logger"
	"github.com/piresc/yavijexpress/internal/pkg/nsq"
	"github.com/piresc/yavijexpress/internal/pkg/scheduler"
	bookingsGW "github.com/piresc/yavijexpress/services/bookings/gateway"
	bookingsHandler "github.com/piresc/yavijexpress/services/bookings/handler"
	bookingsRepo "github.com/piresc/yavijexpress/services/bookings/repository"
	bookingsUC "github.com/piresc/yavijexpress/services/bookings/usecase"
	tripsGW "github.com/piresc/yavijexpress/services/trips/gateway"
	tripsHandler "github.com/piresc/yavijexpress/services/trips/handler"
	tripsRepo "github.com/piresc/yavijexpress/services/trips/repository"
	tripsUC "github.com/piresc/yavijexpress/services/trips/usecase"
	usersHandler "github.com/piresc/yavijexpress/services/users/handler"
	usersRepo "github.com/piresc/yavijexpress/services/users/repository"
	usersUC "github.com/piresc/yavijexpress/services/users/usecase"
)

func main() {
	cfg := config.InitConfig(".env")

	log, err := logger.NewAppLogger(cfg.Logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	pg, err := database.NewPostgresClient(cfg.Database)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to postgres")
	}
	defer pg.Close()

	rds, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to redis")
	}
	defer rds.Close()

	producer, err := nsq.NewProducer(cfg.NSQ.NSQDAddress)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to nsq")
	}
	defer producer.Stop()

	db := pg.GetDB()

	// Repositories
	tripRepository := tripsRepo.NewTripRepository(cfg, db)
	bookingRepository := bookingsRepo.NewBookingRepository(cfg, db)
	userRepository := usersRepo.NewUserRepository(cfg, db)

	// Gateways
	tripGateway := tripsGW.NewTripGW(producer)
	bookingGateway := bookingsGW.NewBookingGW(producer)
	paymentClient := httpclient.NewClient(cfg.Services.PaymentServiceURL, 10*time.Second)
	paymentGateway := bookingsGW.NewPaymentGW(paymentClient)

	// Use cases; the trip and booking managers collaborate through their
	// locally declared interfaces, both satisfied by the concrete types here
	userUsecase := usersUC.NewUserUC(cfg, userRepository, log)
	bookingUsecase := bookingsUC.NewBookingUC(cfg, bookingRepository, bookingGateway, paymentGateway, tripRepository, userUsecase, log)
	tripUsecase := tripsUC.NewTripUC(cfg, tripRepository, tripGateway, bookingUsecase, userUsecase, log)

	// Background sweeps
	sweeps := scheduler.NewScheduler(rds, log)
	jobs := []scheduler.Job{
		{Name: constants.JobTripStatusSweep, Spec: "* * * * *", Run: tripUsecase.CheckAndUpdateTripStatuses},
		{Name: constants.JobPendingAutoCancel, Spec: "* * * * *", Run: bookingUsecase.AutoCancelPendingBookings},
	}
	for _, job := range jobs {
		if err := sweeps.Register(job); err != nil {
			log.WithError(err).Fatal("failed to register sweep job")
		}
	}
	sweeps.Start()
	defer sweeps.Stop()

	// HTTP server
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())

	tripsHandler.NewTripHandler(tripUsecase, cfg).RegisterRoutes(e)
	bookingsHandler.NewBookingHandler(bookingUsecase, cfg).RegisterRoutes(e)
	usersHandler.NewUserHandler(userUsecase, cfg).RegisterRoutes(e)

	e.GET("/health", func(c echo.Context) error {
		if err := pg.Ping(); err != nil {
			return c.JSON(503, map[string]string{"status": "unhealthy"})
		}
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		if err := e.Start(addr); err != nil {
			log.WithError(err).Info("http server stopped")
		}
	}()

	log.Info("yavijexpress trips service started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.WithError(err).Error("forced shutdown")
	}
}
