package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"telemed-service/internal/app/config"
	"telemed-service/internal/app/delivery/http/controllers"
	"telemed-service/internal/app/delivery/http/middlewares"
	"telemed-service/internal/app/delivery/http/routers"
	"telemed-service/internal/app/drivers/database"
	"telemed-service/internal/app/drivers/logger"
	"telemed-service/internal/app/drivers/messaging"
	"telemed-service/internal/app/services/core/appointments"
	"telemed-service/internal/app/services/core/doctors"
	"telemed-service/internal/app/services/core/patients"
	"telemed-service/internal/app/services/core/payments"
	"telemed-service/internal/app/services/shared/locker"
	"telemed-service/internal/app/services/shared/notifications"
	"telemed-service/internal/app/services/shared/payment_gateway"
	"telemed-service/internal/app/services/shared/redis"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Address + internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()
	log.Printf("Server listening on %s", server.Addr)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during dependency shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Shared
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockService := locker.NewLockService(redisRepository, bootstrap.Logger)
	stripeService := payment_gateway.NewStripeService(bootstrap.InternalConfig, bootstrap.Logger)
	notificationPublisher := notifications.NewBookingNotificationPublisher(bootstrap.RabbitMQ, bootstrap.InternalConfig, bootstrap.Logger)

	// Middlewares
	mw := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)
	bootstrap.Router.Use(mw.RequestIDMiddleware)
	bootstrap.Router.Use(mw.Logging(bootstrap.Logger))

	// Repositories
	appointmentRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	doctorRepository := doctors.NewDoctorMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	patientRepository := patients.NewPatientMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)

	// The unique paymentIntentId index is what keeps finalization at-most-once
	// across lock expiry, so the server refuses to start without it.
	indexCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := appointmentRepository.EnsureIndexes(indexCtx); err != nil {
		bootstrap.Logger.Fatal("Failed to ensure appointment indexes", zap.Error(err))
	}

	// Payment
	paymentUsecase := payments.NewPaymentUsecase(
		appointmentRepository,
		doctorRepository,
		patientRepository,
		stripeService,
		lockService,
		notificationPublisher,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	paymentController := controllers.NewPaymentController(bootstrap.Logger, paymentUsecase)

	// Appointment
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentRepository,
		doctorRepository,
		patientRepository,
		bootstrap.Logger,
	)
	appointmentController := controllers.NewAppointmentController(bootstrap.Logger, appointmentUsecase)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, mw, paymentController, appointmentController)
}
