package main

import (
	"context"
	"log"
	"time"

	"telemed-service/internal/app/config"
	"telemed-service/internal/app/drivers/database"
	"telemed-service/internal/app/services/core/appointments"
)

// Applies the MongoDB indexes the booking flow depends on. Run once before
// starting the HTTP server against a fresh database.
func main() {
	driverConfig := config.NewDriverConfig()

	mongoDB := database.NewMongoDB(driverConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	defer func() {
		if err := mongoDB.Disconnect(ctx); err != nil {
			log.Printf("Error disconnecting MongoDB: %v", err)
		}
	}()

	appointmentRepository := appointments.NewAppointmentMongoRepository(mongoDB, driverConfig.MongoDB.DbName)
	if err := appointmentRepository.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Error creating appointment indexes: %v", err)
	}

	log.Println("Appointment indexes applied")
}
