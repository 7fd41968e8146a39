package contracts

import (
	"context"

	"telemed-service/internal/app/models"
)

type DoctorRepository interface {
	// FindByID returns (nil, nil) when no doctor matches.
	FindByID(ctx context.Context, doctorID string) (*models.Doctor, error)
}
