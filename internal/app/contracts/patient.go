package contracts

import (
	"context"

	"telemed-service/internal/app/models"
)

type PatientRepository interface {
	// FindByID returns (nil, nil) when no patient matches.
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
}
