package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"winespa/internal/domain/entity"
)

// AbsenceRepository defines persistence for manicurist absences (novedades).
type AbsenceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Absence, error)

	// Create persists the absence. A second record for the same manicurist and date
	// fails with ErrAbsenceAlreadyExists.
	Create(ctx context.Context, absence *entity.Absence) error

	// ListByManicurist returns absences dated on or after from, oldest first.
	ListByManicurist(ctx context.Context, manicuristID uuid.UUID, from time.Time) ([]*entity.Absence, error)

	Delete(ctx context.Context, id uuid.UUID) error
}
