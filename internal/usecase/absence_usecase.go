package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"winespa/internal/domain/entity"
)

// RecordAbsenceInput describes a manicurist absence or late arrival.
type RecordAbsenceInput struct {
	ManicuristID uuid.UUID
	Date         time.Time
	Kind         entity.AbsenceKind
	Type         entity.AbsenceType
	ArrivalTime  *entity.ClockTime
	AbsenceStart *entity.ClockTime
	AbsenceEnd   *entity.ClockTime
	Notes        string
}

// AbsenceUsecase records manicurist absences (novedades).
type AbsenceUsecase interface {
	Record(ctx context.Context, input *RecordAbsenceInput) (*entity.Absence, error)
	ListUpcoming(ctx context.Context, manicuristID uuid.UUID) ([]*entity.Absence, error)
	Cancel(ctx context.Context, absenceID uuid.UUID) error
}
