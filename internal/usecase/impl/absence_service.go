package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.uber.org/fx"

	deliverycontext "winespa/internal/delivery/context"
	"winespa/internal/domain/entity"
	domainerrors "winespa/internal/domain/errors"
	"winespa/internal/domain/repository"
	"winespa/internal/errors"
	"winespa/internal/usecase"
)

// absenceService implements the AbsenceUsecase interface.
type absenceService struct {
	accountRepo repository.AccountRepository
	absenceRepo repository.AbsenceRepository
	now         func() time.Time
	logger      *slog.Logger
}

// AbsenceServiceParams holds dependencies for AbsenceService, injected by Fx.
type AbsenceServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	AbsenceRepo repository.AbsenceRepository
	Logger      *slog.Logger
}

// NewAbsenceService is the constructor for absenceService.
func NewAbsenceService(params AbsenceServiceParams) usecase.AbsenceUsecase {
	return &absenceService{
		accountRepo: params.AccountRepo,
		absenceRepo: params.AbsenceRepo,
		now:         time.Now,
		logger:      params.Logger,
	}
}

func (srv *absenceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Record validates and stores an absence for an active manicurist. One record per manicurist and date.
func (srv *absenceService) Record(ctx context.Context, input *usecase.RecordAbsenceInput) (*entity.Absence, error) {
	manicurist, err := srv.accountRepo.FindByID(ctx, input.ManicuristID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find manicurist")
	}
	if manicurist.Kind != entity.AccountKindManicurist {
		return nil, domainerrors.ErrValidationFailed.WithDetails("account is not a manicurist")
	}
	if !manicurist.IsActive() {
		return nil, domainerrors.ErrAccountInactive
	}

	absence := &entity.Absence{
		ID:           uuid.New(),
		ManicuristID: input.ManicuristID,
		Date:         entity.DateOnly(input.Date),
		Kind:         input.Kind,
		Type:         input.Type,
		ArrivalTime:  input.ArrivalTime,
		AbsenceStart: input.AbsenceStart,
		AbsenceEnd:   input.AbsenceEnd,
		Notes:        input.Notes,
		CreatedAt:    srv.now().UTC(),
	}
	if err := absence.Validate(srv.now().UTC()); err != nil {
		return nil, err
	}

	if err := srv.absenceRepo.Create(ctx, absence); err != nil {
		return nil, errors.Wrap(err, "failed to record absence")
	}

	srv.log(ctx).Info("Absence recorded",
		slog.String("absence_id", absence.ID.String()),
		slog.String("manicurist_id", absence.ManicuristID.String()),
		slog.String("kind", string(absence.Kind)),
	)

	return absence, nil
}

// ListUpcoming returns today's and future absences of the manicurist.
func (srv *absenceService) ListUpcoming(ctx context.Context, manicuristID uuid.UUID) ([]*entity.Absence, error) {
	absences, err := srv.absenceRepo.ListByManicurist(ctx, manicuristID, entity.DateOnly(srv.now().UTC()))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list absences")
	}

	return absences, nil
}

// Cancel removes an absence that has not happened yet.
func (srv *absenceService) Cancel(ctx context.Context, absenceID uuid.UUID) error {
	absence, err := srv.absenceRepo.FindByID(ctx, absenceID)
	if err != nil {
		return errors.Wrap(err, "failed to find absence")
	}
	if absence.Date.Before(entity.DateOnly(srv.now().UTC())) {
		return domainerrors.ErrValidationFailed.WithDetails("past absences cannot be cancelled")
	}

	if err := srv.absenceRepo.Delete(ctx, absenceID); err != nil {
		return errors.Wrap(err, "failed to cancel absence")
	}

	return nil
}
