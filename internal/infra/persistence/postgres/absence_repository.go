package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"winespa/internal/domain/entity"
	domainerrors "winespa/internal/domain/errors"
	"winespa/internal/domain/repository"
	"winespa/internal/errors"
	"winespa/internal/infra/persistence/model"
)

// absenceRepository implements the repository.AbsenceRepository interface using GORM.
type absenceRepository struct {
	db *gorm.DB
}

// NewAbsenceRepository is the constructor for absenceRepository.
func NewAbsenceRepository(db *gorm.DB) repository.AbsenceRepository {
	return &absenceRepository{db: db}
}

func (repo *absenceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Absence, error) {
	var absenceM model.AbsenceModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&absenceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrAbsenceNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find absence")
	}

	return toAbsenceDomain(&absenceM), nil
}

func (repo *absenceRepository) Create(ctx context.Context, absence *entity.Absence) error {
	absenceM := fromAbsenceDomain(absence)
	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(absenceM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAbsenceAlreadyExists
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrAccountNotFound.WithDetails("manicurist does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create absence")
	}

	absence.CreatedAt = absenceM.CreatedAt

	return nil
}

func (repo *absenceRepository) ListByManicurist(ctx context.Context, manicuristID uuid.UUID, from time.Time) ([]*entity.Absence, error) {
	var absencesM []*model.AbsenceModel
	err := repo.db.WithContext(ctx).
		Where("manicurist_id = ? AND date >= ?", manicuristID, entity.DateOnly(from)).
		Order("date").
		Find(&absencesM).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list absences")
	}

	absences := make([]*entity.Absence, 0, len(absencesM))
	for _, absenceM := range absencesM {
		absences = append(absences, toAbsenceDomain(absenceM))
	}

	return absences, nil
}

func (repo *absenceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.AbsenceModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete absence")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrAbsenceNotFound
	}

	return nil
}

func toAbsenceDomain(data *model.AbsenceModel) *entity.Absence {
	return &entity.Absence{
		ID:           data.ID,
		ManicuristID: data.ManicuristID,
		Date:         entity.DateOnly(data.Date),
		Kind:         entity.AbsenceKind(data.Kind),
		Type:         entity.AbsenceType(data.Type),
		ArrivalTime:  toClockTime(data.ArrivalMinute),
		AbsenceStart: toClockTime(data.AbsenceStartMinute),
		AbsenceEnd:   toClockTime(data.AbsenceEndMinute),
		Notes:        data.Notes,
		CreatedAt:    data.CreatedAt,
	}
}

func fromAbsenceDomain(data *entity.Absence) *model.AbsenceModel {
	return &model.AbsenceModel{
		ID:                 data.ID,
		ManicuristID:       data.ManicuristID,
		Date:               entity.DateOnly(data.Date),
		Kind:               string(data.Kind),
		Type:               string(data.Type),
		ArrivalMinute:      fromClockTime(data.ArrivalTime),
		AbsenceStartMinute: fromClockTime(data.AbsenceStart),
		AbsenceEndMinute:   fromClockTime(data.AbsenceEnd),
		Notes:              data.Notes,
		CreatedAt:          data.CreatedAt,
	}
}

func toClockTime(minutes *int) *entity.ClockTime {
	if minutes == nil {
		return nil
	}
	c := entity.ClockTime(*minutes)

	return &c
}

func fromClockTime(c *entity.ClockTime) *int {
	if c == nil {
		return nil
	}
	minutes := int(*c)

	return &minutes
}
