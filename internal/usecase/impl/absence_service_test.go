package impl

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"winespa/internal/domain/entity"
	domainerrors "winespa/internal/domain/errors"
	"winespa/internal/errors"
	mockRepo "winespa/internal/mocks/repository"
	"winespa/internal/usecase"
)

var absenceToday = time.Date(2026, time.March, 10, 15, 0, 0, 0, time.UTC)

func newAbsenceTestService(t *testing.T) (*absenceService, *mockRepo.MockAccountRepository, *mockRepo.MockAbsenceRepository) {
	t.Helper()

	accountRepo := mockRepo.NewMockAccountRepository(t)
	absenceRepo := mockRepo.NewMockAbsenceRepository(t)
	srv := NewAbsenceService(AbsenceServiceParams{
		AccountRepo: accountRepo,
		AbsenceRepo: absenceRepo,
		Logger:      newDiscardLogger(),
	}).(*absenceService)
	srv.now = func() time.Time { return absenceToday }

	return srv, accountRepo, absenceRepo
}

func manicurist() *entity.Account {
	return &entity.Account{ID: uuid.New(), Kind: entity.AccountKindManicurist, Status: entity.StatusActive}
}

func clock(t *testing.T, value string) *entity.ClockTime {
	t.Helper()

	c, err := entity.ParseClockTime(value)
	require.NoError(t, err)

	return &c
}

func TestAbsenceService_Record_LateArrival(t *testing.T) {
	srv, accountRepo, absenceRepo := newAbsenceTestService(t)
	ctx := context.Background()
	m := manicurist()

	accountRepo.On("FindByID", ctx, m.ID).Return(m, nil).Once()
	absenceRepo.On("Create", ctx, mock.MatchedBy(func(a *entity.Absence) bool {
		return a.Kind == entity.AbsenceKindLate && a.ArrivalTime != nil && a.ArrivalTime.String() == "10:30"
	})).Return(nil).Once()

	absence, err := srv.Record(ctx, &usecase.RecordAbsenceInput{
		ManicuristID: m.ID,
		Date:         absenceToday.AddDate(0, 0, 1),
		Kind:         entity.AbsenceKindLate,
		ArrivalTime:  clock(t, "10:30"),
	})

	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.March, 11, 0, 0, 0, 0, time.UTC), absence.Date)
}

func TestAbsenceService_Record_PartialAbsence(t *testing.T) {
	srv, accountRepo, absenceRepo := newAbsenceTestService(t)
	ctx := context.Background()
	m := manicurist()

	accountRepo.On("FindByID", ctx, m.ID).Return(m, nil).Once()
	absenceRepo.On("Create", ctx, mock.AnythingOfType("*entity.Absence")).Return(nil).Once()

	_, err := srv.Record(ctx, &usecase.RecordAbsenceInput{
		ManicuristID: m.ID,
		Date:         absenceToday,
		Kind:         entity.AbsenceKindAbsent,
		Type:         entity.AbsenceTypePartial,
		AbsenceStart: clock(t, "14:00"),
		AbsenceEnd:   clock(t, "16:00"),
		Notes:        "Cita médica",
	})

	require.NoError(t, err)
}

func TestAbsenceService_Record_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		account *entity.Account
		input   func(t *testing.T, id uuid.UUID) *usecase.RecordAbsenceInput
		wantErr error
	}{
		{
			name:    "not a manicurist",
			account: &entity.Account{ID: uuid.New(), Kind: entity.AccountKindClient, Status: entity.StatusActive},
			input: func(_ *testing.T, id uuid.UUID) *usecase.RecordAbsenceInput {
				return &usecase.RecordAbsenceInput{ManicuristID: id, Date: absenceToday, Kind: entity.AbsenceKindAbsent, Type: entity.AbsenceTypeFull}
			},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "inactive manicurist",
			account: &entity.Account{ID: uuid.New(), Kind: entity.AccountKindManicurist, Status: entity.StatusInactive},
			input: func(_ *testing.T, id uuid.UUID) *usecase.RecordAbsenceInput {
				return &usecase.RecordAbsenceInput{ManicuristID: id, Date: absenceToday, Kind: entity.AbsenceKindAbsent, Type: entity.AbsenceTypeFull}
			},
			wantErr: domainerrors.ErrAccountInactive,
		},
		{
			name:    "past date",
			account: manicurist(),
			input: func(_ *testing.T, id uuid.UUID) *usecase.RecordAbsenceInput {
				return &usecase.RecordAbsenceInput{ManicuristID: id, Date: absenceToday.AddDate(0, 0, -1), Kind: entity.AbsenceKindAbsent, Type: entity.AbsenceTypeFull}
			},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "late without arrival time",
			account: manicurist(),
			input: func(_ *testing.T, id uuid.UUID) *usecase.RecordAbsenceInput {
				return &usecase.RecordAbsenceInput{ManicuristID: id, Date: absenceToday, Kind: entity.AbsenceKindLate}
			},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "partial window reversed",
			account: manicurist(),
			input: func(t *testing.T, id uuid.UUID) *usecase.RecordAbsenceInput {
				return &usecase.RecordAbsenceInput{
					ManicuristID: id, Date: absenceToday, Kind: entity.AbsenceKindAbsent, Type: entity.AbsenceTypePartial,
					AbsenceStart: clock(t, "16:00"), AbsenceEnd: clock(t, "14:00"),
				}
			},
			wantErr: domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, accountRepo, absenceRepo := newAbsenceTestService(t)
			ctx := context.Background()

			accountRepo.On("FindByID", ctx, tt.account.ID).Return(tt.account, nil).Once()

			_, err := srv.Record(ctx, tt.input(t, tt.account.ID))

			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			absenceRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestAbsenceService_Record_Duplicate(t *testing.T) {
	srv, accountRepo, absenceRepo := newAbsenceTestService(t)
	ctx := context.Background()
	m := manicurist()

	accountRepo.On("FindByID", ctx, m.ID).Return(m, nil).Once()
	absenceRepo.On("Create", ctx, mock.Anything).Return(domainerrors.ErrAbsenceAlreadyExists).Once()

	_, err := srv.Record(ctx, &usecase.RecordAbsenceInput{
		ManicuristID: m.ID, Date: absenceToday, Kind: entity.AbsenceKindAbsent, Type: entity.AbsenceTypeFull,
	})

	assert.True(t, errors.Is(err, domainerrors.ErrAbsenceAlreadyExists))
}

func TestAbsenceService_ListUpcoming(t *testing.T) {
	srv, _, absenceRepo := newAbsenceTestService(t)
	ctx := context.Background()
	id := uuid.New()

	absenceRepo.On("ListByManicurist", ctx, id, entity.DateOnly(absenceToday)).Return([]*entity.Absence{{ID: uuid.New()}}, nil).Once()

	absences, err := srv.ListUpcoming(ctx, id)

	require.NoError(t, err)
	assert.Len(t, absences, 1)
}

func TestAbsenceService_Cancel(t *testing.T) {
	tests := []struct {
		name    string
		date    time.Time
		wantErr bool
	}{
		{name: "today", date: entity.DateOnly(absenceToday)},
		{name: "yesterday", date: entity.DateOnly(absenceToday).AddDate(0, 0, -1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _, absenceRepo := newAbsenceTestService(t)
			ctx := context.Background()
			absence := &entity.Absence{ID: uuid.New(), Date: tt.date}

			absenceRepo.On("FindByID", ctx, absence.ID).Return(absence, nil).Once()
			if !tt.wantErr {
				absenceRepo.On("Delete", ctx, absence.ID).Return(nil).Once()
			}

			err := srv.Cancel(ctx, absence.ID)

			if tt.wantErr {
				assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

				return
			}
			require.NoError(t, err)
		})
	}
}

func TestAbsenceService_TodayIsTheUTCDate(t *testing.T) {
	// 22:00 in Bogota on March 10 is already March 11 in UTC.
	bogota := time.FixedZone("COT", -5*60*60)
	evening := time.Date(2026, time.March, 10, 22, 0, 0, 0, bogota)
	utcToday := time.Date(2026, time.March, 11, 0, 0, 0, 0, time.UTC)

	srv, _, absenceRepo := newAbsenceTestService(t)
	srv.now = func() time.Time { return evening }
	ctx := context.Background()
	manicuristID := uuid.New()

	absenceRepo.On("ListByManicurist", ctx, manicuristID, utcToday).Return([]*entity.Absence{}, nil).Once()
	_, err := srv.ListUpcoming(ctx, manicuristID)
	require.NoError(t, err)

	yesterday := &entity.Absence{ID: uuid.New(), Date: time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)}
	absenceRepo.On("FindByID", ctx, yesterday.ID).Return(yesterday, nil).Once()

	err = srv.Cancel(ctx, yesterday.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	absenceRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
