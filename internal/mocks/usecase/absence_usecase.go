package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"winespa/internal/domain/entity"
	"winespa/internal/usecase"
)

// MockAbsenceUsecase is a mock of usecase.AbsenceUsecase.
type MockAbsenceUsecase struct {
	mock.Mock
}

var _ usecase.AbsenceUsecase = (*MockAbsenceUsecase)(nil)

// NewMockAbsenceUsecase creates a mock and asserts its expectations on cleanup.
func NewMockAbsenceUsecase(t testingT) *MockAbsenceUsecase {
	m := &MockAbsenceUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAbsenceUsecase) Record(ctx context.Context, input *usecase.RecordAbsenceInput) (*entity.Absence, error) {
	args := m.Called(ctx, input)
	absence, _ := args.Get(0).(*entity.Absence)

	return absence, args.Error(1)
}

func (m *MockAbsenceUsecase) ListUpcoming(ctx context.Context, manicuristID uuid.UUID) ([]*entity.Absence, error) {
	args := m.Called(ctx, manicuristID)
	absences, _ := args.Get(0).([]*entity.Absence)

	return absences, args.Error(1)
}

func (m *MockAbsenceUsecase) Cancel(ctx context.Context, absenceID uuid.UUID) error {
	return m.Called(ctx, absenceID).Error(0)
}
