package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"winespa/internal/domain/entity"
	"winespa/internal/domain/repository"
)

// MockAbsenceRepository is a mock of repository.AbsenceRepository.
type MockAbsenceRepository struct {
	mock.Mock
}

var _ repository.AbsenceRepository = (*MockAbsenceRepository)(nil)

// NewMockAbsenceRepository creates a mock and asserts its expectations on cleanup.
func NewMockAbsenceRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAbsenceRepository {
	m := &MockAbsenceRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAbsenceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Absence, error) {
	args := m.Called(ctx, id)
	absence, _ := args.Get(0).(*entity.Absence)

	return absence, args.Error(1)
}

func (m *MockAbsenceRepository) Create(ctx context.Context, absence *entity.Absence) error {
	return m.Called(ctx, absence).Error(0)
}

func (m *MockAbsenceRepository) ListByManicurist(ctx context.Context, manicuristID uuid.UUID, from time.Time) ([]*entity.Absence, error) {
	args := m.Called(ctx, manicuristID, from)
	absences, _ := args.Get(0).([]*entity.Absence)

	return absences, args.Error(1)
}

func (m *MockAbsenceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}
