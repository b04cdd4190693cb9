package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"winespa/internal/domain/entity"
	domainerrors "winespa/internal/domain/errors"
	"winespa/internal/domain/repository"
	"winespa/internal/errors"
	"winespa/internal/infra/persistence/model"
)

// permissionRepository implements the repository.PermissionRepository interface using GORM.
type permissionRepository struct {
	db *gorm.DB
}

// NewPermissionRepository is the constructor for permissionRepository.
func NewPermissionRepository(db *gorm.DB) repository.PermissionRepository {
	return &permissionRepository{db: db}
}

func (repo *permissionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Permission, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *permissionRepository) FindByName(ctx context.Context, name string) (*entity.Permission, error) {
	return repo.findOne(ctx, "name = ?", name)
}

func (repo *permissionRepository) findOne(ctx context.Context, query string, arg any) (*entity.Permission, error) {
	var permissionM model.PermissionModel
	if err := repo.db.WithContext(ctx).Where(query, arg).First(&permissionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrPermissionNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find permission")
	}

	return toPermissionDomain(&permissionM), nil
}

func (repo *permissionRepository) List(ctx context.Context) ([]*entity.Permission, error) {
	var permissionsM []*model.PermissionModel
	if err := repo.db.WithContext(ctx).Order("name").Find(&permissionsM).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list permissions")
	}

	permissions := make([]*entity.Permission, 0, len(permissionsM))
	for _, permissionM := range permissionsM {
		permissions = append(permissions, toPermissionDomain(permissionM))
	}

	return permissions, nil
}

func (repo *permissionRepository) Create(ctx context.Context, permission *entity.Permission) error {
	if err := repo.db.WithContext(ctx).Create(fromPermissionDomain(permission)).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrPermissionAlreadyExists.WithDetails(permission.Name)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create permission")
	}

	return nil
}

func (repo *permissionRepository) Update(ctx context.Context, permission *entity.Permission) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PermissionModel{ID: permission.ID}).
		Select("name", "status", "updated_at").
		Updates(fromPermissionDomain(permission))
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrPermissionAlreadyExists.WithDetails(permission.Name)
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update permission")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrPermissionNotFound
	}

	return nil
}

func toPermissionDomain(data *model.PermissionModel) *entity.Permission {
	return &entity.Permission{
		ID:        data.ID,
		Name:      data.Name,
		Status:    entity.Status(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromPermissionDomain(data *entity.Permission) *model.PermissionModel {
	return &model.PermissionModel{
		ID:        data.ID,
		Name:      data.Name,
		Status:    string(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
