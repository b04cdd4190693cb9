package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gen"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"

	"winespa/internal/domain/entity"
	domainerrors "winespa/internal/domain/errors"
	"winespa/internal/domain/repository"
	"winespa/internal/errors"
	"winespa/internal/infra/persistence/model"
	"winespa/internal/infra/persistence/postgres/query"
)

// roleRepository implements the repository.RoleRepository interface using GORM.
// Role rows go through the GORM Gen query builder; the membership table has no generated model.
type roleRepository struct {
	db *gorm.DB
	q  *query.Query
}

// NewRoleRepository is the constructor for roleRepository.
func NewRoleRepository(db *gorm.DB) repository.RoleRepository {
	return &roleRepository{
		db: db,
		q:  query.Use(db),
	}
}

// FindByID retrieves a role with its permissions.
func (repo *roleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Role, error) {
	return repo.findOne(ctx, false, repo.q.RoleModel.ID.Eq(id))
}

// FindByIDForUpdate locks the role row on the primary until the transaction ends.
func (repo *roleRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Role, error) {
	return repo.findOne(ctx, true, repo.q.RoleModel.ID.Eq(id))
}

// FindByName retrieves a role with its permissions.
func (repo *roleRepository) FindByName(ctx context.Context, name string) (*entity.Role, error) {
	return repo.findOne(ctx, false, repo.q.RoleModel.Name.Eq(name))
}

func (repo *roleRepository) findOne(ctx context.Context, lock bool, conds ...gen.Condition) (*entity.Role, error) {
	do := repo.q.RoleModel.WithContext(ctx)
	if lock {
		do = do.Clauses(dbresolver.Write, clause.Locking{Strength: "UPDATE"})
	}

	roleM, err := do.Where(conds...).First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrRoleNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find role")
	}

	permissions, err := repo.permissionsByRole(ctx, []uuid.UUID{roleM.ID})
	if err != nil {
		return nil, err
	}

	role := toRoleDomain(roleM)
	role.Permissions = permissions[roleM.ID]

	return role, nil
}

// List returns every role with its permissions, ordered by name.
func (repo *roleRepository) List(ctx context.Context) ([]*entity.Role, error) {
	rolesM, err := repo.q.RoleModel.WithContext(ctx).Order(repo.q.RoleModel.Name).Find()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list roles")
	}
	if len(rolesM) == 0 {
		return []*entity.Role{}, nil
	}

	ids := make([]uuid.UUID, len(rolesM))
	for i, roleM := range rolesM {
		ids[i] = roleM.ID
	}

	permissions, err := repo.permissionsByRole(ctx, ids)
	if err != nil {
		return nil, err
	}

	roles := make([]*entity.Role, 0, len(rolesM))
	for _, roleM := range rolesM {
		role := toRoleDomain(roleM)
		role.Permissions = permissions[roleM.ID]
		roles = append(roles, role)
	}

	return roles, nil
}

// Create persists a new role. Its permissions slice is ignored.
func (repo *roleRepository) Create(ctx context.Context, role *entity.Role) error {
	roleM := fromRoleDomain(role)
	if err := repo.q.RoleModel.WithContext(ctx).Create(roleM); err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrRoleAlreadyExists.WithDetails(role.Name)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create role")
	}

	return nil
}

// Update writes the role's name and status.
func (repo *roleRepository) Update(ctx context.Context, role *entity.Role) error {
	r := &repo.q.RoleModel

	result, err := r.WithContext(ctx).
		Select(r.Name, r.Status, r.UpdatedAt).
		Updates(fromRoleDomain(role))
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrRoleAlreadyExists.WithDetails(role.Name)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update role")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrRoleNotFound
	}

	return nil
}

// Delete removes the role and its memberships. Permissions themselves are kept.
// accounts.role_id references the role with ON DELETE RESTRICT, so a role still
// held by an account is never removed.
func (repo *roleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := repo.db.WithContext(ctx).Where("role_id = ?", id).Delete(&model.RoleHasPermissionModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete role memberships")
	}

	result, err := repo.q.RoleModel.WithContext(ctx).Where(repo.q.RoleModel.ID.Eq(id)).Delete()
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidInput.WithDetails("role is still assigned to accounts")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to delete role")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrRoleNotFound
	}

	return nil
}

// AddPermission inserts the membership with ON CONFLICT DO NOTHING so repeated calls are harmless.
func (repo *roleRepository) AddPermission(ctx context.Context, roleID, permissionID uuid.UUID) (bool, error) {
	membership := &model.RoleHasPermissionModel{
		RoleID:       roleID,
		PermissionID: permissionID,
		CreatedAt:    time.Now().UTC(),
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Omit(clause.Associations).
		Create(membership)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return false, domainerrors.ErrNotFound.WithDetails("role or permission does not exist")
		}

		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to add permission to role")
	}

	return result.RowsAffected > 0, nil
}

// RemovePermission deletes the membership of this role only.
func (repo *roleRepository) RemovePermission(ctx context.Context, roleID, permissionID uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("role_id = ? AND permission_id = ?", roleID, permissionID).
		Delete(&model.RoleHasPermissionModel{})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to remove permission from role")
	}

	return result.RowsAffected > 0, nil
}

// HasPermission is a membership test on the association table.
func (repo *roleRepository) HasPermission(ctx context.Context, roleID, permissionID uuid.UUID) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.RoleHasPermissionModel{}).
		Where("role_id = ? AND permission_id = ?", roleID, permissionID).
		Count(&count).Error
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check role permission")
	}

	return count > 0, nil
}

// ListPermissions returns the permissions held by the role, ordered by name.
func (repo *roleRepository) ListPermissions(ctx context.Context, roleID uuid.UUID) ([]entity.Permission, error) {
	permissions, err := repo.permissionsByRole(ctx, []uuid.UUID{roleID})
	if err != nil {
		return nil, err
	}

	if list := permissions[roleID]; list != nil {
		return list, nil
	}

	return []entity.Permission{}, nil
}

// permissionsByRole loads the permissions of several roles with a single join.
func (repo *roleRepository) permissionsByRole(ctx context.Context, roleIDs []uuid.UUID) (map[uuid.UUID][]entity.Permission, error) {
	var rows []model.RolePermissionRow
	err := repo.db.WithContext(ctx).
		Table("role_has_permissions AS rhp").
		Select("rhp.role_id, p.id, p.name, p.status, p.created_at, p.updated_at").
		Joins("JOIN permissions AS p ON p.id = rhp.permission_id").
		Where("rhp.role_id IN ?", roleIDs).
		Order("p.name").
		Scan(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load role permissions")
	}

	result := make(map[uuid.UUID][]entity.Permission, len(roleIDs))
	for _, row := range rows {
		result[row.RoleID] = append(result[row.RoleID], entity.Permission{
			ID:        row.ID,
			Name:      row.Name,
			Status:    entity.Status(row.Status),
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		})
	}

	return result, nil
}

// --- Mapper Functions ---

func toRoleDomain(data *model.RoleModel) *entity.Role {
	return &entity.Role{
		ID:        data.ID,
		Name:      data.Name,
		Status:    entity.Status(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromRoleDomain(data *entity.Role) *model.RoleModel {
	return &model.RoleModel{
		ID:        data.ID,
		Name:      data.Name,
		Status:    string(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
