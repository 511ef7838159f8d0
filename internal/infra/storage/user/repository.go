package user

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/MCN-SessionService/internal/domain"
	"github.com/m04kA/MCN-SessionService/pkg/dbmetrics"
	"github.com/m04kA/MCN-SessionService/pkg/psqlbuilder"
)

// User учётная запись пользователя
// Ядру нужны только контактные данные и роль - аутентификацией
// занимается внешний сервис
type User struct {
	ID         int64
	Name       *string
	Email      string
	Phone      *string
	Role       domain.Role
	DistrictID *int64
}

// Repository read-only репозиторий пользователей
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория пользователей
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает пользователя по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"email",
		"phone",
		"role",
		"district_id",
	).
		From("users").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var u User
	var name, phone sql.NullString
	var districtID sql.NullInt64

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&u.ID,
		&name,
		&u.Email,
		&phone,
		&u.Role,
		&districtID,
	)

	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan user: %v", ErrScanRow, err)
	}

	if name.Valid {
		u.Name = &name.String
	}
	if phone.Valid {
		u.Phone = &phone.String
	}
	if districtID.Valid {
		u.DistrictID = &districtID.Int64
	}

	return &u, nil
}

// Exists проверяет существование пользователя
func (r *Repository) Exists(ctx context.Context, id int64) (bool, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		if err == ErrUserNotFound {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
