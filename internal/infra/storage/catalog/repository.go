package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/MCN-SessionService/internal/domain"
	"github.com/m04kA/MCN-SessionService/pkg/dbmetrics"
	"github.com/m04kA/MCN-SessionService/pkg/psqlbuilder"
)

// Repository read-only доступ к справочникам каталога
// CRUD каталога живёт вне ядра; здесь только чтение для валидации
// ссылок и обогащения выдачи
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetDirection получает направление по ID
func (r *Repository) GetDirection(ctx context.Context, id int64) (*domain.Direction, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"description",
		"requirements",
		"category_id",
		"requires_confirmation",
		"created_at",
		"updated_at",
	).
		From("directions").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetDirection - build select query: %v", ErrBuildQuery, err)
	}

	var dir domain.Direction
	var description, requirements sql.NullString
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&dir.ID,
		&dir.Name,
		&description,
		&requirements,
		&dir.CategoryID,
		&dir.RequiresConfirmation,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrDirectionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetDirection - scan direction: %v", ErrScanRow, err)
	}

	if description.Valid {
		dir.Description = &description.String
	}
	if requirements.Valid {
		dir.Requirements = &requirements.String
	}
	dir.CreatedAt = createdAt.Time
	dir.UpdatedAt = updatedAt.Time

	return &dir, nil
}

// ResolveDistrictForDirection возвращает отделение, которому принадлежит
// направление (через владеющую категорию)
func (r *Repository) ResolveDistrictForDirection(ctx context.Context, directionID int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("c.district_id").
		From("directions d").
		Join("categories c ON c.id = d.category_id").
		Where(squirrel.Eq{"d.id": directionID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: ResolveDistrictForDirection - build select query: %v", ErrBuildQuery, err)
	}

	var districtID int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&districtID)

	if err == sql.ErrNoRows {
		return 0, ErrDirectionNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("%w: ResolveDistrictForDirection - scan district_id: %v", ErrScanRow, err)
	}

	return districtID, nil
}

// ListDirections получает направления, опционально фильтруя по категории
func (r *Repository) ListDirections(ctx context.Context, categoryID *int64) ([]*domain.Direction, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"name",
		"description",
		"requirements",
		"category_id",
		"requires_confirmation",
		"created_at",
		"updated_at",
	).
		From("directions").
		OrderBy("name ASC")

	if categoryID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"category_id": *categoryID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListDirections - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDirections - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	directions := make([]*domain.Direction, 0)
	for rows.Next() {
		var dir domain.Direction
		var description, requirements sql.NullString
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&dir.ID,
			&dir.Name,
			&description,
			&requirements,
			&dir.CategoryID,
			&dir.RequiresConfirmation,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: ListDirections - scan row: %v", ErrScanRow, err)
		}

		if description.Valid {
			dir.Description = &description.String
		}
		if requirements.Valid {
			dir.Requirements = &requirements.String
		}
		dir.CreatedAt = createdAt.Time
		dir.UpdatedAt = updatedAt.Time

		directions = append(directions, &dir)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListDirections - rows error: %v", ErrScanRow, err)
	}

	return directions, nil
}

// GetDistrict получает отделение по ID
func (r *Repository) GetDistrict(ctx context.Context, id int64) (*domain.District, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"address",
		"phone",
		"email",
	).
		From("districts").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetDistrict - build select query: %v", ErrBuildQuery, err)
	}

	var district domain.District
	var address, phone, email sql.NullString

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&district.ID,
		&district.Name,
		&address,
		&phone,
		&email,
	)

	if err == sql.ErrNoRows {
		return nil, ErrDistrictNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetDistrict - scan district: %v", ErrScanRow, err)
	}

	if address.Valid {
		district.Address = &address.String
	}
	if phone.Valid {
		district.Phone = &phone.String
	}
	if email.Valid {
		district.Email = &email.String
	}

	return &district, nil
}
