package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/MCN-SessionService/internal/domain"
	"github.com/m04kA/MCN-SessionService/pkg/dbmetrics"
	"github.com/m04kA/MCN-SessionService/pkg/psqlbuilder"
	"github.com/m04kA/MCN-SessionService/pkg/types"
)

// Repository репозиторий сессий
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сессий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую сессию
// Вызывается только внутри транзакции бронирования после успешного
// резервирования слота - если вставка упадёт, транзакция откатит резерв
func (r *Repository) Create(ctx context.Context, sess *domain.Session) (*domain.Session, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("sessions").
		Columns(
			"user_id",
			"working_hour_id",
			"district_id",
			"direction_id",
			"status",
			"comments",
		).
		Values(
			sess.UserID,
			sess.WorkingHourID,
			sess.DistrictID,
			sess.DirectionID,
			sess.Status,
			sess.Comments,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&sess.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	sess.CreatedAt = createdAt.Time
	sess.UpdatedAt = updatedAt.Time

	return sess, nil
}

// GetByID получает сессию по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Session, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"user_id",
		"working_hour_id",
		"district_id",
		"direction_id",
		"status",
		"comments",
		"created_at",
		"updated_at",
	).
		From("sessions").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var sess domain.Session
	var comments sql.NullString
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&sess.ID,
		&sess.UserID,
		&sess.WorkingHourID,
		&sess.DistrictID,
		&sess.DirectionID,
		&sess.Status,
		&comments,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan session: %v", ErrScanRow, err)
	}

	if comments.Valid {
		sess.Comments = &comments.String
	}
	sess.CreatedAt = createdAt.Time
	sess.UpdatedAt = updatedAt.Time

	return &sess, nil
}

// GetWithSlot получает сессию вместе со слотом одной выборкой
// Если запрос выполняется в транзакции, строки блокируются FOR UPDATE,
// чтобы переход статуса и освобождение слота шли по актуальным данным
func (r *Repository) GetWithSlot(ctx context.Context, id int64) (*domain.Session, *domain.WorkingHour, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"s.id",
		"s.user_id",
		"s.working_hour_id",
		"s.district_id",
		"s.direction_id",
		"s.status",
		"s.comments",
		"s.created_at",
		"s.updated_at",
		"w.id",
		"w.employee_id",
		"w.day_of_week",
		"w.specific_date",
		"w.start_time",
		"w.end_time",
		"w.status",
	).
		From("sessions s").
		Join("working_hours w ON w.id = s.working_hour_id").
		Where(squirrel.Eq{"s.id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF s, w")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: GetWithSlot - build select query: %v", ErrBuildQuery, err)
	}

	var sess domain.Session
	var slot domain.WorkingHour
	var comments sql.NullString
	var dayOfWeek sql.NullString
	var specificDate, createdAt, updatedAt sql.NullTime
	var startTime, endTime string

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&sess.ID,
		&sess.UserID,
		&sess.WorkingHourID,
		&sess.DistrictID,
		&sess.DirectionID,
		&sess.Status,
		&comments,
		&createdAt,
		&updatedAt,
		&slot.ID,
		&slot.EmployeeID,
		&dayOfWeek,
		&specificDate,
		&startTime,
		&endTime,
		&slot.Status,
	)

	if err == sql.ErrNoRows {
		return nil, nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, nil, fmt.Errorf("%w: GetWithSlot - scan session with slot: %v", ErrScanRow, err)
	}

	if comments.Valid {
		sess.Comments = &comments.String
	}
	sess.CreatedAt = createdAt.Time
	sess.UpdatedAt = updatedAt.Time

	if dayOfWeek.Valid {
		day := domain.Weekday(dayOfWeek.String)
		slot.DayOfWeek = &day
	}
	if specificDate.Valid {
		date := specificDate.Time
		slot.SpecificDate = &date
	}
	slot.StartTime = types.TimeString(startTime).Normalize()
	slot.EndTime = types.TimeString(endTime).Normalize()

	return &sess, &slot, nil
}

// UpdateStatus обновляет статус сессии и, если переданы, комментарии
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.SessionStatus, comments *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("sessions").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if comments != nil {
		updateBuilder = updateBuilder.Set("comments", *comments)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// ListViewsByUser получает сессии клиента, обогащённые данными слота,
// сотрудника, отделения и направления
// Порядок: по дате слота, затем по времени начала (возрастание)
func (r *Repository) ListViewsByUser(ctx context.Context, userID int64) ([]*domain.SessionView, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"s.id AS session_id",
		"s.status",
		"s.comments",
		"w.specific_date",
		"w.day_of_week",
		"w.start_time",
		"w.end_time",
		"u.name AS employee_name",
		"d.name AS district_name",
		"dir.name AS direction_name",
	).
		From("sessions s").
		LeftJoin("working_hours w ON w.id = s.working_hour_id").
		LeftJoin("users u ON u.id = w.employee_id").
		LeftJoin("districts d ON d.id = s.district_id").
		LeftJoin("directions dir ON dir.id = s.direction_id").
		Where(squirrel.Eq{"s.user_id": userID}).
		OrderBy("w.specific_date ASC NULLS LAST", "w.start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListViewsByUser - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListViewsByUser - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	views := make([]*domain.SessionView, 0)
	for rows.Next() {
		var view domain.SessionView
		var comments, dayOfWeek, startTime, endTime sql.NullString
		var employeeName, districtName, directionName sql.NullString
		var specificDate sql.NullTime

		err := rows.Scan(
			&view.SessionID,
			&view.Status,
			&comments,
			&specificDate,
			&dayOfWeek,
			&startTime,
			&endTime,
			&employeeName,
			&districtName,
			&directionName,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: ListViewsByUser - scan row: %v", ErrScanRow, err)
		}

		if comments.Valid {
			view.Comments = &comments.String
		}
		if specificDate.Valid {
			date := specificDate.Time
			view.SpecificDate = &date
		}
		if dayOfWeek.Valid {
			day := domain.Weekday(dayOfWeek.String)
			view.DayOfWeek = &day
		}
		view.StartTime = types.TimeString(startTime.String).Normalize().String()
		view.EndTime = types.TimeString(endTime.String).Normalize().String()
		view.EmployeeName = employeeName.String
		view.DistrictName = districtName.String
		view.DirectionName = directionName.String

		views = append(views, &view)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListViewsByUser - rows error: %v", ErrScanRow, err)
	}

	return views, nil
}
