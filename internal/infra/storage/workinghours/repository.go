package workinghours

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

// Repository репозиторий слотов рабочего времени
// Статус слота мутируется только через TryReserve и Release -
// прямые записи в колонку status вне этих методов запрещены
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает слот по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.WorkingHour, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"employee_id",
		"day_of_week",
		"specific_date",
		"start_time",
		"end_time",
		"status",
		"created_at",
		"updated_at",
	).
		From("working_hours").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanSlot(executor.QueryRowContext(ctx, query, args...))
}

// TryReserve атомарно переводит слот available -> booked
// Единственный примитив конкурентности бронирования: условное обновление
// с проверкой числа затронутых строк вместо read-then-write, поэтому из
// двух гоняющихся транзакций ровно одна увидит available и выиграет
func (r *Repository) TryReserve(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("working_hours").
		Set("status", domain.SlotBooked).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": domain.SlotAvailable}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: TryReserve - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: TryReserve - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: TryReserve - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		// Либо слот не существует, либо гонка проиграна - различаем
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return ErrSlotAlreadyBooked
	}

	return nil
}

// Release безусловно переводит слот в available
// Идемпотентна: повторный вызов на свободном слоте - no-op
// Вызывается только при переходе владеющей сессии в конечный статус
func (r *Repository) Release(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("working_hours").
		Set("status", domain.SlotAvailable).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Release - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Release - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Release - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}

// Create создает слот рабочего времени (управление расписанием)
func (r *Repository) Create(ctx context.Context, slot *domain.WorkingHour) (*domain.WorkingHour, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("working_hours").
		Columns(
			"employee_id",
			"day_of_week",
			"specific_date",
			"start_time",
			"end_time",
			"status",
		).
		Values(
			slot.EmployeeID,
			slot.DayOfWeek,
			slot.SpecificDate,
			slot.StartTime,
			slot.EndTime,
			domain.SlotAvailable,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&slot.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	slot.Status = domain.SlotAvailable
	slot.CreatedAt = createdAt.Time
	slot.UpdatedAt = updatedAt.Time

	return slot, nil
}

// ListByEmployee получает расписание сотрудника
func (r *Repository) ListByEmployee(ctx context.Context, employeeID int64) ([]*domain.WorkingHour, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"employee_id",
		"day_of_week",
		"specific_date",
		"start_time",
		"end_time",
		"status",
		"created_at",
		"updated_at",
	).
		From("working_hours").
		Where(squirrel.Eq{"employee_id": employeeID}).
		OrderBy("specific_date ASC NULLS LAST, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByEmployee - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByEmployee - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.WorkingHour, 0)
	for rows.Next() {
		slot, err := r.scanSlotRows(rows)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByEmployee - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// Delete удаляет слот, если на него не ссылается незавершённая сессия
func (r *Repository) Delete(ctx context.Context, id int64, employeeID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	// Слот нельзя удалять, пока его удерживает активная сессия
	query, args, err := psqlbuilder.Delete("working_hours").
		Where(squirrel.Eq{"id": id, "employee_id": employeeID}).
		Where(squirrel.Expr(
			"NOT EXISTS (SELECT 1 FROM sessions WHERE sessions.working_hour_id = working_hours.id AND sessions.status NOT IN (?, ?))",
			domain.StatusCompleted, domain.StatusCanceled,
		)).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		// Слот не найден для этого сотрудника либо удерживается сессией
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return ErrSlotReferenced
	}

	return nil
}

func (r *Repository) scanSlot(row *sql.Row) (*domain.WorkingHour, error) {
	var slot domain.WorkingHour
	var dayOfWeek sql.NullString
	var specificDate, createdAt, updatedAt sql.NullTime
	var startTime, endTime string

	err := row.Scan(
		&slot.ID,
		&slot.EmployeeID,
		&dayOfWeek,
		&specificDate,
		&startTime,
		&endTime,
		&slot.Status,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scan working hour: %v", ErrScanRow, err)
	}

	fillSlot(&slot, dayOfWeek, specificDate, startTime, endTime, createdAt, updatedAt)
	return &slot, nil
}

func (r *Repository) scanSlotRows(rows *sql.Rows) (*domain.WorkingHour, error) {
	var slot domain.WorkingHour
	var dayOfWeek sql.NullString
	var specificDate, createdAt, updatedAt sql.NullTime
	var startTime, endTime string

	err := rows.Scan(
		&slot.ID,
		&slot.EmployeeID,
		&dayOfWeek,
		&specificDate,
		&startTime,
		&endTime,
		&slot.Status,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: scan working hour row: %v", ErrScanRow, err)
	}

	fillSlot(&slot, dayOfWeek, specificDate, startTime, endTime, createdAt, updatedAt)
	return &slot, nil
}

func fillSlot(
	slot *domain.WorkingHour,
	dayOfWeek sql.NullString,
	specificDate sql.NullTime,
	startTime, endTime string,
	createdAt, updatedAt sql.NullTime,
) {
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
	slot.CreatedAt = createdAt.Time
	slot.UpdatedAt = updatedAt.Time
}
