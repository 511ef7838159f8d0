package outbox

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/MCN-SessionService/internal/domain"
	"github.com/m04kA/MCN-SessionService/pkg/dbmetrics"
	"github.com/m04kA/MCN-SessionService/pkg/psqlbuilder"
)

// Repository репозиторий outbox-событий жизненного цикла сессий
// Эмиттер пишет сюда после коммита перехода, воркер забирает пачками
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория outbox
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Enqueue добавляет событие в outbox
func (r *Repository) Enqueue(ctx context.Context, event *domain.OutboxEvent) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("session_events").
		Columns("event_type", "session_id", "user_id", "new_status").
		Values(event.Type, event.SessionID, event.UserID, event.NewStatus).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Enqueue - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&event.ID, &createdAt); err != nil {
		return fmt.Errorf("%w: Enqueue - execute insert: %v", ErrExecQuery, err)
	}
	event.CreatedAt = createdAt.Time

	return nil
}

// ListPending получает необработанные события, старые первыми
func (r *Repository) ListPending(ctx context.Context, limit int) ([]*domain.OutboxEvent, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"event_type",
		"session_id",
		"user_id",
		"new_status",
		"attempts",
		"processed",
		"created_at",
	).
		From("session_events").
		Where(squirrel.Eq{"processed": false}).
		OrderBy("created_at ASC").
		Limit(uint64(limit)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListPending - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListPending - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	events := make([]*domain.OutboxEvent, 0)
	for rows.Next() {
		var event domain.OutboxEvent
		var createdAt sql.NullTime

		err := rows.Scan(
			&event.ID,
			&event.Type,
			&event.SessionID,
			&event.UserID,
			&event.NewStatus,
			&event.Attempts,
			&event.Processed,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: ListPending - scan row: %v", ErrScanRow, err)
		}

		event.CreatedAt = createdAt.Time
		events = append(events, &event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListPending - rows error: %v", ErrScanRow, err)
	}

	return events, nil
}

// MarkProcessed отмечает событие доставленным
func (r *Repository) MarkProcessed(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("session_events").
		Set("processed", true).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkProcessed - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkProcessed - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkProcessed - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrEventNotFound
	}

	return nil
}

// IncrementAttempts увеличивает счётчик попыток доставки
// При достижении maxAttempts событие помечается обработанным,
// чтобы не зациклиться на вечно падающей доставке (at-most-once)
func (r *Repository) IncrementAttempts(ctx context.Context, id int64, maxAttempts int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("session_events").
		Set("attempts", squirrel.Expr("attempts + 1")).
		Set("processed", squirrel.Expr("attempts + 1 >= ?", maxAttempts)).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: IncrementAttempts - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: IncrementAttempts - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: IncrementAttempts - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrEventNotFound
	}

	return nil
}
