package notification

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/MCN-SessionService/internal/domain"
	"github.com/m04kA/MCN-SessionService/pkg/dbmetrics"
	"github.com/m04kA/MCN-SessionService/pkg/psqlbuilder"
)

// Repository репозиторий внутренних уведомлений
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория уведомлений
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Insert создает уведомление пользователю
func (r *Repository) Insert(ctx context.Context, userID int64, title string, message *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("notifications").
		Columns("user_id", "title", "message").
		Values(userID, title, message).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Insert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Insert - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// ListByUser получает уведомления пользователя, новые первыми
func (r *Repository) ListByUser(ctx context.Context, userID int64) ([]*domain.Notification, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"user_id",
		"title",
		"message",
		"read",
		"created_at",
	).
		From("notifications").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	notifications := make([]*domain.Notification, 0)
	for rows.Next() {
		var n domain.Notification
		var message sql.NullString
		var createdAt sql.NullTime

		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &message, &n.Read, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: ListByUser - scan row: %v", ErrScanRow, err)
		}

		if message.Valid {
			n.Message = &message.String
		}
		n.CreatedAt = createdAt.Time

		notifications = append(notifications, &n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByUser - rows error: %v", ErrScanRow, err)
	}

	return notifications, nil
}

// MarkRead отмечает уведомление пользователя прочитанным
func (r *Repository) MarkRead(ctx context.Context, id int64, userID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("notifications").
		Set("read", true).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkRead - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkRead - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkRead - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrNotificationNotFound
	}

	return nil
}
