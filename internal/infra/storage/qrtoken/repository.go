package qrtoken

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/MCN-SessionService/internal/domain"
	"github.com/m04kA/MCN-SessionService/pkg/dbmetrics"
	"github.com/m04kA/MCN-SessionService/pkg/psqlbuilder"
)

// Repository репозиторий одноразовых QR-токенов чек-ина
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория QR-токенов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Insert сохраняет выпущенный токен
func (r *Repository) Insert(ctx context.Context, token *domain.QRToken) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("queue_qr_tokens").
		Columns("token", "session_id", "expires_at", "used").
		Values(token.Token, token.SessionID, token.ExpiresAt, false).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Insert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&token.ID, &createdAt); err != nil {
		return fmt.Errorf("%w: Insert - execute insert: %v", ErrExecQuery, err)
	}
	token.CreatedAt = createdAt.Time

	return nil
}

// GetByToken получает токен по значению
func (r *Repository) GetByToken(ctx context.Context, token string) (*domain.QRToken, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"token",
		"session_id",
		"expires_at",
		"used",
		"created_at",
	).
		From("queue_qr_tokens").
		Where(squirrel.Eq{"token": token}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByToken - build select query: %v", ErrBuildQuery, err)
	}

	var qr domain.QRToken
	var expiresAt, createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&qr.ID,
		&qr.Token,
		&qr.SessionID,
		&expiresAt,
		&qr.Used,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrTokenNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByToken - scan token: %v", ErrScanRow, err)
	}

	qr.ExpiresAt = expiresAt.Time
	qr.CreatedAt = createdAt.Time

	return &qr, nil
}

// MarkUsed отмечает токен использованным
func (r *Repository) MarkUsed(ctx context.Context, token string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("queue_qr_tokens").
		Set("used", true).
		Where(squirrel.Eq{"token": token}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkUsed - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkUsed - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkUsed - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrTokenNotFound
	}

	return nil
}
