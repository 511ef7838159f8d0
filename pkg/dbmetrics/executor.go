package dbmetrics

import (
	"context"
	"database/sql"
)

// DBExecutor минимальный интерфейс исполнения запросов
// Реализуется *sql.DB, *sql.Tx и обёртками этого пакета
type DBExecutor interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// TxExecutor исполнитель запросов внутри транзакции
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}

type ctxKey int

const executorKey ctxKey = iota

// WithExecutor кладет активный транзакционный executor в контекст
// Используется transaction manager'ами, чтобы репозитории выполняли
// запросы внутри открытой транзакции без изменения сигнатур
func WithExecutor(ctx context.Context, executor DBExecutor) context.Context {
	return context.WithValue(ctx, executorKey, executor)
}

// GetExecutor возвращает executor из контекста или fallback
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if executor, ok := ctx.Value(executorKey).(DBExecutor); ok && executor != nil {
		return executor
	}
	return fallback
}

// IsInTransaction проверяет, выполняется ли запрос внутри транзакции
func IsInTransaction(ctx context.Context) bool {
	executor, ok := ctx.Value(executorKey).(DBExecutor)
	return ok && executor != nil
}
