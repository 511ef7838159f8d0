package book_session

import (
	"context"

	"github.com/m04kA/MCN-SessionService/internal/domain"
)

// SlotRepository интерфейс реестра слотов
// TryReserve сам различает отсутствующий и уже занятый слот
type SlotRepository interface {
	TryReserve(ctx context.Context, id int64) error
}

// SessionRepository интерфейс репозитория сессий
type SessionRepository interface {
	Create(ctx context.Context, sess *domain.Session) (*domain.Session, error)
}

// CatalogRepository интерфейс справочника услуг
type CatalogRepository interface {
	GetDirection(ctx context.Context, id int64) (*domain.Direction, error)
	ResolveDistrictForDirection(ctx context.Context, directionID int64) (int64, error)
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// EventEmitter интерфейс публикации событий жизненного цикла
// Вызывается после коммита; реализация не возвращает ошибок наружу
type EventEmitter interface {
	SessionBooked(ctx context.Context, sess *domain.Session)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
