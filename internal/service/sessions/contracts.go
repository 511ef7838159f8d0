package sessions

import (
	"context"
	"time"

	"github.com/m04kA/MCN-SessionService/internal/domain"
)

// SessionRepository интерфейс репозитория сессий
type SessionRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Session, error)
	GetWithSlot(ctx context.Context, id int64) (*domain.Session, *domain.WorkingHour, error)
	UpdateStatus(ctx context.Context, id int64, status domain.SessionStatus, comments *string) error
	ListViewsByUser(ctx context.Context, userID int64) ([]*domain.SessionView, error)
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	Release(ctx context.Context, id int64) error
}

// EventEmitter интерфейс эмиттера событий жизненного цикла
type EventEmitter interface {
	SessionStatusChanged(ctx context.Context, sess *domain.Session, newStatus domain.SessionStatus)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider источник текущего времени, выделен для тестов правила окна отмены
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реализация TimeProvider поверх системных часов
type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
