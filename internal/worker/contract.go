package worker

import (
	"context"

	"github.com/m04kA/MCN-SessionService/internal/domain"
	userRepo "github.com/m04kA/MCN-SessionService/internal/infra/storage/user"
	"github.com/m04kA/MCN-SessionService/internal/service/qrcodes"
)

// OutboxRepository интерфейс репозитория outbox-событий
type OutboxRepository interface {
	ListPending(ctx context.Context, limit int) ([]*domain.OutboxEvent, error)
	MarkProcessed(ctx context.Context, id int64) error
	IncrementAttempts(ctx context.Context, id int64, maxAttempts int) error
}

// NotificationRepository интерфейс репозитория уведомлений
type NotificationRepository interface {
	Insert(ctx context.Context, userID int64, title string, message *string) error
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*userRepo.User, error)
}

// QRIssuer интерфейс выпуска QR-токенов чек-ина
type QRIssuer interface {
	IssueForSession(ctx context.Context, sessionID int64) (*qrcodes.IssuedToken, error)
}

// Mailer интерфейс отправки писем
type Mailer interface {
	Send(to, subject, body string) error
}

// Metrics интерфейс метрик обработки событий
type Metrics interface {
	ObserveOutboxEvent(eventType, status string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
