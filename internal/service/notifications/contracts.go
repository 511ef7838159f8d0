package notifications

import (
	"context"

	"github.com/m04kA/MCN-SessionService/internal/domain"
)

// NotificationRepository интерфейс репозитория уведомлений
type NotificationRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, id int64, userID int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
