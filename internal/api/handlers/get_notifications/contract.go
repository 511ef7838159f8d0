package get_notifications

import (
	"context"

	"github.com/m04kA/MCN-SessionService/internal/domain"
	"github.com/m04kA/MCN-SessionService/internal/service/notifications/models"
)

type NotificationService interface {
	ListForUser(ctx context.Context, actor domain.Actor) (*models.NotificationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
