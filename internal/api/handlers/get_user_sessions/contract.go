package get_user_sessions

import (
	"context"

	"github.com/m04kA/MCN-SessionService/internal/domain"
	"github.com/m04kA/MCN-SessionService/internal/service/sessions/models"
)

type SessionService interface {
	GetForUser(ctx context.Context, actor domain.Actor, userID int64) (*models.SessionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
