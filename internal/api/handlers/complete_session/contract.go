package complete_session

import (
	"context"

	"github.com/m04kA/MCN-SessionService/internal/domain"
	"github.com/m04kA/MCN-SessionService/internal/service/sessions/models"
)

type SessionService interface {
	Complete(ctx context.Context, actor domain.Actor, sessionID int64, comments *string) (*models.SessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
