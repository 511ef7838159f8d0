package generate_qr_code

import (
	"context"

	"github.com/m04kA/MCN-SessionService/internal/domain"
	"github.com/m04kA/MCN-SessionService/internal/service/qrcodes"
)

type QRService interface {
	Issue(ctx context.Context, actor domain.Actor, sessionID int64) (*qrcodes.IssuedToken, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
