package checkin_qr

import (
	"context"
)

type QRService interface {
	Resolve(ctx context.Context, token string) (int64, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
