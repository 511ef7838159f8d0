package qrcodes

import (
	"context"

	"github.com/m04kA/MCN-SessionService/internal/domain"
)

// SessionRepository интерфейс репозитория сессий
type SessionRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Session, error)
}

// TokenRepository интерфейс репозитория QR-токенов
type TokenRepository interface {
	Insert(ctx context.Context, token *domain.QRToken) error
	GetByToken(ctx context.Context, token string) (*domain.QRToken, error)
	MarkUsed(ctx context.Context, token string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
