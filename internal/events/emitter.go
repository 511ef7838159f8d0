package events

import (
	"context"

	"github.com/m04kA/MCN-SessionService/internal/domain"
)

// OutboxRepository интерфейс репозитория outbox
type OutboxRepository interface {
	Enqueue(ctx context.Context, event *domain.OutboxEvent) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Emitter ставит события жизненного цикла в outbox после коммита перехода
// Доставку выполняет фоновый воркер; ошибки постановки логируются
// и проглатываются - совершённый переход они откатить не могут
type Emitter struct {
	outbox OutboxRepository
	logger Logger
}

// NewEmitter создает новый эмиттер событий
func NewEmitter(outbox OutboxRepository, logger Logger) *Emitter {
	return &Emitter{
		outbox: outbox,
		logger: logger,
	}
}

// SessionBooked публикует событие о созданной записи
func (e *Emitter) SessionBooked(ctx context.Context, sess *domain.Session) {
	e.emit(ctx, &domain.OutboxEvent{
		Type:      domain.EventSessionBooked,
		SessionID: sess.ID,
		UserID:    sess.UserID,
		NewStatus: sess.Status,
	})
}

// SessionStatusChanged публикует событие о смене статуса сессии
func (e *Emitter) SessionStatusChanged(ctx context.Context, sess *domain.Session, newStatus domain.SessionStatus) {
	e.emit(ctx, &domain.OutboxEvent{
		Type:      domain.EventSessionStatusChanged,
		SessionID: sess.ID,
		UserID:    sess.UserID,
		NewStatus: newStatus,
	})
}

func (e *Emitter) emit(ctx context.Context, event *domain.OutboxEvent) {
	// Переход уже закоммичен: сбой публикации не должен дойти до вызывающего
	if err := e.outbox.Enqueue(ctx, event); err != nil {
		e.logger.Error("Emitter: failed to enqueue %s for session id=%d: %v",
			event.Type, event.SessionID, err)
		return
	}
	e.logger.Info("Emitter: enqueued %s for session id=%d", event.Type, event.SessionID)
}
