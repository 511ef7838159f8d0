package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/MCN-SessionService/internal/domain"
)

const (
	defaultBatchSize   = 50
	defaultMaxAttempts = 3
)

// Config настройки воркера доставки событий
type Config struct {
	BatchSize   int
	MaxAttempts int
}

// Worker фоновый потребитель outbox-событий
// Для каждого события создаёт внутреннее уведомление и отправляет письмо;
// для подтверждённых бронирований в письмо вкладывается код чек-ина
// Доставка at-most-once: после MaxAttempts неудач событие закрывается
type Worker struct {
	outbox        OutboxRepository
	notifications NotificationRepository
	users         UserRepository
	qrIssuer      QRIssuer
	mailer        Mailer
	metrics       Metrics
	logger        Logger
	batchSize     int
	maxAttempts   int
}

// New создает воркер доставки событий
// metrics может быть nil, если сбор метрик выключен
func New(
	outbox OutboxRepository,
	notifications NotificationRepository,
	users UserRepository,
	qrIssuer QRIssuer,
	mailer Mailer,
	metrics Metrics,
	logger Logger,
	cfg Config,
) *Worker {
	batch := cfg.BatchSize
	if batch <= 0 {
		batch = defaultBatchSize
	}
	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}

	return &Worker{
		outbox:        outbox,
		notifications: notifications,
		users:         users,
		qrIssuer:      qrIssuer,
		mailer:        mailer,
		metrics:       metrics,
		logger:        logger,
		batchSize:     batch,
		maxAttempts:   maxAttempts,
	}
}

// Run выполняет один проход по необработанным событиям
func (w *Worker) Run(ctx context.Context) error {
	events, err := w.outbox.ListPending(ctx, w.batchSize)
	if err != nil {
		return fmt.Errorf("worker: failed to list pending events: %w", err)
	}

	for _, event := range events {
		if err := w.processEvent(ctx, event); err != nil {
			w.logger.Error("Worker: failed to process event id=%d type=%s: %v", event.ID, event.Type, err)
			w.observe(event.Type, "failed")

			if err := w.outbox.IncrementAttempts(ctx, event.ID, w.maxAttempts); err != nil {
				w.logger.Error("Worker: failed to increment attempts for event id=%d: %v", event.ID, err)
			}
			continue
		}

		if err := w.outbox.MarkProcessed(ctx, event.ID); err != nil {
			w.logger.Error("Worker: failed to mark event id=%d processed: %v", event.ID, err)
			continue
		}
		w.observe(event.Type, "delivered")
	}

	return nil
}

func (w *Worker) processEvent(ctx context.Context, event *domain.OutboxEvent) error {
	recipient, err := w.users.GetByID(ctx, event.UserID)
	if err != nil {
		return fmt.Errorf("get recipient user id=%d: %w", event.UserID, err)
	}

	title, message := w.composeMessage(ctx, event)

	if err := w.notifications.Insert(ctx, event.UserID, title, &message); err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}

	if recipient.Email != "" {
		// Письмо - best-effort поверх уже созданного уведомления:
		// недоставленная почта не считается сбоем события
		if err := w.mailer.Send(recipient.Email, title, message); err != nil {
			w.logger.Warn("Worker: email delivery failed for event id=%d: %v", event.ID, err)
		}
	}

	w.logger.Info("Worker: delivered event id=%d type=%s to user=%d", event.ID, event.Type, event.UserID)
	return nil
}

func (w *Worker) composeMessage(ctx context.Context, event *domain.OutboxEvent) (string, string) {
	switch event.Type {
	case domain.EventSessionBooked:
		title := "Запись подтверждена"
		if event.NewStatus == domain.StatusPendingConfirmation {
			title = "Запись ожидает подтверждения"
		}
		message := fmt.Sprintf("Ваша запись №%d создана со статусом %q.", event.SessionID, event.NewStatus)

		// Код чек-ина вкладывается в подтверждение бронирования
		if issued, err := w.qrIssuer.IssueForSession(ctx, event.SessionID); err != nil {
			w.logger.Warn("Worker: failed to issue check-in token for session id=%d: %v", event.SessionID, err)
		} else {
			message += fmt.Sprintf(" Код для чек-ина: %s (%s)", issued.Token, issued.URL)
		}
		return title, message

	case domain.EventSessionStatusChanged:
		return "Статус записи изменён",
			fmt.Sprintf("Статус вашей записи №%d изменён на %q.", event.SessionID, event.NewStatus)

	default:
		return "Уведомление",
			fmt.Sprintf("Событие по записи №%d: %s.", event.SessionID, event.Type)
	}
}

func (w *Worker) observe(eventType domain.EventType, status string) {
	if w.metrics != nil {
		w.metrics.ObserveOutboxEvent(string(eventType), status)
	}
}

// Start запускает воркер с периодическим опросом outbox
// Останавливается по отмене контекста
func Start(ctx context.Context, interval time.Duration, w *Worker) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.Run(ctx); err != nil {
				w.logger.Error("Worker: run failed: %v", err)
			}
		}
	}
}
