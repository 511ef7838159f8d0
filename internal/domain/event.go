package domain

import "time"

// EventType тип события жизненного цикла сессии
type EventType string

const (
	EventSessionBooked        EventType = "session.booked"
	EventSessionStatusChanged EventType = "session.status_changed"
)

// OutboxEvent запись outbox о совершённом переходе жизненного цикла
// Пишется эмиттером после коммита транзакции перехода и доставляется
// фоновым воркером; судьба события не влияет на сам переход
type OutboxEvent struct {
	ID        int64
	Type      EventType
	SessionID int64
	UserID    int64
	NewStatus SessionStatus
	Attempts  int
	Processed bool
	CreatedAt time.Time
}
