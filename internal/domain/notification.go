package domain

import "time"

// Notification внутреннее уведомление пользователя
type Notification struct {
	ID        int64
	UserID    int64
	Title     string
	Message   *string
	Read      bool
	CreatedAt time.Time
}

// QRToken одноразовый токен чек-ина по QR-коду
// Привязан к сессии, действителен ограниченное время
type QRToken struct {
	ID        int64
	Token     string
	SessionID int64
	ExpiresAt time.Time
	Used      bool
	CreatedAt time.Time
}

// IsExpired проверяет, истёк ли токен к моменту now
func (t *QRToken) IsExpired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
