package domain

import "time"

// Форматы времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// CancellationNotice минимальный срок до начала слота,
// за который клиент или сотрудник может отменить сессию
// Администраторы на это ограничение не проверяются
const CancellationNotice = 24 * time.Hour

// Ограничения бизнес-валидации
const (
	MaxCommentsLength = 1000
)
