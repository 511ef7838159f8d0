package notifications

import "errors"

var (
	// ErrNotificationNotFound уведомление не найдено
	ErrNotificationNotFound = errors.New("service.notifications: notification not found")

	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("service.notifications: invalid input")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("service.notifications: internal error")
)
