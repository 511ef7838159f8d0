package schedule

import "errors"

var (
	// ErrSlotNotFound слот рабочего времени не найден
	ErrSlotNotFound = errors.New("service.schedule: working hour not found")

	// ErrSlotReferenced слот удерживается незавершённой сессией
	ErrSlotReferenced = errors.New("service.schedule: working hour is referenced by an active session")

	// ErrAccessDenied нет прав на операцию
	ErrAccessDenied = errors.New("service.schedule: access denied")

	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("service.schedule: invalid input")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("service.schedule: internal error")
)
