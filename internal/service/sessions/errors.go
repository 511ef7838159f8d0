package sessions

import "errors"

var (
	// ErrSessionNotFound сессия не найдена
	ErrSessionNotFound = errors.New("service.sessions: session not found")

	// ErrInvalidTransition попытка перехода для сессии в терминальном статусе
	ErrInvalidTransition = errors.New("service.sessions: session already finalized")

	// ErrWindowClosed отмена запрошена позже чем за сутки до начала слота
	ErrWindowClosed = errors.New("service.sessions: cancellation window closed")

	// ErrAccessDenied нет прав на операцию
	ErrAccessDenied = errors.New("service.sessions: access denied")

	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("service.sessions: invalid input")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("service.sessions: internal error")
)
