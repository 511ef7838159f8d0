package qrcodes

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена
	ErrSessionNotFound = errors.New("qrcodes: session not found")

	// ErrTokenNotFound возвращается, когда токен не найден
	ErrTokenNotFound = errors.New("qrcodes: token not found")

	// ErrTokenExpired возвращается, когда срок действия токена истёк
	ErrTokenExpired = errors.New("qrcodes: token expired")

	// ErrTokenUsed возвращается при повторном использовании токена
	ErrTokenUsed = errors.New("qrcodes: token already used")

	// ErrAccessDenied возвращается при попытке получить QR чужой сессии
	ErrAccessDenied = errors.New("qrcodes: access denied")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("qrcodes: internal error")
)
