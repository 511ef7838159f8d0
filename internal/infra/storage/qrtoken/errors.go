package qrtoken

import "errors"

var (
	// ErrTokenNotFound возвращается, когда QR-токен не найден
	ErrTokenNotFound = errors.New("qrtoken.repository: token not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("qrtoken.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("qrtoken.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("qrtoken.repository: failed to scan row")
)
