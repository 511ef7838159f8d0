package catalog

import "errors"

var (
	// ErrDirectionNotFound возвращается, когда направление не найдено
	ErrDirectionNotFound = errors.New("catalog.repository: direction not found")

	// ErrDistrictNotFound возвращается, когда отделение не найдено
	ErrDistrictNotFound = errors.New("catalog.repository: district not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("catalog.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("catalog.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("catalog.repository: failed to scan row")
)
