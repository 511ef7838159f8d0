package catalog

import "errors"

var (
	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("service.catalog: invalid input")

	// ErrDistrictNotFound возвращается, когда отделение не найдено
	ErrDistrictNotFound = errors.New("service.catalog: district not found")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("service.catalog: internal error")
)
