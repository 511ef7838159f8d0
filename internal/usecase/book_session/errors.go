package book_session

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот рабочего времени не найден
	ErrSlotNotFound = errors.New("book_session: working hour not found")

	// ErrSlotUnavailable возвращается, когда слот уже занят
	// (гонка за слот проиграна либо он был занят до запроса)
	ErrSlotUnavailable = errors.New("book_session: slot is not available")

	// ErrDirectionNotFound возвращается, когда направление не найдено
	ErrDirectionNotFound = errors.New("book_session: direction not found")

	// ErrDirectionMismatch возвращается, когда направление не принадлежит
	// указанному отделению
	ErrDirectionMismatch = errors.New("book_session: direction does not belong to district")

	// ErrClientNotFound возвращается, когда целевой клиент не найден
	ErrClientNotFound = errors.New("book_session: client not found")

	// ErrForbidden возвращается, когда actor не вправе бронировать
	// для указанного клиента
	ErrForbidden = errors.New("book_session: forbidden")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_session: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_session: internal error")
)
