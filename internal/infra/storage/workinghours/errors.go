package workinghours

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот рабочего времени не найден
	ErrSlotNotFound = errors.New("workinghours.repository: working hour not found")

	// ErrSlotAlreadyBooked возвращается, когда условное обновление
	// available -> booked не прошло из-за проигранной гонки
	ErrSlotAlreadyBooked = errors.New("workinghours.repository: slot already booked")

	// ErrSlotReferenced возвращается при попытке удалить слот,
	// на который ссылается незавершённая сессия
	ErrSlotReferenced = errors.New("workinghours.repository: slot is referenced by an active session")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("workinghours.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("workinghours.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("workinghours.repository: failed to scan row")
)
