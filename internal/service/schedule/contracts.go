package schedule

import (
	"context"

	"github.com/m04kA/MCN-SessionService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов рабочего времени
type SlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.WorkingHour, error)
	Create(ctx context.Context, slot *domain.WorkingHour) (*domain.WorkingHour, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]*domain.WorkingHour, error)
	Delete(ctx context.Context, id int64, employeeID int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
