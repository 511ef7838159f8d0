package delete_working_hours

import (
	"context"

	"github.com/m04kA/MCN-SessionService/internal/domain"
)

type ScheduleService interface {
	Delete(ctx context.Context, actor domain.Actor, slotID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
