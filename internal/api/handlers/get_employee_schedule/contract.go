package get_employee_schedule

import (
	"context"

	"github.com/m04kA/MCN-SessionService/internal/service/schedule/models"
)

type ScheduleService interface {
	List(ctx context.Context, employeeID int64) (*models.WorkingHourListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
