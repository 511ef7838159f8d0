package add_working_hours

import (
	"context"

	"github.com/m04kA/MCN-SessionService/internal/domain"
	"github.com/m04kA/MCN-SessionService/internal/service/schedule/models"
)

type ScheduleService interface {
	Add(ctx context.Context, actor domain.Actor, req *models.AddWorkingHourRequest) (*models.WorkingHourResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
