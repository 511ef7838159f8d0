package get_employee_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/MCN-SessionService/internal/api/handlers"
	"github.com/m04kA/MCN-SessionService/internal/service/schedule"
)

const (
	msgInvalidEmployeeID = "некорректный идентификатор сотрудника"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/employees/{id}/working-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	employeeID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || employeeID <= 0 {
		h.logger.Warn("GET /employees/{id}/working-hours - Invalid employee id: %v", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidEmployeeID)
		return
	}

	result, err := h.service.List(r.Context(), employeeID)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("GET /employees/{id}/working-hours - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidEmployeeID)

		default:
			h.logger.Error("GET /employees/{id}/working-hours - Failed: employee_id=%d, error=%v", employeeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /employees/{id}/working-hours - Fetched %d working hours for employee_id=%d",
		result.Total, employeeID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
