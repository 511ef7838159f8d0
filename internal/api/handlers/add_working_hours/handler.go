package add_working_hours

import (
	"errors"
	"net/http"

	"github.com/m04kA/MCN-SessionService/internal/api/handlers"
	"github.com/m04kA/MCN-SessionService/internal/api/middleware"
	"github.com/m04kA/MCN-SessionService/internal/service/schedule"
	"github.com/m04kA/MCN-SessionService/internal/service/schedule/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные параметры слота"
	msgForbidden          = "недостаточно прав для управления расписанием"
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

// Handle POST /api/v1/working-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgForbidden)
		return
	}

	var req models.AddWorkingHourRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /working-hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Add(r.Context(), actor, &req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("POST /working-hours - Forbidden: actor=%d role=%s", actor.ID, actor.Role)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("POST /working-hours - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /working-hours - Failed: actor=%d, error=%v", actor.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /working-hours - Working hour created: id=%d, employee=%d", result.ID, result.EmployeeID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
