package delete_working_hours

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/MCN-SessionService/internal/api/handlers"
	"github.com/m04kA/MCN-SessionService/internal/api/middleware"
	"github.com/m04kA/MCN-SessionService/internal/service/schedule"
)

const (
	msgInvalidSlotID  = "некорректный идентификатор слота"
	msgSlotNotFound   = "слот рабочего времени не найден"
	msgSlotReferenced = "слот удерживается активной записью"
	msgForbidden      = "недостаточно прав для удаления слота"
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

// Handle DELETE /api/v1/working-hours/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgForbidden)
		return
	}

	slotID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || slotID <= 0 {
		h.logger.Warn("DELETE /working-hours/{id} - Invalid slot id: %v", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	if err := h.service.Delete(r.Context(), actor, slotID); err != nil {
		switch {
		case errors.Is(err, schedule.ErrSlotNotFound):
			h.logger.Warn("DELETE /working-hours/{id} - Slot not found: slot_id=%d", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, schedule.ErrSlotReferenced):
			h.logger.Warn("DELETE /working-hours/{id} - Slot referenced: slot_id=%d", slotID)
			handlers.RespondError(w, http.StatusConflict, msgSlotReferenced)

		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("DELETE /working-hours/{id} - Forbidden: actor=%d, slot_id=%d", actor.ID, slotID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /working-hours/{id} - Failed: slot_id=%d, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /working-hours/{id} - Working hour deleted: slot_id=%d, actor=%d", slotID, actor.ID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
