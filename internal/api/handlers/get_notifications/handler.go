package get_notifications

import (
	"net/http"

	"github.com/m04kA/MCN-SessionService/internal/api/handlers"
	"github.com/m04kA/MCN-SessionService/internal/api/middleware"
)

const msgUnauthorized = "требуется авторизация"

type Handler struct {
	service NotificationService
	logger  Logger
}

func NewHandler(service NotificationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/notifications
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.ListForUser(r.Context(), actor)
	if err != nil {
		h.logger.Error("GET /notifications - Failed: user_id=%d, error=%v", actor.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /notifications - Fetched %d notifications for user_id=%d", result.Total, actor.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
