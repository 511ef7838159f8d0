package get_user_sessions

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/MCN-SessionService/internal/api/handlers"
	"github.com/m04kA/MCN-SessionService/internal/api/middleware"
	"github.com/m04kA/MCN-SessionService/internal/service/sessions"
)

const (
	msgInvalidUserID = "некорректный идентификатор пользователя"
	msgForbidden     = "нет доступа к сессиям этого пользователя"
)

type Handler struct {
	service SessionService
	logger  Logger
}

func NewHandler(service SessionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/{id}/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgForbidden)
		return
	}

	userID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || userID <= 0 {
		h.logger.Warn("GET /users/{id}/sessions - Invalid user id: %v", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	result, err := h.service.GetForUser(r.Context(), actor, userID)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrAccessDenied):
			h.logger.Warn("GET /users/{id}/sessions - Forbidden: actor=%d, user_id=%d", actor.ID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /users/{id}/sessions - Failed: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/{id}/sessions - Fetched %d sessions for user_id=%d", result.Total, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
