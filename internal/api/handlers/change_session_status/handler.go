package change_session_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/MCN-SessionService/internal/api/handlers"
	"github.com/m04kA/MCN-SessionService/internal/api/middleware"
	"github.com/m04kA/MCN-SessionService/internal/service/sessions"
	"github.com/m04kA/MCN-SessionService/internal/service/sessions/models"
)

const (
	msgInvalidSessionID   = "некорректный идентификатор сессии"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStatus      = "некорректный статус сессии"
	msgSessionNotFound    = "сессия не найдена"
	msgSessionFinalized   = "сессия уже завершена или отменена"
	msgWindowClosed       = "отмена возможна не позднее чем за 24 часа до начала"
	msgForbidden          = "недостаточно прав для смены статуса"
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

// Handle PATCH /api/v1/sessions/{id}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgForbidden)
		return
	}

	sessionID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || sessionID <= 0 {
		h.logger.Warn("PATCH /sessions/{id}/status - Invalid session id: %v", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	var req models.ChangeStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /sessions/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.ChangeStatus(r.Context(), actor, sessionID, &req)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("PATCH /sessions/{id}/status - Session not found: session_id=%d", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, sessions.ErrInvalidTransition):
			h.logger.Warn("PATCH /sessions/{id}/status - Session finalized: session_id=%d", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgSessionFinalized)

		case errors.Is(err, sessions.ErrWindowClosed):
			h.logger.Warn("PATCH /sessions/{id}/status - Cancellation window closed: session_id=%d", sessionID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgWindowClosed)

		case errors.Is(err, sessions.ErrAccessDenied):
			h.logger.Warn("PATCH /sessions/{id}/status - Forbidden: actor=%d role=%s, session_id=%d",
				actor.ID, actor.Role, sessionID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, sessions.ErrInvalidInput):
			h.logger.Warn("PATCH /sessions/{id}/status - Invalid status: %s", req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("PATCH /sessions/{id}/status - Failed: session_id=%d, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /sessions/{id}/status - Status changed: session_id=%d, status=%s, actor=%d",
		sessionID, req.Status, actor.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
