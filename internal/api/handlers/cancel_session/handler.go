package cancel_session

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
	msgInvalidSessionID   = "некорректный идентификатор сессии"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgSessionNotFound    = "сессия не найдена"
	msgSessionFinalized   = "сессия уже завершена или отменена"
	msgWindowClosed       = "отмена возможна не позднее чем за 24 часа до начала"
	msgForbidden          = "недостаточно прав для отмены сессии"
)

// CancelSessionRequest HTTP request model
type CancelSessionRequest struct {
	Comments *string `json:"comments,omitempty"`
}

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

// Handle POST /api/v1/sessions/{id}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgForbidden)
		return
	}

	sessionID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || sessionID <= 0 {
		h.logger.Warn("POST /sessions/{id}/cancel - Invalid session id: %v", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	var req CancelSessionRequest
	if r.Body != nil && r.ContentLength > 0 {
		if err := handlers.DecodeJSON(r, &req); err != nil {
			h.logger.Warn("POST /sessions/{id}/cancel - Invalid request body: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
	}

	result, err := h.service.Cancel(r.Context(), actor, sessionID, req.Comments)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/cancel - Session not found: session_id=%d", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, sessions.ErrInvalidTransition):
			h.logger.Warn("POST /sessions/{id}/cancel - Session finalized: session_id=%d", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgSessionFinalized)

		case errors.Is(err, sessions.ErrWindowClosed):
			h.logger.Warn("POST /sessions/{id}/cancel - Cancellation window closed: session_id=%d, actor=%d",
				sessionID, actor.ID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgWindowClosed)

		case errors.Is(err, sessions.ErrAccessDenied):
			h.logger.Warn("POST /sessions/{id}/cancel - Forbidden: actor=%d, session_id=%d", actor.ID, sessionID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("POST /sessions/{id}/cancel - Failed: session_id=%d, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/cancel - Session cancelled: session_id=%d, actor=%d", sessionID, actor.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
