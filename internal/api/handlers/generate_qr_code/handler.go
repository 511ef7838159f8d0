package generate_qr_code

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/MCN-SessionService/internal/api/handlers"
	"github.com/m04kA/MCN-SessionService/internal/api/middleware"
	"github.com/m04kA/MCN-SessionService/internal/service/qrcodes"
)

const (
	msgInvalidSessionID = "некорректный идентификатор сессии"
	msgSessionNotFound  = "сессия не найдена"
	msgForbidden        = "нет доступа к QR-коду этой сессии"
)

// QRTokenResponse HTTP response model
type QRTokenResponse struct {
	Token     string `json:"token"`
	SessionID int64  `json:"sessionId"`
	URL       string `json:"url"`
	ExpiresAt string `json:"expiresAt"` // ISO 8601
}

type Handler struct {
	service QRService
	logger  Logger
}

func NewHandler(service QRService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions/{id}/qr
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgForbidden)
		return
	}

	sessionID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || sessionID <= 0 {
		h.logger.Warn("POST /sessions/{id}/qr - Invalid session id: %v", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	issued, err := h.service.Issue(r.Context(), actor, sessionID)
	if err != nil {
		switch {
		case errors.Is(err, qrcodes.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/qr - Session not found: session_id=%d", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, qrcodes.ErrAccessDenied):
			h.logger.Warn("POST /sessions/{id}/qr - Forbidden: actor=%d, session_id=%d", actor.ID, sessionID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("POST /sessions/{id}/qr - Failed: session_id=%d, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/qr - Token issued: session_id=%d, actor=%d", sessionID, actor.ID)
	handlers.RespondJSON(w, http.StatusCreated, QRTokenResponse{
		Token:     issued.Token,
		SessionID: issued.SessionID,
		URL:       issued.URL,
		ExpiresAt: issued.ExpiresAt.Format(time.RFC3339),
	})
}
