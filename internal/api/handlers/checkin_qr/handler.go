package checkin_qr

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/MCN-SessionService/internal/api/handlers"
	"github.com/m04kA/MCN-SessionService/internal/service/qrcodes"
)

const (
	msgInvalidToken  = "некорректный токен"
	msgTokenNotFound = "токен не найден"
	msgTokenExpired  = "срок действия токена истёк"
	msgTokenUsed     = "токен уже использован"
)

// CheckinResponse HTTP response model
type CheckinResponse struct {
	SessionID int64 `json:"sessionId"`
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

// Handle POST /api/v1/qr/access/{token}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]
	if token == "" {
		handlers.RespondBadRequest(w, msgInvalidToken)
		return
	}

	sessionID, err := h.service.Resolve(r.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, qrcodes.ErrTokenNotFound):
			h.logger.Warn("POST /qr/access/{token} - Token not found")
			handlers.RespondNotFound(w, msgTokenNotFound)

		case errors.Is(err, qrcodes.ErrTokenExpired):
			h.logger.Warn("POST /qr/access/{token} - Token expired")
			handlers.RespondError(w, http.StatusGone, msgTokenExpired)

		case errors.Is(err, qrcodes.ErrTokenUsed):
			h.logger.Warn("POST /qr/access/{token} - Token already used")
			handlers.RespondError(w, http.StatusGone, msgTokenUsed)

		default:
			h.logger.Error("POST /qr/access/{token} - Failed: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /qr/access/{token} - Check-in resolved: session_id=%d", sessionID)
	handlers.RespondJSON(w, http.StatusOK, CheckinResponse{SessionID: sessionID})
}
