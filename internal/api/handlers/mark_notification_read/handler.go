package mark_notification_read

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/MCN-SessionService/internal/api/handlers"
	"github.com/m04kA/MCN-SessionService/internal/api/middleware"
	"github.com/m04kA/MCN-SessionService/internal/service/notifications"
)

const (
	msgUnauthorized          = "требуется авторизация"
	msgInvalidNotificationID = "некорректный идентификатор уведомления"
	msgNotificationNotFound  = "уведомление не найдено"
)

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

// Handle PATCH /api/v1/notifications/{id}/read
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	notificationID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || notificationID <= 0 {
		h.logger.Warn("PATCH /notifications/{id}/read - Invalid notification id: %v", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidNotificationID)
		return
	}

	if err := h.service.MarkRead(r.Context(), actor, notificationID); err != nil {
		switch {
		case errors.Is(err, notifications.ErrNotificationNotFound):
			h.logger.Warn("PATCH /notifications/{id}/read - Not found: notification_id=%d, user_id=%d",
				notificationID, actor.ID)
			handlers.RespondNotFound(w, msgNotificationNotFound)

		case errors.Is(err, notifications.ErrInvalidInput):
			h.logger.Warn("PATCH /notifications/{id}/read - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidNotificationID)

		default:
			h.logger.Error("PATCH /notifications/{id}/read - Failed: notification_id=%d, error=%v",
				notificationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /notifications/{id}/read - Marked read: notification_id=%d, user_id=%d",
		notificationID, actor.ID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
