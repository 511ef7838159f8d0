package book_session

import (
	"errors"
	"net/http"

	"github.com/m04kA/MCN-SessionService/internal/api/handlers"
	"github.com/m04kA/MCN-SessionService/internal/api/middleware"
	bookSession "github.com/m04kA/MCN-SessionService/internal/usecase/book_session"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgSlotNotFound       = "слот рабочего времени не найден"
	msgSlotUnavailable    = "выбранный слот уже занят"
	msgDirectionNotFound  = "направление не найдено"
	msgDirectionMismatch  = "направление не относится к выбранному отделению"
	msgClientNotFound     = "клиент не найден"
	msgForbidden          = "недостаточно прав для записи"
	msgInvalidInput       = "некорректные параметры записи"
)

type Handler struct {
	useCase BookSessionUseCase
	logger  Logger
}

func NewHandler(useCase BookSessionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgForbidden)
		return
	}

	var req BookSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(actor))
	if err != nil {
		switch {
		case errors.Is(err, bookSession.ErrSlotNotFound):
			h.logger.Warn("POST /sessions - Slot not found: working_hours_id=%d", req.WorkingHourID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, bookSession.ErrSlotUnavailable):
			h.logger.Warn("POST /sessions - Slot unavailable: working_hours_id=%d", req.WorkingHourID)
			handlers.RespondError(w, http.StatusConflict, msgSlotUnavailable)

		case errors.Is(err, bookSession.ErrDirectionNotFound):
			h.logger.Warn("POST /sessions - Direction not found: direction_id=%d", req.DirectionID)
			handlers.RespondNotFound(w, msgDirectionNotFound)

		case errors.Is(err, bookSession.ErrDirectionMismatch):
			h.logger.Warn("POST /sessions - Direction mismatch: direction_id=%d, district_id=%d",
				req.DirectionID, req.DistrictID)
			handlers.RespondBadRequest(w, msgDirectionMismatch)

		case errors.Is(err, bookSession.ErrClientNotFound):
			h.logger.Warn("POST /sessions - Client not found: actor=%d", actor.ID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, bookSession.ErrForbidden):
			h.logger.Warn("POST /sessions - Forbidden: actor=%d role=%s", actor.ID, actor.Role)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookSession.ErrInvalidInput):
			h.logger.Warn("POST /sessions - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /sessions - Failed to book session: actor=%d, error=%v", actor.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions - Session booked successfully: session_id=%d, actor=%d", result.ID, actor.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
