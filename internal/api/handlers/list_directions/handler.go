package list_directions

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/MCN-SessionService/internal/api/handlers"
	"github.com/m04kA/MCN-SessionService/internal/service/catalog"
)

const (
	msgInvalidCategoryID = "некорректный идентификатор категории"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/directions?categoryId=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var categoryID *int64
	if raw := r.URL.Query().Get("categoryId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			h.logger.Warn("GET /directions - Invalid category id: %v", raw)
			handlers.RespondBadRequest(w, msgInvalidCategoryID)
			return
		}
		categoryID = &id
	}

	result, err := h.service.ListDirections(r.Context(), categoryID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("GET /directions - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCategoryID)

		default:
			h.logger.Error("GET /directions - Failed: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /directions - Fetched %d directions", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
