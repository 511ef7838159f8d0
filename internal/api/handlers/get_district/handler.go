package get_district

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/MCN-SessionService/internal/api/handlers"
	"github.com/m04kA/MCN-SessionService/internal/service/catalog"
)

const (
	msgInvalidDistrictID = "некорректный идентификатор отделения"
	msgDistrictNotFound  = "отделение не найдено"
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

// Handle GET /api/v1/districts/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	districtID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || districtID <= 0 {
		h.logger.Warn("GET /districts/{id} - Invalid district id: %v", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidDistrictID)
		return
	}

	result, err := h.service.GetDistrict(r.Context(), districtID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrDistrictNotFound):
			h.logger.Warn("GET /districts/{id} - District not found: district_id=%d", districtID)
			handlers.RespondNotFound(w, msgDistrictNotFound)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("GET /districts/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDistrictID)

		default:
			h.logger.Error("GET /districts/{id} - Failed: district_id=%d, error=%v", districtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /districts/{id} - Fetched district id=%d", districtID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
