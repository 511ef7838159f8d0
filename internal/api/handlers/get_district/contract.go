package get_district

import (
	"context"

	"github.com/m04kA/MCN-SessionService/internal/service/catalog/models"
)

type CatalogService interface {
	GetDistrict(ctx context.Context, id int64) (*models.DistrictResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
