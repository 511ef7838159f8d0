package list_directions

import (
	"context"

	"github.com/m04kA/MCN-SessionService/internal/service/catalog/models"
)

type CatalogService interface {
	ListDirections(ctx context.Context, categoryID *int64) (*models.DirectionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
