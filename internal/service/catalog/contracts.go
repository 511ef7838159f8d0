package catalog

import (
	"context"

	"github.com/m04kA/MCN-SessionService/internal/domain"
)

// CatalogRepository интерфейс справочника услуг
type CatalogRepository interface {
	ListDirections(ctx context.Context, categoryID *int64) ([]*domain.Direction, error)
	GetDistrict(ctx context.Context, id int64) (*domain.District, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
