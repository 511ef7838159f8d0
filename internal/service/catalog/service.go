package catalog

import (
	"context"
	"errors"
	"fmt"

	catalogRepo "github.com/m04kA/MCN-SessionService/internal/infra/storage/catalog"
	"github.com/m04kA/MCN-SessionService/internal/service/catalog/models"
)

// Service сервис чтения справочника услуг
// Управление справочником живёт в отдельном административном сервисе,
// здесь только чтение для выбора направления при записи
type Service struct {
	catalogRepo CatalogRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса справочника
func NewService(catalogRepo CatalogRepository, logger Logger) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// ListDirections получает направления, опционально по категории
func (s *Service) ListDirections(ctx context.Context, categoryID *int64) (*models.DirectionListResponse, error) {
	s.logger.Info("ListDirections: fetching directions, category=%v", categoryID)

	if categoryID != nil && *categoryID <= 0 {
		return nil, fmt.Errorf("%w: category id must be positive", ErrInvalidInput)
	}

	dirs, err := s.catalogRepo.ListDirections(ctx, categoryID)
	if err != nil {
		s.logger.Error("ListDirections: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListDirections - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListDirections: successfully fetched %d directions", len(dirs))
	return models.FromDomainDirectionList(dirs), nil
}

// GetDistrict получает отделение по ID
func (s *Service) GetDistrict(ctx context.Context, id int64) (*models.DistrictResponse, error) {
	s.logger.Info("GetDistrict: fetching district id=%d", id)

	if id <= 0 {
		return nil, fmt.Errorf("%w: district id must be positive", ErrInvalidInput)
	}

	district, err := s.catalogRepo.GetDistrict(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrDistrictNotFound) {
			s.logger.Warn("GetDistrict: district id=%d not found", id)
			return nil, ErrDistrictNotFound
		}
		s.logger.Error("GetDistrict: repository error for district id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetDistrict - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainDistrict(district), nil
}
