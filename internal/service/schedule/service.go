package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/MCN-SessionService/internal/domain"
	slotRepo "github.com/m04kA/MCN-SessionService/internal/infra/storage/workinghours"
	"github.com/m04kA/MCN-SessionService/internal/service/schedule/models"
	"github.com/m04kA/MCN-SessionService/pkg/types"
)

// Service сервис управления расписанием сотрудников
type Service struct {
	slotRepo SlotRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(slotRepo SlotRepository, logger Logger) *Service {
	return &Service{
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// Add добавляет слот рабочего времени
// Сотрудник добавляет слоты только себе, админ - любому сотруднику
func (s *Service) Add(ctx context.Context, actor domain.Actor, req *models.AddWorkingHourRequest) (*models.WorkingHourResponse, error) {
	s.logger.Info("Add: actor=%d role=%s adding working hour", actor.ID, actor.Role)

	employeeID, err := s.resolveEmployee(actor, req.EmployeeID)
	if err != nil {
		return nil, err
	}

	if err := validateAddRequest(req); err != nil {
		s.logger.Warn("Add: validation failed for employee=%d: %v", employeeID, err)
		return nil, err
	}

	slot, err := req.ToDomainWorkingHour(employeeID)
	if err != nil {
		s.logger.Warn("Add: failed to convert request for employee=%d: %v", employeeID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.slotRepo.Create(ctx, slot)
	if err != nil {
		s.logger.Error("Add: failed to create working hour for employee=%d: %v", employeeID, err)
		return nil, fmt.Errorf("%w: Add - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Add: successfully created working hour id=%d for employee=%d", created.ID, employeeID)
	resp := models.FromDomainWorkingHour(created)
	return &resp, nil
}

// List получает расписание сотрудника
// Доступно любому аутентифицированному пользователю: клиенты выбирают
// свободный слот из этого списка
func (s *Service) List(ctx context.Context, employeeID int64) (*models.WorkingHourListResponse, error) {
	s.logger.Info("List: fetching schedule of employee=%d", employeeID)

	if employeeID <= 0 {
		return nil, fmt.Errorf("%w: employee id must be positive", ErrInvalidInput)
	}

	slots, err := s.slotRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		s.logger.Error("List: repository error for employee=%d: %v", employeeID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d working hours for employee=%d", len(slots), employeeID)
	return models.FromDomainWorkingHourList(slots), nil
}

// Delete удаляет слот рабочего времени
// Сотрудник удаляет только свои слоты, админ - любые
// Слот, удерживаемый незавершённой сессией, удалить нельзя
func (s *Service) Delete(ctx context.Context, actor domain.Actor, slotID int64) error {
	s.logger.Info("Delete: actor=%d role=%s deleting working hour id=%d", actor.ID, actor.Role, slotID)

	slot, err := s.slotRepo.GetByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("Delete: working hour id=%d not found", slotID)
			return ErrSlotNotFound
		}
		s.logger.Error("Delete: failed to get working hour id=%d: %v", slotID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if !actor.IsAdmin() && slot.EmployeeID != actor.ID {
		s.logger.Warn("Delete: actor=%d denied deleting working hour id=%d of employee=%d",
			actor.ID, slotID, slot.EmployeeID)
		return ErrAccessDenied
	}

	if err := s.slotRepo.Delete(ctx, slotID, slot.EmployeeID); err != nil {
		switch {
		case errors.Is(err, slotRepo.ErrSlotNotFound):
			s.logger.Warn("Delete: working hour id=%d not found during delete", slotID)
			return ErrSlotNotFound
		case errors.Is(err, slotRepo.ErrSlotReferenced):
			s.logger.Warn("Delete: working hour id=%d is referenced by an active session", slotID)
			return ErrSlotReferenced
		default:
			s.logger.Error("Delete: failed to delete working hour id=%d: %v", slotID, err)
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Delete: successfully deleted working hour id=%d", slotID)
	return nil
}

// resolveEmployee возвращает id сотрудника, которому добавляется слот
func (s *Service) resolveEmployee(actor domain.Actor, employeeID *int64) (int64, error) {
	if actor.IsAdmin() {
		if employeeID == nil || *employeeID <= 0 {
			return 0, fmt.Errorf("%w: employee id is required for admin", ErrInvalidInput)
		}
		return *employeeID, nil
	}

	if !actor.IsEmployee() {
		s.logger.Warn("resolveEmployee: actor=%d role=%s cannot manage schedule", actor.ID, actor.Role)
		return 0, ErrAccessDenied
	}

	if employeeID != nil && *employeeID != actor.ID {
		s.logger.Warn("resolveEmployee: employee=%d cannot manage schedule of employee=%d", actor.ID, *employeeID)
		return 0, ErrAccessDenied
	}

	return actor.ID, nil
}

// validateAddRequest проверяет корректность запроса на добавление слота
// Требуется ровно один временной дескриптор и start < end
func validateAddRequest(req *models.AddWorkingHourRequest) error {
	hasDay := req.DayOfWeek != nil
	hasDate := req.SpecificDate != nil

	if hasDay == hasDate {
		return fmt.Errorf("%w: exactly one of day_of_week or specific_date is required", ErrInvalidInput)
	}

	if hasDay {
		if _, ok := domain.ParseWeekday(*req.DayOfWeek); !ok {
			return fmt.Errorf("%w: unknown day_of_week %q", ErrInvalidInput, *req.DayOfWeek)
		}
	}

	start, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return fmt.Errorf("%w: invalid start_time: %v", ErrInvalidInput, err)
	}
	end, err := types.NewTimeStringFromString(req.EndTime)
	if err != nil {
		return fmt.Errorf("%w: invalid end_time: %v", ErrInvalidInput, err)
	}

	if !start.IsBefore(end) {
		return fmt.Errorf("%w: start_time must be before end_time", ErrInvalidInput)
	}

	return nil
}
