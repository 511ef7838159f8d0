package book_session

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/MCN-SessionService/internal/domain"
	catalogRepo "github.com/m04kA/MCN-SessionService/internal/infra/storage/catalog"
	slotRepo "github.com/m04kA/MCN-SessionService/internal/infra/storage/workinghours"
	"github.com/m04kA/MCN-SessionService/internal/policy"
)

// UseCase use case бронирования сессии
type UseCase struct {
	slots     SlotRepository
	sessions  SessionRepository
	catalog   CatalogRepository
	users     UserRepository
	emitter   EventEmitter
	txManager TransactionManager
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slots SlotRepository,
	sessions SessionRepository,
	catalog CatalogRepository,
	users UserRepository,
	emitter EventEmitter,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		slots:     slots,
		sessions:  sessions,
		catalog:   catalog,
		users:     users,
		emitter:   emitter,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute выполняет бронирование
// Резервирование слота и создание сессии идут в одной транзакции:
// если вставка сессии не удалась, резерв слота откатывается
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookSession: actor=%d role=%s, working_hour=%d, district=%d, direction=%d",
		req.Actor.ID, req.Actor.Role, req.WorkingHourID, req.DistrictID, req.DirectionID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookSession: validation failed: %v", err)
		return nil, err
	}

	// 2. Определяем целевого клиента и проверяем право бронировать для него
	clientID, err := resolveClient(req)
	if err != nil {
		uc.logger.Warn("BookSession: failed to resolve client: %v", err)
		return nil, err
	}
	if !policy.CanBookFor(req.Actor, clientID) {
		uc.logger.Warn("BookSession: actor=%d cannot book for client=%d", req.Actor.ID, clientID)
		return nil, ErrForbidden
	}

	// 3. Проверяем существование направления и его принадлежность отделению
	direction, err := uc.catalog.GetDirection(ctx, req.DirectionID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrDirectionNotFound) {
			uc.logger.Warn("BookSession: direction id=%d not found", req.DirectionID)
			return nil, ErrDirectionNotFound
		}
		uc.logger.Error("BookSession: failed to get direction id=%d: %v", req.DirectionID, err)
		return nil, fmt.Errorf("%w: failed to get direction: %v", ErrInternal, err)
	}

	districtID, err := uc.catalog.ResolveDistrictForDirection(ctx, req.DirectionID)
	if err != nil {
		uc.logger.Error("BookSession: failed to resolve district for direction id=%d: %v", req.DirectionID, err)
		return nil, fmt.Errorf("%w: failed to resolve district: %v", ErrInternal, err)
	}
	if districtID != req.DistrictID {
		uc.logger.Warn("BookSession: direction id=%d belongs to district=%d, requested district=%d",
			req.DirectionID, districtID, req.DistrictID)
		return nil, ErrDirectionMismatch
	}

	// 4. Проверяем существование клиента (актуально для админского бронирования)
	exists, err := uc.users.Exists(ctx, clientID)
	if err != nil {
		uc.logger.Error("BookSession: failed to check client id=%d: %v", clientID, err)
		return nil, fmt.Errorf("%w: failed to check client: %v", ErrInternal, err)
	}
	if !exists {
		uc.logger.Warn("BookSession: client id=%d not found", clientID)
		return nil, ErrClientNotFound
	}

	// 5. Статус новой сессии определяется флагом направления
	newStatus := domain.StatusBooked
	if direction.RequiresConfirmation {
		newStatus = domain.StatusPendingConfirmation
	}

	var result *domain.Session

	// 6. Резерв слота + создание сессии в одной транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Условное обновление available -> booked: из двух гоняющихся
		// транзакций ровно одна проходит, вторая получает конфликт
		if err := uc.slots.TryReserve(txCtx, req.WorkingHourID); err != nil {
			switch {
			case errors.Is(err, slotRepo.ErrSlotNotFound):
				uc.logger.Warn("BookSession: working hour id=%d not found", req.WorkingHourID)
				return ErrSlotNotFound
			case errors.Is(err, slotRepo.ErrSlotAlreadyBooked):
				uc.logger.Warn("BookSession: working hour id=%d already booked", req.WorkingHourID)
				return ErrSlotUnavailable
			default:
				uc.logger.Error("BookSession: failed to reserve working hour id=%d: %v", req.WorkingHourID, err)
				return fmt.Errorf("%w: failed to reserve slot: %v", ErrInternal, err)
			}
		}

		// 6.2. Создаем сессию; при ошибке транзакция откатит резерв слота
		created, err := uc.sessions.Create(txCtx, &domain.Session{
			UserID:        clientID,
			WorkingHourID: req.WorkingHourID,
			DistrictID:    req.DistrictID,
			DirectionID:   req.DirectionID,
			Status:        newStatus,
		})
		if err != nil {
			uc.logger.Error("BookSession: failed to create session: %v", err)
			return fmt.Errorf("%w: failed to create session: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("BookSession: successfully created session id=%d status=%s for client=%d",
		result.ID, result.Status, clientID)

	// 7. Событие публикуется после коммита; его судьба не влияет на результат
	uc.emitter.SessionBooked(ctx, result)

	return &Response{
		ID:            result.ID,
		UserID:        result.UserID,
		WorkingHourID: result.WorkingHourID,
		DistrictID:    result.DistrictID,
		DirectionID:   result.DirectionID,
		Status:        string(result.Status),
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
	}, nil
}
