package sessions

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/MCN-SessionService/internal/domain"
	sessionRepo "github.com/m04kA/MCN-SessionService/internal/infra/storage/session"
	slotRepo "github.com/m04kA/MCN-SessionService/internal/infra/storage/workinghours"
	"github.com/m04kA/MCN-SessionService/internal/policy"
	"github.com/m04kA/MCN-SessionService/internal/service/sessions/models"
)

// Service сервис жизненного цикла сессий
type Service struct {
	sessionRepo  SessionRepository
	slotRepo     SlotRepository
	emitter      EventEmitter
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса сессий
func NewService(
	sessionRepo SessionRepository,
	slotRepo SlotRepository,
	emitter EventEmitter,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		sessionRepo:  sessionRepo,
		slotRepo:     slotRepo,
		emitter:      emitter,
		txManager:    txManager,
		timeProvider: RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени, используется в тестах
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// Complete завершает сессию
// Статус -> completed, слот освобождается в той же транзакции
func (s *Service) Complete(ctx context.Context, actor domain.Actor, sessionID int64, comments *string) (*models.SessionResponse, error) {
	s.logger.Info("Complete: actor=%d role=%s completing session id=%d", actor.ID, actor.Role, sessionID)

	return s.transition(ctx, actor, sessionID, domain.StatusCompleted, comments, policy.OpComplete)
}

// Cancel отменяет сессию
// Не-админы подчиняются правилу окна отмены: меньше суток до начала слота - отказ
func (s *Service) Cancel(ctx context.Context, actor domain.Actor, sessionID int64, comments *string) (*models.SessionResponse, error) {
	s.logger.Info("Cancel: actor=%d role=%s cancelling session id=%d", actor.ID, actor.Role, sessionID)

	return s.transition(ctx, actor, sessionID, domain.StatusCanceled, comments, policy.OpCancel)
}

// ChangeStatus переводит сессию в произвольный статус из enum
// Доступно сотруднику своего слота и админам; освобождение слота
// происходит только при входе в терминальный статус
func (s *Service) ChangeStatus(ctx context.Context, actor domain.Actor, sessionID int64, req *models.ChangeStatusRequest) (*models.SessionResponse, error) {
	s.logger.Info("ChangeStatus: actor=%d role=%s changing session id=%d to status=%s",
		actor.ID, actor.Role, sessionID, req.Status)

	// Клиентам операция недоступна независимо от владения сессией
	if !actor.IsAdmin() && !actor.IsEmployee() {
		s.logger.Warn("ChangeStatus: actor=%d role=%s is not allowed", actor.ID, actor.Role)
		return nil, ErrAccessDenied
	}

	newStatus, err := models.ToDomainSessionStatus(req.Status)
	if err != nil {
		s.logger.Warn("ChangeStatus: invalid status=%s for session id=%d", req.Status, sessionID)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	return s.transition(ctx, actor, sessionID, newStatus, req.Comments, policy.OpChangeStatus)
}

// GetForUser получает сессии клиента с данными слота, сотрудника,
// отделения и направления
// Клиент видит только свои сессии, админы - любого клиента
func (s *Service) GetForUser(ctx context.Context, actor domain.Actor, userID int64) (*models.SessionListResponse, error) {
	s.logger.Info("GetForUser: actor=%d fetching sessions for user=%d", actor.ID, userID)

	if !actor.IsAdmin() && actor.ID != userID {
		s.logger.Warn("GetForUser: actor=%d denied access to sessions of user=%d", actor.ID, userID)
		return nil, ErrAccessDenied
	}

	views, err := s.sessionRepo.ListViewsByUser(ctx, userID)
	if err != nil {
		s.logger.Error("GetForUser: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetForUser - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetForUser: successfully fetched %d sessions for user=%d", len(views), userID)
	return models.FromDomainSessionViewList(views), nil
}

// GetByID получает сессию по ID
// Клиент видит только свою сессию, сотрудник - сессию своего слота
func (s *Service) GetByID(ctx context.Context, actor domain.Actor, sessionID int64) (*models.SessionResponse, error) {
	s.logger.Info("GetByID: actor=%d fetching session id=%d", actor.ID, sessionID)

	sess, slot, err := s.sessionRepo.GetWithSlot(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			s.logger.Warn("GetByID: session id=%d not found", sessionID)
			return nil, ErrSessionNotFound
		}
		s.logger.Error("GetByID: repository error for session id=%d: %v", sessionID, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !actor.IsAdmin() && sess.UserID != actor.ID && slot.EmployeeID != actor.ID {
		s.logger.Warn("GetByID: actor=%d denied access to session id=%d", actor.ID, sessionID)
		return nil, ErrAccessDenied
	}

	return models.FromDomainSession(sess), nil
}

// transition выполняет переход статуса сессии единой транзакцией:
// блокирующая выборка сессии со слотом, проверка терминальности и прав,
// обновление статуса и, при входе в терминальный статус, освобождение слота
func (s *Service) transition(
	ctx context.Context,
	actor domain.Actor,
	sessionID int64,
	newStatus domain.SessionStatus,
	comments *string,
	op policy.Operation,
) (*models.SessionResponse, error) {
	var updated *domain.Session

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// 1. Сессия и слот читаются с блокировкой FOR UPDATE
		sess, slot, err := s.sessionRepo.GetWithSlot(txCtx, sessionID)
		if err != nil {
			if errors.Is(err, sessionRepo.ErrSessionNotFound) {
				s.logger.Warn("transition: session id=%d not found", sessionID)
				return ErrSessionNotFound
			}
			s.logger.Error("transition: failed to get session id=%d: %v", sessionID, err)
			return fmt.Errorf("%w: transition - failed to get session: %v", ErrInternal, err)
		}

		// 2. Терминальные статусы неизменяемы
		if sess.IsTerminal() {
			s.logger.Warn("transition: session id=%d already finalized, status=%s", sessionID, sess.Status)
			return ErrInvalidTransition
		}

		// 3. Проверка прав на операцию
		if !policy.CanModify(actor, sess, slot.EmployeeID, op) {
			s.logger.Warn("transition: actor=%d role=%s denied %s on session id=%d",
				actor.ID, actor.Role, op, sessionID)
			return ErrAccessDenied
		}

		// 4. Правило окна отмены для не-админов
		if op == policy.OpCancel || (op == policy.OpChangeStatus && newStatus == domain.StatusCanceled) {
			slotStart, err := slot.StartAt(s.timeProvider.Now())
			if err != nil {
				s.logger.Error("transition: failed to resolve start of slot id=%d: %v", slot.ID, err)
				return fmt.Errorf("%w: transition - failed to resolve slot start: %v", ErrInternal, err)
			}
			if !policy.CanCancelNow(actor, slotStart, s.timeProvider.Now()) {
				s.logger.Warn("transition: cancellation window closed for session id=%d, slot starts at %s",
					sessionID, slotStart)
				return ErrWindowClosed
			}
		}

		// 5. Обновляем статус сессии
		if err := s.sessionRepo.UpdateStatus(txCtx, sessionID, newStatus, comments); err != nil {
			if errors.Is(err, sessionRepo.ErrSessionNotFound) {
				return ErrSessionNotFound
			}
			s.logger.Error("transition: failed to update session id=%d: %v", sessionID, err)
			return fmt.Errorf("%w: transition - failed to update session: %v", ErrInternal, err)
		}

		// 6. Слот освобождается только при входе в терминальный статус,
		// промежуточные переходы (in_progress и т.п.) слот не трогают
		if newStatus.IsTerminal() && sess.HoldsSlot() {
			if err := s.slotRepo.Release(txCtx, sess.WorkingHourID); err != nil {
				if !errors.Is(err, slotRepo.ErrSlotNotFound) {
					s.logger.Error("transition: failed to release slot id=%d: %v", sess.WorkingHourID, err)
					return fmt.Errorf("%w: transition - failed to release slot: %v", ErrInternal, err)
				}
				// Слот удалён после финализации - нечего освобождать
				s.logger.Warn("transition: slot id=%d not found during release", sess.WorkingHourID)
			}
		}

		sess.Status = newStatus
		if comments != nil {
			sess.Comments = comments
		}
		updated = sess
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("transition: session id=%d moved to status=%s by actor=%d", sessionID, newStatus, actor.ID)

	// Событие публикуется после коммита; его судьба не влияет на результат
	s.emitter.SessionStatusChanged(ctx, updated, newStatus)

	return models.FromDomainSession(updated), nil
}
