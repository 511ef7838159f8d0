package notifications

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/MCN-SessionService/internal/domain"
	notificationRepo "github.com/m04kA/MCN-SessionService/internal/infra/storage/notification"
	"github.com/m04kA/MCN-SessionService/internal/service/notifications/models"
)

// Service сервис уведомлений пользователя
type Service struct {
	notificationRepo NotificationRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса уведомлений
func NewService(notificationRepo NotificationRepository, logger Logger) *Service {
	return &Service{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// ListForUser получает уведомления пользователя, новые первыми
// Каждый видит только свои уведомления: userID берётся из токена
func (s *Service) ListForUser(ctx context.Context, actor domain.Actor) (*models.NotificationListResponse, error) {
	s.logger.Info("ListForUser: fetching notifications for user=%d", actor.ID)

	items, err := s.notificationRepo.ListByUser(ctx, actor.ID)
	if err != nil {
		s.logger.Error("ListForUser: repository error for user=%d: %v", actor.ID, err)
		return nil, fmt.Errorf("%w: ListForUser - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListForUser: successfully fetched %d notifications for user=%d", len(items), actor.ID)
	return models.FromDomainNotificationList(items), nil
}

// MarkRead отмечает уведомление прочитанным
// Чужое уведомление отметить нельзя: выборка идёт по паре (id, user_id)
func (s *Service) MarkRead(ctx context.Context, actor domain.Actor, notificationID int64) error {
	s.logger.Info("MarkRead: user=%d marking notification id=%d as read", actor.ID, notificationID)

	if notificationID <= 0 {
		return fmt.Errorf("%w: notification id must be positive", ErrInvalidInput)
	}

	if err := s.notificationRepo.MarkRead(ctx, notificationID, actor.ID); err != nil {
		if errors.Is(err, notificationRepo.ErrNotificationNotFound) {
			s.logger.Warn("MarkRead: notification id=%d not found for user=%d", notificationID, actor.ID)
			return ErrNotificationNotFound
		}
		s.logger.Error("MarkRead: repository error for notification id=%d: %v", notificationID, err)
		return fmt.Errorf("%w: MarkRead - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("MarkRead: notification id=%d marked as read for user=%d", notificationID, actor.ID)
	return nil
}
