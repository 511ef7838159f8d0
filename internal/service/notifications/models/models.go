package models

import (
	"time"

	"github.com/m04kA/MCN-SessionService/internal/domain"
)

// NotificationResponse ответ с данными уведомления
type NotificationResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Message   *string   `json:"message,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

// NotificationListResponse ответ со списком уведомлений
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Total         int                    `json:"total"`
}

// FromDomainNotification конвертирует domain.Notification в NotificationResponse
func FromDomainNotification(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}

// FromDomainNotificationList конвертирует список domain.Notification в NotificationListResponse
func FromDomainNotificationList(items []*domain.Notification) *NotificationListResponse {
	notifications := make([]NotificationResponse, 0, len(items))
	for _, n := range items {
		notifications = append(notifications, FromDomainNotification(n))
	}

	return &NotificationListResponse{
		Notifications: notifications,
		Total:         len(notifications),
	}
}
