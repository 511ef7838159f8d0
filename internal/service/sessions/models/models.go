package models

import (
	"errors"
	"time"

	"github.com/m04kA/MCN-SessionService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid session status")
)

// Request модели

// ChangeStatusRequest запрос на смену статуса сессии
type ChangeStatusRequest struct {
	Status   string  `json:"status"`
	Comments *string `json:"comments,omitempty"`
}

// Response модели

// SessionResponse ответ с данными сессии
type SessionResponse struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"userId"`
	WorkingHourID int64     `json:"workingHoursId"`
	DistrictID    int64     `json:"districtId"`
	DirectionID   int64     `json:"directionId"`
	Status        string    `json:"status"`
	Comments      *string   `json:"comments,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// SessionViewResponse обогащённая запись списка сессий клиента
type SessionViewResponse struct {
	SessionID     int64   `json:"sessionId"`
	Status        string  `json:"status"`
	Comments      *string `json:"comments,omitempty"`
	SpecificDate  *string `json:"specificDate,omitempty"` // "2025-10-15"
	DayOfWeek     *string `json:"dayOfWeek,omitempty"`
	StartTime     string  `json:"startTime"` // "10:00"
	EndTime       string  `json:"endTime"`
	EmployeeName  string  `json:"employeeName"`
	DistrictName  string  `json:"districtName"`
	DirectionName string  `json:"directionName"`
}

// SessionListResponse ответ со списком сессий
type SessionListResponse struct {
	Sessions []SessionViewResponse `json:"sessions"`
	Total    int                   `json:"total"`
}

// Конвертеры

// FromDomainSession конвертирует domain.Session в SessionResponse
func FromDomainSession(sess *domain.Session) *SessionResponse {
	return &SessionResponse{
		ID:            sess.ID,
		UserID:        sess.UserID,
		WorkingHourID: sess.WorkingHourID,
		DistrictID:    sess.DistrictID,
		DirectionID:   sess.DirectionID,
		Status:        string(sess.Status),
		Comments:      sess.Comments,
		CreatedAt:     sess.CreatedAt,
		UpdatedAt:     sess.UpdatedAt,
	}
}

// FromDomainSessionView конвертирует domain.SessionView в SessionViewResponse
func FromDomainSessionView(view *domain.SessionView) SessionViewResponse {
	resp := SessionViewResponse{
		SessionID:     view.SessionID,
		Status:        string(view.Status),
		Comments:      view.Comments,
		StartTime:     view.StartTime,
		EndTime:       view.EndTime,
		EmployeeName:  view.EmployeeName,
		DistrictName:  view.DistrictName,
		DirectionName: view.DirectionName,
	}

	if view.SpecificDate != nil {
		date := view.SpecificDate.Format(domain.DateFormat)
		resp.SpecificDate = &date
	}
	if view.DayOfWeek != nil {
		day := string(*view.DayOfWeek)
		resp.DayOfWeek = &day
	}

	return resp
}

// FromDomainSessionViewList конвертирует список domain.SessionView в SessionListResponse
func FromDomainSessionViewList(views []*domain.SessionView) *SessionListResponse {
	sessions := make([]SessionViewResponse, 0, len(views))
	for _, view := range views {
		sessions = append(sessions, FromDomainSessionView(view))
	}

	return &SessionListResponse{
		Sessions: sessions,
		Total:    len(sessions),
	}
}

// ToDomainSessionStatus конвертирует строку в domain.SessionStatus
func ToDomainSessionStatus(status string) (domain.SessionStatus, error) {
	switch domain.SessionStatus(status) {
	case domain.StatusPendingConfirmation,
		domain.StatusBooked,
		domain.StatusInProgress,
		domain.StatusCompleted,
		domain.StatusCanceled:
		return domain.SessionStatus(status), nil
	default:
		return "", ErrInvalidStatus
	}
}
