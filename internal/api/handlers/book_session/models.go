package book_session

import (
	"time"

	"github.com/m04kA/MCN-SessionService/internal/domain"
	bookSession "github.com/m04kA/MCN-SessionService/internal/usecase/book_session"
)

// BookSessionRequest HTTP request model
type BookSessionRequest struct {
	ClientID      *int64 `json:"clientId,omitempty"` // Только для админов: запись другого клиента
	WorkingHourID int64  `json:"workingHoursId"`
	DistrictID    int64  `json:"districtId"`
	DirectionID   int64  `json:"directionId"`
}

// SessionResponse HTTP response model
type SessionResponse struct {
	ID            int64  `json:"id"`
	UserID        int64  `json:"userId"`
	WorkingHourID int64  `json:"workingHoursId"`
	DistrictID    int64  `json:"districtId"`
	DirectionID   int64  `json:"directionId"`
	Status        string `json:"status"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BookSessionRequest) ToUseCaseRequest(actor domain.Actor) *bookSession.Request {
	return &bookSession.Request{
		Actor:         actor,
		ClientID:      r.ClientID,
		WorkingHourID: r.WorkingHourID,
		DistrictID:    r.DistrictID,
		DirectionID:   r.DirectionID,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *bookSession.Response) *SessionResponse {
	return &SessionResponse{
		ID:            resp.ID,
		UserID:        resp.UserID,
		WorkingHourID: resp.WorkingHourID,
		DistrictID:    resp.DistrictID,
		DirectionID:   resp.DirectionID,
		Status:        resp.Status,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
