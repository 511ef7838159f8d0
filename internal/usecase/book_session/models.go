package book_session

import (
	"time"

	"github.com/m04kA/MCN-SessionService/internal/domain"
)

// Request модель запроса на бронирование
type Request struct {
	Actor         domain.Actor // Авторизационный контекст запроса
	ClientID      *int64       // Целевой клиент: обязателен для админов, игнорируется для клиентов
	WorkingHourID int64        // ID слота рабочего времени
	DistrictID    int64        // ID отделения
	DirectionID   int64        // ID направления (услуги)
}

// Response модель ответа с созданной сессией
type Response struct {
	ID            int64
	UserID        int64
	WorkingHourID int64
	DistrictID    int64
	DirectionID   int64
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
