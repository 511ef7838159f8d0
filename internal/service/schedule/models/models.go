package models

import (
	"time"

	"github.com/m04kA/MCN-SessionService/internal/domain"
	"github.com/m04kA/MCN-SessionService/pkg/types"
)

// Request модели

// AddWorkingHourRequest запрос на добавление слота рабочего времени
// Временной дескриптор: ровно одно из dayOfWeek (повторяющийся слот)
// или specificDate (разовый слот)
type AddWorkingHourRequest struct {
	EmployeeID   *int64  `json:"employeeId,omitempty"` // Обязательно для админов
	DayOfWeek    *string `json:"dayOfWeek,omitempty"`
	SpecificDate *string `json:"specificDate,omitempty"` // "2025-10-15"
	StartTime    string  `json:"startTime"`              // "10:00"
	EndTime      string  `json:"endTime"`
}

// Response модели

// WorkingHourResponse ответ с данными слота
type WorkingHourResponse struct {
	ID           int64   `json:"id"`
	EmployeeID   int64   `json:"employeeId"`
	DayOfWeek    *string `json:"dayOfWeek,omitempty"`
	SpecificDate *string `json:"specificDate,omitempty"`
	StartTime    string  `json:"startTime"`
	EndTime      string  `json:"endTime"`
	Status       string  `json:"status"`
}

// WorkingHourListResponse ответ со списком слотов
type WorkingHourListResponse struct {
	WorkingHours []WorkingHourResponse `json:"workingHours"`
	Total        int                   `json:"total"`
}

// Конвертеры

// FromDomainWorkingHour конвертирует domain.WorkingHour в WorkingHourResponse
func FromDomainWorkingHour(slot *domain.WorkingHour) WorkingHourResponse {
	resp := WorkingHourResponse{
		ID:         slot.ID,
		EmployeeID: slot.EmployeeID,
		StartTime:  slot.StartTime.String(),
		EndTime:    slot.EndTime.String(),
		Status:     string(slot.Status),
	}

	if slot.DayOfWeek != nil {
		day := string(*slot.DayOfWeek)
		resp.DayOfWeek = &day
	}
	if slot.SpecificDate != nil {
		date := slot.SpecificDate.Format(domain.DateFormat)
		resp.SpecificDate = &date
	}

	return resp
}

// FromDomainWorkingHourList конвертирует список domain.WorkingHour в WorkingHourListResponse
func FromDomainWorkingHourList(slots []*domain.WorkingHour) *WorkingHourListResponse {
	hours := make([]WorkingHourResponse, 0, len(slots))
	for _, slot := range slots {
		hours = append(hours, FromDomainWorkingHour(slot))
	}

	return &WorkingHourListResponse{
		WorkingHours: hours,
		Total:        len(hours),
	}
}

// ToDomainWorkingHour конвертирует запрос в domain.WorkingHour
// Валидация временного дескриптора выполняется сервисом до конвертации
func (r *AddWorkingHourRequest) ToDomainWorkingHour(employeeID int64) (*domain.WorkingHour, error) {
	slot := &domain.WorkingHour{
		EmployeeID: employeeID,
	}

	if r.DayOfWeek != nil {
		day, ok := domain.ParseWeekday(*r.DayOfWeek)
		if !ok {
			return nil, domain.ErrNoTemporalDescriptor
		}
		slot.DayOfWeek = &day
	}

	if r.SpecificDate != nil {
		date, err := time.Parse(domain.DateFormat, *r.SpecificDate)
		if err != nil {
			return nil, err
		}
		slot.SpecificDate = &date
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}
	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}
	slot.StartTime = startTime
	slot.EndTime = endTime

	return slot, nil
}
