package domain

import "time"

// SessionStatus статус сессии (записи клиента на приём)
type SessionStatus string

const (
	StatusPendingConfirmation SessionStatus = "pending_confirmation"
	StatusBooked              SessionStatus = "booked"
	StatusInProgress          SessionStatus = "in_progress"
	StatusCompleted           SessionStatus = "completed"
	StatusCanceled            SessionStatus = "canceled"
)

// Session запись клиента на слот рабочего времени сотрудника
// Привязки к слоту, клиенту и направлению неизменяемы после создания -
// меняются только статус, комментарии и updated_at
type Session struct {
	ID            int64
	UserID        int64
	WorkingHourID int64
	DistrictID    int64
	DirectionID   int64
	Status        SessionStatus
	Comments      *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsTerminal возвращает true для конечных статусов
// Из конечного статуса переходы запрещены
func (s *Session) IsTerminal() bool {
	return s.Status.IsTerminal()
}

// HoldsSlot возвращает true, если сессия удерживает слот занятым
func (s *Session) HoldsSlot() bool {
	return s.Status == StatusPendingConfirmation ||
		s.Status == StatusBooked ||
		s.Status == StatusInProgress
}

// IsTerminal возвращает true для конечных статусов
func (s SessionStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCanceled
}

// HoldingStatuses статусы, при которых сессия удерживает слот
// Инвариант: слот в статусе booked <=> ровно одна сессия
// в одном из этих статусов ссылается на него
var HoldingStatuses = []SessionStatus{
	StatusPendingConfirmation,
	StatusBooked,
	StatusInProgress,
}

// TerminalStatuses конечные статусы сессии
var TerminalStatuses = []SessionStatus{
	StatusCompleted,
	StatusCanceled,
}

// SessionView сессия, обогащённая данными слота и справочников
// для выдачи клиенту (read-model, собирается join'ом на чтении)
type SessionView struct {
	SessionID     int64
	Status        SessionStatus
	Comments      *string
	SpecificDate  *time.Time
	DayOfWeek     *Weekday
	StartTime     string
	EndTime       string
	EmployeeName  string
	DistrictName  string
	DirectionName string
}
