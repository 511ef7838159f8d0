package domain

import (
	"errors"
	"time"

	"github.com/m04kA/MCN-SessionService/pkg/types"
)

// SlotStatus статус слота рабочего времени
type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotBooked    SlotStatus = "booked"
)

// Weekday день недели для повторяющихся слотов
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

// ErrNoTemporalDescriptor возвращается, когда у слота не задан
// ни день недели, ни конкретная дата
var ErrNoTemporalDescriptor = errors.New("working hour has neither day_of_week nor specific_date")

// WorkingHour слот рабочего времени сотрудника
// Темпоральный дескриптор - либо повторяющийся день недели,
// либо конкретная дата; времена наивные локальные (по отделению)
type WorkingHour struct {
	ID           int64
	EmployeeID   int64
	DayOfWeek    *Weekday
	SpecificDate *time.Time
	StartTime    types.TimeString
	EndTime      types.TimeString
	Status       SlotStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAvailable возвращает true, если слот свободен
func (w *WorkingHour) IsAvailable() bool {
	return w.Status == SlotAvailable
}

// IsBooked возвращает true, если слот занят
func (w *WorkingHour) IsBooked() bool {
	return w.Status == SlotBooked
}

// StartAt вычисляет ближайший момент начала слота относительно now
// Для слота с конкретной датой - это её дата и start_time;
// для повторяющегося - ближайшее наступление дня недели
// (сегодняшний день подходит, если время начала ещё не прошло)
// Сравнения ведутся в наивном локальном времени отделения
func (w *WorkingHour) StartAt(now time.Time) (time.Time, error) {
	if w.SpecificDate != nil {
		return w.StartTime.At(*w.SpecificDate)
	}

	if w.DayOfWeek == nil {
		return time.Time{}, ErrNoTemporalDescriptor
	}

	target := w.DayOfWeek.Time()
	date := now
	for i := 0; i < 7; i++ {
		if date.Weekday() == target {
			start, err := w.StartTime.At(date)
			if err != nil {
				return time.Time{}, err
			}
			if i > 0 || !start.Before(now) {
				return start, nil
			}
		}
		date = date.AddDate(0, 0, 1)
	}

	// Сегодняшний день недели, но время начала уже прошло - следующая неделя
	return w.StartTime.At(now.AddDate(0, 0, 7))
}

// Time конвертирует Weekday в time.Weekday
func (d Weekday) Time() time.Weekday {
	switch d {
	case Monday:
		return time.Monday
	case Tuesday:
		return time.Tuesday
	case Wednesday:
		return time.Wednesday
	case Thursday:
		return time.Thursday
	case Friday:
		return time.Friday
	case Saturday:
		return time.Saturday
	default:
		return time.Sunday
	}
}

// ParseWeekday валидирует и конвертирует строку в Weekday
func ParseWeekday(s string) (Weekday, bool) {
	switch Weekday(s) {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return Weekday(s), true
	default:
		return "", false
	}
}
