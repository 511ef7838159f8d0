package types

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidTimeString возвращается при некорректном формате времени
var ErrInvalidTimeString = errors.New("invalid time string format")

// TimeString время в формате "HH:MM" (локальное время отделения)
// Хранится как строка, чтобы соответствовать колонке time в Postgres
// и формату, в котором расписание задают сотрудники
type TimeString string

// NewTimeString создает TimeString из time.Time
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString создает TimeString из строки с валидацией
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// String возвращает строковое представление времени
func (t TimeString) String() string {
	return string(t)
}

// IsZero проверяет, что время не задано
func (t TimeString) IsZero() bool {
	return string(t) == ""
}

// Validate проверяет формат HH:MM
func (t TimeString) Validate() error {
	s := string(t)
	// Postgres может вернуть time как "HH:MM:SS" - отбрасываем секунды
	if len(s) == 8 {
		s = s[:5]
	}
	if _, err := time.Parse("15:04", s); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// Normalize отбрасывает секунды, если время пришло из БД как "HH:MM:SS"
func (t TimeString) Normalize() TimeString {
	s := string(t)
	if len(s) >= 5 && strings.Count(s, ":") == 2 {
		return TimeString(s[:5])
	}
	return t
}

// Hour возвращает часы
func (t TimeString) Hour() (int, error) {
	parsed, err := t.parse()
	if err != nil {
		return 0, err
	}
	return parsed.Hour(), nil
}

// Minute возвращает минуты
func (t TimeString) Minute() (int, error) {
	parsed, err := t.parse()
	if err != nil {
		return 0, err
	}
	return parsed.Minute(), nil
}

// AddMinutes возвращает время, сдвинутое на minutes минут вперед
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	parsed, err := t.parse()
	if err != nil {
		return "", err
	}
	return NewTimeString(parsed.Add(time.Duration(minutes) * time.Minute)), nil
}

// IsBefore проверяет, что время раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t.Normalize()) < string(other.Normalize())
}

// IsAfter проверяет, что время позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t.Normalize()) > string(other.Normalize())
}

// At накладывает время на дату, возвращая наивный локальный момент
// Используется для вычисления фактического начала слота
func (t TimeString) At(date time.Time) (time.Time, error) {
	parsed, err := t.parse()
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0,
		date.Location(),
	), nil
}

func (t TimeString) parse() (time.Time, error) {
	s := string(t.Normalize())
	parsed, err := time.Parse("15:04", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed, nil
}
