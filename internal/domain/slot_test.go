package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MCN-SessionService/pkg/types"
)

func weekdayPtr(d Weekday) *Weekday {
	return &d
}

func TestWorkingHour_StartAt_SpecificDate(t *testing.T) {
	date := time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)
	slot := &WorkingHour{
		SpecificDate: &date,
		StartTime:    types.TimeString("14:30"),
	}

	now := time.Date(2025, 10, 14, 10, 0, 0, 0, time.UTC)
	start, err := slot.StartAt(now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 10, 20, 14, 30, 0, 0, time.UTC), start)
}

func TestWorkingHour_StartAt_RecurringWeekday(t *testing.T) {
	// 14 октября 2025 - вторник
	now := time.Date(2025, 10, 14, 10, 0, 0, 0, time.UTC)

	t.Run("сегодняшний день, время ещё не наступило", func(t *testing.T) {
		slot := &WorkingHour{
			DayOfWeek: weekdayPtr(Tuesday),
			StartTime: types.TimeString("15:00"),
		}

		start, err := slot.StartAt(now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 10, 14, 15, 0, 0, 0, time.UTC), start)
	})

	t.Run("сегодняшний день, время уже прошло - следующая неделя", func(t *testing.T) {
		slot := &WorkingHour{
			DayOfWeek: weekdayPtr(Tuesday),
			StartTime: types.TimeString("09:00"),
		}

		start, err := slot.StartAt(now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 10, 21, 9, 0, 0, 0, time.UTC), start)
	})

	t.Run("день позже на этой неделе", func(t *testing.T) {
		slot := &WorkingHour{
			DayOfWeek: weekdayPtr(Friday),
			StartTime: types.TimeString("09:00"),
		}

		start, err := slot.StartAt(now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 10, 17, 9, 0, 0, 0, time.UTC), start)
	})

	t.Run("день уже прошёл на этой неделе", func(t *testing.T) {
		slot := &WorkingHour{
			DayOfWeek: weekdayPtr(Monday),
			StartTime: types.TimeString("09:00"),
		}

		start, err := slot.StartAt(now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 10, 20, 9, 0, 0, 0, time.UTC), start)
	})
}

func TestWorkingHour_StartAt_NoDescriptor(t *testing.T) {
	slot := &WorkingHour{StartTime: types.TimeString("09:00")}

	_, err := slot.StartAt(time.Now())
	assert.ErrorIs(t, err, ErrNoTemporalDescriptor)
}

func TestSessionStatus_Terminal(t *testing.T) {
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCanceled.IsTerminal())
	assert.False(t, StatusBooked.IsTerminal())
	assert.False(t, StatusPendingConfirmation.IsTerminal())
	assert.False(t, StatusInProgress.IsTerminal())
}

func TestSession_HoldsSlot(t *testing.T) {
	for _, status := range HoldingStatuses {
		sess := &Session{Status: status}
		assert.True(t, sess.HoldsSlot(), "status %s", status)
	}
	for _, status := range TerminalStatuses {
		sess := &Session{Status: status}
		assert.False(t, sess.HoldsSlot(), "status %s", status)
	}
}

func TestParseWeekday(t *testing.T) {
	day, ok := ParseWeekday("Monday")
	assert.True(t, ok)
	assert.Equal(t, Monday, day)

	_, ok = ParseWeekday("monday")
	assert.False(t, ok)

	_, ok = ParseWeekday("")
	assert.False(t, ok)
}
