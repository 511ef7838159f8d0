package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	_, err = NewTimeStringFromString("25:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("9:30")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Normalize(t *testing.T) {
	// Postgres возвращает time как HH:MM:SS
	assert.Equal(t, TimeString("09:30"), TimeString("09:30:00").Normalize())
	assert.Equal(t, TimeString("09:30"), TimeString("09:30").Normalize())
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("09:00"))
	assert.True(t, TimeString("10:00").IsAfter("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))

	// Сравнение работает и с сырым значением из БД
	assert.True(t, TimeString("09:00:00").IsBefore("10:00"))
}

func TestTimeString_At(t *testing.T) {
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

	got, err := TimeString("14:45").At(date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 10, 15, 14, 45, 0, 0, time.UTC), got)

	_, err = TimeString("bad").At(date)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("09:30").AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:15"), got)
}
