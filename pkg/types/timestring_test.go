package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("18:30")
	require.NoError(t, err)
	assert.Equal(t, "18:30", ts.String())

	for _, invalid := range []string{"25:00", "18:60", "1830", "", "ab:cd"} {
		_, err := NewTimeStringFromString(invalid)
		assert.ErrorIs(t, err, ErrInvalidTimeString, "input %q", invalid)
	}
}

func TestMinutesRoundTrip(t *testing.T) {
	ts := TimeString("18:30")

	minutes, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 18*60+30, minutes)
	assert.Equal(t, ts, FromMinutes(minutes))
}

func TestFromMinutes_PastMidnight(t *testing.T) {
	// Конец интервала может выходить за полночь
	assert.Equal(t, TimeString("24:00"), FromMinutes(24*60))
}

func TestAddMinutes(t *testing.T) {
	ts := TimeString("22:30")

	shifted, err := ts.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("24:00"), shifted)
}

func TestIsBeforeIsAfter(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("10:30").IsAfter("10:00"))
}
