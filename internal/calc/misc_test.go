package calc

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAge(t *testing.T) {
	dob := time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	got := Age(dob, now)
	assert.Equal(t, 36, got.Years)
	assert.Equal(t, 2, got.Months)
	assert.Equal(t, 15, got.Days)
	assert.Greater(t, got.TotalDays, 13000)
	assert.Greater(t, got.NextBirthdayIn, 0)
	assert.LessOrEqual(t, got.NextBirthdayIn, 366)
}

func TestAge_BeforeBirthdayThisYear(t *testing.T) {
	dob := time.Date(2000, 12, 25, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	got := Age(dob, now)
	assert.Equal(t, 25, got.Years)
}

func TestPace(t *testing.T) {
	got, err := Pace(10, 50*time.Minute)
	require.NoError(t, err)
	assert.InDelta(t, 300, got.SecondsPerKm, 0.001)
	assert.InDelta(t, 12, got.KmPerHour, 0.001)
	assert.Equal(t, "5:00 min/km", FormatPace(got.SecondsPerKm))

	_, err = Pace(0, time.Minute)
	require.Error(t, err)
	_, err = Pace(5, 0)
	require.Error(t, err)
}

func TestConcreteSlab(t *testing.T) {
	// 5m x 4m x 10cm plus 10% waste.
	got := ConcreteSlab(5, 4, 0.10, 10)
	assert.InDelta(t, 2.2, got, 0.001)
}

func TestPassword(t *testing.T) {
	pw, err := Password(PasswordOptions{Length: 16, Upper: true, Digits: true, Symbols: true})
	require.NoError(t, err)
	assert.Len(t, pw, 16)

	lowerOnly, err := Password(PasswordOptions{Length: 32})
	require.NoError(t, err)
	assert.Equal(t, strings.ToLower(lowerOnly), lowerOnly)

	_, err = Password(PasswordOptions{Length: 2})
	require.Error(t, err)
	_, err = Password(PasswordOptions{Length: 500})
	require.Error(t, err)
}
