package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAndFormatDate(t *testing.T) {
	d, err := ParseDate("2025-07-20")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 7, 20, 0, 0, 0, 0, time.UTC), d)
	assert.Equal(t, "2025-07-20", FormatDate(d))

	_, err = ParseDate("07/20/2025")
	assert.Error(t, err)

	assert.Equal(t, "", FormatDate(time.Time{}))
}

func TestTripNights(t *testing.T) {
	checkin, _ := ParseDate("2025-07-20")
	checkout, _ := ParseDate("2025-07-23")
	assert.Equal(t, 3, TripNights(checkin, checkout))
	assert.Equal(t, 0, TripNights(checkin, checkin))
}
