package workflow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPatchApply_OverwritesOnlySetFields(t *testing.T) {
	start := time.Date(2025, 7, 20, 0, 0, 0, 0, time.UTC)
	s := State{
		Location:      "paris",
		StartDate:     start,
		LoopCount:     0,
		WeatherStatus: WeatherRainy,
	}

	newStart := start.AddDate(0, 0, 3)
	loop := 1
	next := Patch{StartDate: &newStart, LoopCount: &loop}.Apply(s)

	assert.Equal(t, newStart, next.StartDate)
	assert.Equal(t, 1, next.LoopCount)
	assert.Equal(t, "paris", next.Location)
	assert.Equal(t, WeatherRainy, next.WeatherStatus)

	// The prior state is untouched.
	assert.Equal(t, start, s.StartDate)
	assert.Equal(t, 0, s.LoopCount)
}

func TestPatchApply_EmptyPatchIsIdentity(t *testing.T) {
	fees := []float64{10, 25.5}
	total := 235.5
	s := State{
		Location:     "rome",
		EntranceFees: fees,
		HotelInfo:    &HotelInfo{Name: "Hotel Roma", TotalCost: 200},
		TotalCost:    &total,
	}

	next := Patch{}.Apply(s)
	assert.Equal(t, s, next)
}

func TestPatchApply_LaterWritesWin(t *testing.T) {
	clear := WeatherClear
	rainy := WeatherRainy

	s := Patch{WeatherStatus: &rainy}.Apply(State{})
	assert.Equal(t, WeatherRainy, s.WeatherStatus)

	s = Patch{WeatherStatus: &clear}.Apply(s)
	assert.Equal(t, WeatherClear, s.WeatherStatus)
}
