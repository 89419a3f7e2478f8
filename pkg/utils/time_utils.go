package utils

import "time"

// DateLayout is the wire format for all trip dates.
const DateLayout = "2006-01-02"

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// TripNights returns the number of nights between check-in and check-out.
func TripNights(checkin, checkout time.Time) int {
	return int(checkout.Sub(checkin).Hours() / 24)
}
