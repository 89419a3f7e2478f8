package utils

import "errors"

var (
	ErrEmptyDestination   = errors.New("destination is empty")
	ErrInvalidDateFormat  = errors.New("invalid date format")
	ErrInvalidDateRange   = errors.New("end date must be after start date")
	ErrCityNotFound       = errors.New("city code not found")
	ErrProviderFailure    = errors.New("provider request failed")
	ErrUnexpectedAIOutput = errors.New("unexpected AI output")
)
