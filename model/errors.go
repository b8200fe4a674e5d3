package model

import "errors"

var (
	ErrScheduleNotFound  = errors.New("schedule not found")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrSeatClassNotFound = errors.New("seat class not found")
)

var (
	ErrNotBookable      = errors.New("seat class is not bookable")
	ErrModeNotSupported = errors.New("transport mode not supported")
)

var (
	ErrStationNotFound  = errors.New("station not found in suggestions")
	ErrDateNotAvailable = errors.New("date not present in date strip")
	ErrResultsTimeout   = errors.New("results did not load within timeout")
)
