package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in / check-out errors
	ErrNotCheckedIn = errors.New("you have not checked in yet")

	// General errors
	ErrRecordNotFound   = errors.New("attendance record not found")
	ErrInvalidDateRange = errors.New("start date must not be after end date")
)
