package model

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusScheduled  BookingStatus = "Scheduled"
	BookingStatusInProgress BookingStatus = "In Progress"
	BookingStatusCompleted  BookingStatus = "Completed"
)

// CanTransitionTo reports whether the status may advance to next.
// The workflow is linear: Scheduled -> In Progress -> Completed.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	switch s {
	case BookingStatusScheduled:
		return next == BookingStatusInProgress
	case BookingStatusInProgress:
		return next == BookingStatusCompleted
	default:
		return false
	}
}

// Booking is one entry of the append-only booking ledger. TestName and
// Price are snapshots taken at booking time so later catalog changes
// never rewrite history.
type Booking struct {
	ID            uuid.UUID     `db:"id" json:"id"`
	PatientID     uuid.UUID     `db:"patient_id" json:"patient_id"`
	TestID        string        `db:"test_id" json:"test_id"`
	TestName      string        `db:"test_name" json:"test_name"`
	Price         float64       `db:"price" json:"price"`
	Status        BookingStatus `db:"status" json:"status"`
	BookingDate   time.Time     `db:"booking_date" json:"booking_date"`
	ScheduledDate time.Time     `db:"scheduled_date" json:"scheduled_date"`
}

type CreateBookingRequest struct {
	TestID string `json:"test_id" binding:"required"`
}

type UpdateBookingStatusRequest struct {
	Status BookingStatus `json:"status" binding:"required"`
}
