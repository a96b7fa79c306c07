package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/healthlab/portal-api/internal/model"
)

// All repository interfaces in one file
type (
	// PatientRepository holds the single current-patient slot.
	// SaveCurrent overwrites any previous registration (last write
	// wins); Current returns the slot or a not-found error when no
	// patient has registered yet.
	PatientRepository interface {
		SaveCurrent(ctx context.Context, patient *model.Patient) error
		Current(ctx context.Context) (*model.Patient, error)
	}

	// BookingRepository is the append-only booking ledger. Append is
	// the only way records enter; ListByPatient preserves insertion
	// order; UpdateStatus is the one permitted mutation (the status
	// workflow), nothing is ever deleted.
	BookingRepository interface {
		Append(ctx context.Context, booking *model.Booking) error
		Get(ctx context.Context, id uuid.UUID) (*model.Booking, error)
		ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.Booking, error)
		UpdateStatus(ctx context.Context, id uuid.UUID, status model.BookingStatus) error
	}
)
