package postgres

import (
	"github.com/jmoiron/sqlx"

	"github.com/healthlab/portal-api/internal/repository"
)

type patientRepository struct {
	db *sqlx.DB
}

type bookingRepository struct {
	db *sqlx.DB
}

func NewPatientRepository(db *sqlx.DB) repository.PatientRepository {
	return &patientRepository{db: db}
}

func NewBookingRepository(db *sqlx.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}
