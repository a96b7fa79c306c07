package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/healthlab/portal-api/internal/model"
	apperrors "github.com/healthlab/portal-api/pkg/errors"
)

// The current-patient slot is a single-row pointer table on top of the
// patients table. Re-registration inserts a fresh patient row and moves
// the pointer, so the overwrite is last-write-wins while earlier rows
// stay referenced by their bookings.

func (r *patientRepository) SaveCurrent(ctx context.Context, patient *model.Patient) error {
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		insert := `
			INSERT INTO patients (
				id, first_name, last_name, email, phone,
				date_of_birth, address, registered_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`
		if _, err := tx.ExecContext(ctx, insert,
			patient.ID,
			patient.FirstName,
			patient.LastName,
			patient.Email,
			patient.Phone,
			patient.DateOfBirth,
			patient.Address,
			patient.RegisteredAt,
		); err != nil {
			return err
		}

		pointer := `
			INSERT INTO current_patient (singleton, patient_id)
			VALUES (TRUE, $1)
			ON CONFLICT (singleton) DO UPDATE SET patient_id = EXCLUDED.patient_id
		`
		_, err := tx.ExecContext(ctx, pointer, patient.ID)
		return err
	})
	if err != nil {
		return apperrors.NewStorage(err)
	}
	return nil
}

func (r *patientRepository) Current(ctx context.Context) (*model.Patient, error) {
	query := `
		SELECT p.id, p.first_name, p.last_name, p.email, p.phone,
			   p.date_of_birth, p.address, p.registered_at
		FROM patients p
		JOIN current_patient c ON c.patient_id = p.id
	`
	var patient model.Patient
	err := r.db.GetContext(ctx, &patient, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("patient", err)
	}
	if err != nil {
		return nil, apperrors.NewStorage(err)
	}
	return &patient, nil
}
