package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/healthlab/portal-api/internal/model"
	apperrors "github.com/healthlab/portal-api/pkg/errors"
)

// The bookings table carries a bigserial position column so that
// ListByPatient can reproduce ledger (insertion) order regardless of
// timestamp ties.

func (r *bookingRepository) Append(ctx context.Context, booking *model.Booking) error {
	query := `
		INSERT INTO bookings (
			id, patient_id, test_id, test_name, price,
			status, booking_date, scheduled_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		booking.ID,
		booking.PatientID,
		booking.TestID,
		booking.TestName,
		booking.Price,
		booking.Status,
		booking.BookingDate,
		booking.ScheduledDate,
	)
	if err != nil {
		return apperrors.NewStorage(err)
	}
	return nil
}

func (r *bookingRepository) Get(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	query := `
		SELECT id, patient_id, test_id, test_name, price,
			   status, booking_date, scheduled_date
		FROM bookings
		WHERE id = $1
	`
	var booking model.Booking
	err := r.db.GetContext(ctx, &booking, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("booking", err)
	}
	if err != nil {
		return nil, apperrors.NewStorage(err)
	}
	return &booking, nil
}

func (r *bookingRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.Booking, error) {
	query := `
		SELECT id, patient_id, test_id, test_name, price,
			   status, booking_date, scheduled_date
		FROM bookings
		WHERE patient_id = $1
		ORDER BY position
	`
	bookings := make([]*model.Booking, 0)
	if err := r.db.SelectContext(ctx, &bookings, query, patientID); err != nil {
		return nil, apperrors.NewStorage(err)
	}
	return bookings, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.BookingStatus) error {
	query := `
		UPDATE bookings
		SET status = $1
		WHERE id = $2
	`
	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return apperrors.NewStorage(err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewStorage(err)
	}
	if rows == 0 {
		return apperrors.NotFound("booking", nil)
	}

	return nil
}
