package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/healthlab/portal-api/internal/model"
	"github.com/healthlab/portal-api/internal/repository"
	"github.com/healthlab/portal-api/pkg/errors"
)

type bookingRepository struct {
	mu     sync.RWMutex
	ledger []*model.Booking
}

func NewBookingRepository() repository.BookingRepository {
	return &bookingRepository{}
}

func (r *bookingRepository) Append(ctx context.Context, booking *model.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b := *booking
	r.ledger = append(r.ledger, &b)
	return nil
}

func (r *bookingRepository) Get(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.ledger {
		if b.ID == id {
			cp := *b
			return &cp, nil
		}
	}
	return nil, errors.NotFound("booking", nil)
}

func (r *bookingRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bookings := make([]*model.Booking, 0)
	for _, b := range r.ledger {
		if b.PatientID == patientID {
			cp := *b
			bookings = append(bookings, &cp)
		}
	}
	return bookings, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.BookingStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range r.ledger {
		if b.ID == id {
			b.Status = status
			return nil
		}
	}
	return errors.NotFound("booking", nil)
}
