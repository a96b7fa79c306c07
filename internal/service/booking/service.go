package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/healthlab/portal-api/internal/email"
	"github.com/healthlab/portal-api/internal/model"
	"github.com/healthlab/portal-api/internal/report"
	"github.com/healthlab/portal-api/internal/repository"
	"github.com/healthlab/portal-api/internal/service/catalog"
	"github.com/healthlab/portal-api/pkg/errors"
	"github.com/healthlab/portal-api/pkg/logger"
	"github.com/healthlab/portal-api/pkg/messaging"
)

// ScheduledDateOffset is how far ahead of the booking time a test is
// scheduled.
const ScheduledDateOffset = 24 * time.Hour

type BookingService interface {
	BookTest(ctx context.Context, testID string) (*model.Booking, error)
	GetBooking(ctx context.Context, id uuid.UUID) (*model.Booking, error)
	ListBookings(ctx context.Context, patientID uuid.UUID) ([]*model.Booking, error)
	AdvanceStatus(ctx context.Context, id uuid.UUID, status model.BookingStatus) (*model.Booking, error)
	Report(ctx context.Context, id uuid.UUID) (*report.Report, error)
}

type Service struct {
	repo        repository.BookingRepository
	patientRepo repository.PatientRepository
	catalogSvc  catalog.CatalogService
	emailSvc    email.Service
	broker      messaging.Broker
	log         *logger.Logger
}

func NewService(
	repo repository.BookingRepository,
	patientRepo repository.PatientRepository,
	catalogSvc catalog.CatalogService,
	emailSvc email.Service,
	broker messaging.Broker,
	log *logger.Logger,
) *Service {
	return &Service{
		repo:        repo,
		patientRepo: patientRepo,
		catalogSvc:  catalogSvc,
		emailSvc:    emailSvc,
		broker:      broker,
		log:         log,
	}
}

// BookTest books the given lab test for the current patient. Without a
// registered patient it fails with a registration-required error and
// leaves the ledger untouched. The booking snapshots the test name and
// price so the record survives any later catalog change.
func (s *Service) BookTest(ctx context.Context, testID string) (*model.Booking, error) {
	patient, err := s.patientRepo.Current(ctx)
	if err != nil {
		if errors.IsCode(err, errors.ErrNotFound) {
			return nil, errors.NewRegistrationRequired()
		}
		return nil, fmt.Errorf("failed to get current patient: %w", err)
	}

	test, err := s.catalogSvc.GetTest(ctx, testID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up test: %w", err)
	}

	now := time.Now()
	booking := &model.Booking{
		ID:            uuid.New(),
		PatientID:     patient.ID,
		TestID:        test.ID,
		TestName:      test.Name,
		Price:         test.Price,
		Status:        model.BookingStatusScheduled,
		BookingDate:   now,
		ScheduledDate: now.Add(ScheduledDateOffset),
	}

	if err := s.repo.Append(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to append booking: %w", err)
	}

	if err := s.broker.Publish(ctx, messaging.ChannelBookingCreated, booking); err != nil {
		s.log.Error(err, "failed to publish booking event", "booking_id", booking.ID.String())
	}

	if err := s.emailSvc.SendBookingConfirmation(ctx, patient, booking); err != nil {
		s.log.Error(err, "failed to send booking confirmation", "booking_id", booking.ID.String())
	}

	s.log.Info("test booked", "booking_id", booking.ID.String(), "test", test.Name)
	return booking, nil
}

func (s *Service) GetBooking(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	booking, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return booking, nil
}

// ListBookings returns the patient's bookings in ledger order.
func (s *Service) ListBookings(ctx context.Context, patientID uuid.UUID) ([]*model.Booking, error) {
	bookings, err := s.repo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

// AdvanceStatus moves a booking through the status workflow. Only the
// forward transitions Scheduled -> In Progress -> Completed are allowed.
func (s *Service) AdvanceStatus(ctx context.Context, id uuid.UUID, status model.BookingStatus) (*model.Booking, error) {
	booking, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	if !booking.Status.CanTransitionTo(status) {
		return nil, errors.BadRequest(
			fmt.Sprintf("cannot transition booking from %q to %q", booking.Status, status), nil)
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}

	booking.Status = status
	s.log.Info("booking status advanced", "booking_id", id.String(), "status", string(status))
	return booking, nil
}

// Report synthesizes the downloadable text report for a booking of the
// current patient.
func (s *Service) Report(ctx context.Context, id uuid.UUID) (*report.Report, error) {
	patient, err := s.patientRepo.Current(ctx)
	if err != nil {
		if errors.IsCode(err, errors.ErrNotFound) {
			return nil, errors.NewRegistrationRequired()
		}
		return nil, fmt.Errorf("failed to get current patient: %w", err)
	}

	booking, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.PatientID != patient.ID {
		return nil, errors.NotFound("booking", nil)
	}

	return report.Synthesize(booking, patient), nil
}
