package booking

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthlab/portal-api/internal/email"
	"github.com/healthlab/portal-api/internal/model"
	"github.com/healthlab/portal-api/internal/repository"
	"github.com/healthlab/portal-api/internal/repository/memory"
	"github.com/healthlab/portal-api/internal/service/catalog"
	patientService "github.com/healthlab/portal-api/internal/service/patient"
	"github.com/healthlab/portal-api/pkg/errors"
	"github.com/healthlab/portal-api/pkg/logger"
	"github.com/healthlab/portal-api/pkg/messaging"
)

type fixture struct {
	svc         *Service
	patientSvc  *patientService.Service
	patientRepo repository.PatientRepository
	bookingRepo repository.BookingRepository
}

func newFixture() *fixture {
	log := logger.NewLogger(nil)
	broker := messaging.NewNoopBroker()
	patientRepo := memory.NewPatientRepository()
	bookingRepo := memory.NewBookingRepository()
	emailSvc := email.NewService(email.Config{Enabled: false})

	return &fixture{
		svc:         NewService(bookingRepo, patientRepo, catalog.NewService(), emailSvc, broker, log),
		patientSvc:  patientService.NewService(patientRepo, broker, log),
		patientRepo: patientRepo,
		bookingRepo: bookingRepo,
	}
}

func (f *fixture) register(t *testing.T, firstName, email string) *model.Patient {
	t.Helper()
	p, err := f.patientSvc.Register(context.Background(), &model.RegisterPatientRequest{
		FirstName:   firstName,
		LastName:    "Doe",
		Email:       email,
		Phone:       "555-1000",
		DateOfBirth: "1990-01-01",
	})
	require.NoError(t, err)
	return p
}

func TestBookTestRequiresRegistration(t *testing.T) {
	f := newFixture()

	_, err := f.svc.BookTest(context.Background(), "2")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrRegistrationRequired))

	// the ledger must be untouched
	bookings, err := f.bookingRepo.ListByPatient(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestBookTest(t *testing.T) {
	f := newFixture()
	p := f.register(t, "Jane", "jane@x.com")

	b, err := f.svc.BookTest(context.Background(), "2")
	require.NoError(t, err)

	assert.Equal(t, p.ID, b.PatientID)
	assert.Equal(t, "2", b.TestID)
	assert.Equal(t, "Lipid Panel", b.TestName)
	assert.Equal(t, 65.00, b.Price)
	assert.Equal(t, model.BookingStatusScheduled, b.Status)
	assert.WithinDuration(t, time.Now(), b.BookingDate, time.Second)
	assert.Equal(t, b.BookingDate.Add(24*time.Hour), b.ScheduledDate)

	bookings, err := f.svc.ListBookings(context.Background(), p.ID)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, b.ID, bookings[0].ID)
}

func TestBookTestUnknownTest(t *testing.T) {
	f := newFixture()
	p := f.register(t, "Jane", "jane@x.com")

	_, err := f.svc.BookTest(context.Background(), "999")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrNotFound))

	bookings, err := f.svc.ListBookings(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestListBookingsFiltersByPatient(t *testing.T) {
	f := newFixture()

	jane := f.register(t, "Jane", "jane@x.com")
	janeBooking, err := f.svc.BookTest(context.Background(), "1")
	require.NoError(t, err)

	// re-registration moves the current-patient slot
	john := f.register(t, "John", "john@x.com")
	johnBooking, err := f.svc.BookTest(context.Background(), "3")
	require.NoError(t, err)

	janeBookings, err := f.svc.ListBookings(context.Background(), jane.ID)
	require.NoError(t, err)
	require.Len(t, janeBookings, 1)
	assert.Equal(t, janeBooking.ID, janeBookings[0].ID)

	johnBookings, err := f.svc.ListBookings(context.Background(), john.ID)
	require.NoError(t, err)
	require.Len(t, johnBookings, 1)
	assert.Equal(t, johnBooking.ID, johnBookings[0].ID)
}

func TestListBookingsPreservesLedgerOrder(t *testing.T) {
	f := newFixture()
	p := f.register(t, "Jane", "jane@x.com")

	var ids []uuid.UUID
	for _, testID := range []string{"1", "2", "3", "4"} {
		b, err := f.svc.BookTest(context.Background(), testID)
		require.NoError(t, err)
		ids = append(ids, b.ID)
	}

	bookings, err := f.svc.ListBookings(context.Background(), p.ID)
	require.NoError(t, err)
	require.Len(t, bookings, 4)
	for i, b := range bookings {
		assert.Equal(t, ids[i], b.ID)
	}
}

func TestAdvanceStatus(t *testing.T) {
	f := newFixture()
	f.register(t, "Jane", "jane@x.com")

	b, err := f.svc.BookTest(context.Background(), "1")
	require.NoError(t, err)

	b, err = f.svc.AdvanceStatus(context.Background(), b.ID, model.BookingStatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, model.BookingStatusInProgress, b.Status)

	b, err = f.svc.AdvanceStatus(context.Background(), b.ID, model.BookingStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, model.BookingStatusCompleted, b.Status)
}

func TestAdvanceStatusRejectsInvalidTransitions(t *testing.T) {
	f := newFixture()
	f.register(t, "Jane", "jane@x.com")

	b, err := f.svc.BookTest(context.Background(), "1")
	require.NoError(t, err)

	// skipping In Progress is not allowed
	_, err = f.svc.AdvanceStatus(context.Background(), b.ID, model.BookingStatusCompleted)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrBadRequest))

	// completed bookings are terminal
	_, err = f.svc.AdvanceStatus(context.Background(), b.ID, model.BookingStatusInProgress)
	require.NoError(t, err)
	_, err = f.svc.AdvanceStatus(context.Background(), b.ID, model.BookingStatusCompleted)
	require.NoError(t, err)
	_, err = f.svc.AdvanceStatus(context.Background(), b.ID, model.BookingStatusScheduled)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrBadRequest))
}

func TestReport(t *testing.T) {
	f := newFixture()
	f.register(t, "Jane", "jane@x.com")

	b, err := f.svc.BookTest(context.Background(), "2")
	require.NoError(t, err)

	rep, err := f.svc.Report(context.Background(), b.ID)
	require.NoError(t, err)

	assert.Contains(t, rep.Content, "Total Cholesterol: 185 mg/dL (Normal: <200)")
	assert.Contains(t, rep.Content, "Patient: Jane Doe")
	assert.Contains(t, rep.Content, "Test: Lipid Panel")
	assert.Equal(t, "Lipid_Panel_Report_"+b.ID.String()+".txt", rep.Filename)
}

func TestReportForAnotherPatientsBooking(t *testing.T) {
	f := newFixture()

	f.register(t, "Jane", "jane@x.com")
	janeBooking, err := f.svc.BookTest(context.Background(), "2")
	require.NoError(t, err)

	f.register(t, "John", "john@x.com")

	_, err = f.svc.Report(context.Background(), janeBooking.ID)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrNotFound))
}

func TestReportRequiresRegistration(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Report(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrRegistrationRequired))
}
