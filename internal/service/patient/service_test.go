package patient

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthlab/portal-api/internal/model"
	"github.com/healthlab/portal-api/internal/repository/memory"
	"github.com/healthlab/portal-api/pkg/errors"
	"github.com/healthlab/portal-api/pkg/logger"
	"github.com/healthlab/portal-api/pkg/messaging"
)

func newTestService() *Service {
	return NewService(memory.NewPatientRepository(), messaging.NewNoopBroker(), logger.NewLogger(nil))
}

func validRequest() *model.RegisterPatientRequest {
	return &model.RegisterPatientRequest{
		FirstName:   "Jane",
		LastName:    "Doe",
		Email:       "jane@x.com",
		Phone:       "555-1000",
		DateOfBirth: "1990-01-01",
	}
}

func TestRegister(t *testing.T) {
	svc := newTestService()

	p, err := svc.Register(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", p.ID.String())
	assert.Equal(t, "Jane", p.FirstName)
	assert.Equal(t, "Doe", p.LastName)
	assert.Equal(t, "jane@x.com", p.Email)
	assert.Equal(t, "555-1000", p.Phone)
	assert.Equal(t, time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC), p.DateOfBirth)
	assert.WithinDuration(t, time.Now(), p.RegisteredAt, time.Second)

	current, err := svc.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, p.ID, current.ID)
}

func TestRegisterTrimsInput(t *testing.T) {
	svc := newTestService()

	req := validRequest()
	req.FirstName = "  Jane "
	req.LastName = " Doe  "
	req.Address = " 12 Main St "

	p, err := svc.Register(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Jane", p.FirstName)
	assert.Equal(t, "Doe", p.LastName)
	assert.Equal(t, "12 Main St", p.Address)
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.RegisterPatientRequest)
		field  string
	}{
		{"missing first name", func(r *model.RegisterPatientRequest) { r.FirstName = "  " }, "first_name"},
		{"missing last name", func(r *model.RegisterPatientRequest) { r.LastName = "" }, "last_name"},
		{"missing email", func(r *model.RegisterPatientRequest) { r.Email = "" }, "email"},
		{"malformed email", func(r *model.RegisterPatientRequest) { r.Email = "not-an-email" }, "email"},
		{"email without tld", func(r *model.RegisterPatientRequest) { r.Email = "jane@x" }, "email"},
		{"missing phone", func(r *model.RegisterPatientRequest) { r.Phone = "" }, "phone"},
		{"missing date of birth", func(r *model.RegisterPatientRequest) { r.DateOfBirth = "" }, "date_of_birth"},
		{"unparseable date of birth", func(r *model.RegisterPatientRequest) { r.DateOfBirth = "01/01/1990" }, "date_of_birth"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService()

			req := validRequest()
			tt.mutate(req)

			_, err := svc.Register(context.Background(), req)
			require.Error(t, err)

			ve, ok := errors.AsValidation(err)
			require.True(t, ok, "expected a validation error, got %v", err)
			assert.Contains(t, ve.Fields, tt.field)

			// nothing persisted on failure
			_, err = svc.Current(context.Background())
			assert.True(t, errors.IsCode(err, errors.ErrNotFound))
		})
	}
}

func TestRegisterAddressOptional(t *testing.T) {
	svc := newTestService()

	req := validRequest()
	req.Address = ""

	p, err := svc.Register(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, p.Address)
}

func TestRegisterGeneratesUniqueIDs(t *testing.T) {
	svc := newTestService()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		p, err := svc.Register(context.Background(), validRequest())
		require.NoError(t, err)
		assert.False(t, seen[p.ID.String()], "duplicate patient id %s", p.ID)
		seen[p.ID.String()] = true
	}
}

func TestRegisterOverwritesCurrentPatient(t *testing.T) {
	svc := newTestService()

	first, err := svc.Register(context.Background(), validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.FirstName = "John"
	req.Email = "john@x.com"
	second, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	current, err := svc.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, second.ID, current.ID)
	assert.NotEqual(t, first.ID, current.ID)
	assert.Equal(t, "John", current.FirstName)
}

func TestCurrentWithoutRegistration(t *testing.T) {
	svc := newTestService()

	_, err := svc.Current(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrNotFound))
}
