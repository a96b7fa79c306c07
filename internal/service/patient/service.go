package patient

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/healthlab/portal-api/internal/model"
	"github.com/healthlab/portal-api/internal/repository"
	"github.com/healthlab/portal-api/pkg/errors"
	"github.com/healthlab/portal-api/pkg/logger"
	"github.com/healthlab/portal-api/pkg/messaging"
)

const dateOfBirthLayout = "2006-01-02"

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type PatientService interface {
	Register(ctx context.Context, req *model.RegisterPatientRequest) (*model.Patient, error)
	Current(ctx context.Context) (*model.Patient, error)
}

type Service struct {
	repo   repository.PatientRepository
	broker messaging.Broker
	log    *logger.Logger
}

func NewService(repo repository.PatientRepository, broker messaging.Broker, log *logger.Logger) *Service {
	return &Service{
		repo:   repo,
		broker: broker,
		log:    log,
	}
}

// Register validates the form input and, on success, stores the patient
// as the current patient of the session. A repeat registration simply
// overwrites the slot; there are no merge semantics.
func (s *Service) Register(ctx context.Context, req *model.RegisterPatientRequest) (*model.Patient, error) {
	dob, fieldErrs := validateRegistration(req)
	if len(fieldErrs) > 0 {
		return nil, errors.NewValidationError(fieldErrs)
	}

	patient := &model.Patient{
		ID:           uuid.New(),
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Email:        strings.TrimSpace(req.Email),
		Phone:        strings.TrimSpace(req.Phone),
		DateOfBirth:  dob,
		Address:      strings.TrimSpace(req.Address),
		RegisteredAt: time.Now(),
	}

	if err := s.repo.SaveCurrent(ctx, patient); err != nil {
		return nil, fmt.Errorf("failed to save patient: %w", err)
	}

	if err := s.broker.Publish(ctx, messaging.ChannelPatientRegistered, patient); err != nil {
		s.log.Error(err, "failed to publish patient registration event")
	}

	s.log.Info("patient registered", "patient_id", patient.ID.String())
	return patient, nil
}

func (s *Service) Current(ctx context.Context) (*model.Patient, error) {
	patient, err := s.repo.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current patient: %w", err)
	}
	return patient, nil
}

func validateRegistration(req *model.RegisterPatientRequest) (time.Time, map[string]string) {
	fieldErrs := make(map[string]string)

	if strings.TrimSpace(req.FirstName) == "" {
		fieldErrs["first_name"] = "First name is required"
	}
	if strings.TrimSpace(req.LastName) == "" {
		fieldErrs["last_name"] = "Last name is required"
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		fieldErrs["email"] = "Email is required"
	} else if !emailPattern.MatchString(email) {
		fieldErrs["email"] = "Email is invalid"
	}

	if strings.TrimSpace(req.Phone) == "" {
		fieldErrs["phone"] = "Phone number is required"
	}

	var dob time.Time
	if strings.TrimSpace(req.DateOfBirth) == "" {
		fieldErrs["date_of_birth"] = "Date of birth is required"
	} else {
		parsed, err := time.Parse(dateOfBirthLayout, strings.TrimSpace(req.DateOfBirth))
		if err != nil {
			fieldErrs["date_of_birth"] = "Date of birth must be a valid date (YYYY-MM-DD)"
		} else {
			dob = parsed
		}
	}

	return dob, fieldErrs
}
