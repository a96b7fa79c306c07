// Package memory provides in-process repository implementations used by
// the demo profile and by tests. They mirror the two persisted keys of
// the original portal: the current-patient slot and the booking ledger.
package memory

import (
	"context"
	"sync"

	"github.com/healthlab/portal-api/internal/model"
	"github.com/healthlab/portal-api/internal/repository"
	"github.com/healthlab/portal-api/pkg/errors"
)

type patientRepository struct {
	mu      sync.RWMutex
	current *model.Patient
}

func NewPatientRepository() repository.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) SaveCurrent(ctx context.Context, patient *model.Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := *patient
	r.current = &p
	return nil
}

func (r *patientRepository) Current(ctx context.Context) (*model.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.current == nil {
		return nil, errors.NotFound("patient", nil)
	}
	p := *r.current
	return &p, nil
}
