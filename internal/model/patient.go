package model

import (
	"time"

	"github.com/google/uuid"
)

// Patient is the single registered patient of a portal session. The
// portal keeps at most one current patient; registering again
// overwrites the slot.
type Patient struct {
	ID           uuid.UUID `db:"id" json:"id"`
	FirstName    string    `db:"first_name" json:"first_name"`
	LastName     string    `db:"last_name" json:"last_name"`
	Email        string    `db:"email" json:"email"`
	Phone        string    `db:"phone" json:"phone"`
	DateOfBirth  time.Time `db:"date_of_birth" json:"date_of_birth"`
	Address      string    `db:"address" json:"address,omitempty"`
	RegisteredAt time.Time `db:"registered_at" json:"registered_at"`
}

// FullName returns the patient's display name.
func (p *Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}

type RegisterPatientRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	DateOfBirth string `json:"date_of_birth"`
	Address     string `json:"address"`
}
