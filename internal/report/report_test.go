package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/healthlab/portal-api/internal/model"
)

func sampleBooking(testName string) *model.Booking {
	now := time.Date(2025, 6, 10, 9, 30, 0, 0, time.UTC)
	return &model.Booking{
		ID:            uuid.MustParse("9b2e64fd-9406-4ad1-8f78-0577e8a1a045"),
		PatientID:     uuid.New(),
		TestID:        "2",
		TestName:      testName,
		Price:         65.00,
		Status:        model.BookingStatusScheduled,
		BookingDate:   now,
		ScheduledDate: now.Add(24 * time.Hour),
	}
}

func samplePatient() *model.Patient {
	return &model.Patient{
		ID:        uuid.New(),
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@x.com",
	}
}

func TestSynthesize(t *testing.T) {
	rep := Synthesize(sampleBooking("Lipid Panel"), samplePatient())

	assert.Contains(t, rep.Content, "HEALTHLAB PORTAL - LAB REPORT")
	assert.Contains(t, rep.Content, "Patient: Jane Doe")
	assert.Contains(t, rep.Content, "Test: Lipid Panel")
	assert.Contains(t, rep.Content, "Total Cholesterol: 185 mg/dL (Normal: <200)")
	assert.Contains(t, rep.Content, "Triglycerides: 120 mg/dL (Normal: <150)")
	assert.Contains(t, rep.Content, "Results reviewed and approved by medical staff.")
}

func TestSynthesizeKnownTests(t *testing.T) {
	cases := map[string]string{
		"Complete Blood Count (CBC)":     "Hemoglobin: 14.2 g/dL (Normal: 12.0-16.0)",
		"Comprehensive Metabolic Panel":  "Glucose: 95 mg/dL (Normal: 70-100)",
		"Thyroid Function (TSH, T3, T4)": "TSH: 2.1 mIU/L (Normal: 0.4-4.0)",
		"Vitamin D":                      "25-Hydroxyvitamin D: 32 ng/mL (Normal: 30-100)",
		"HbA1c (Diabetes Screening)":     "HbA1c: 5.4% (Normal: <5.7%)",
	}

	for testName, want := range cases {
		rep := Synthesize(sampleBooking(testName), samplePatient())
		assert.Contains(t, rep.Content, want, "results block for %s", testName)
	}
}

func TestSynthesizeUnknownTestFallsBack(t *testing.T) {
	rep := Synthesize(sampleBooking("Genome Sequencing"), samplePatient())
	assert.Contains(t, rep.Content, "Results within normal ranges.")
}

func TestFilename(t *testing.T) {
	b := sampleBooking("Complete Blood Count (CBC)")
	assert.Equal(t,
		"Complete_Blood_Count_(CBC)_Report_9b2e64fd-9406-4ad1-8f78-0577e8a1a045.txt",
		Filename(b))
}

func TestFilenameCollapsesWhitespace(t *testing.T) {
	b := sampleBooking("Lipid  Panel")
	assert.Equal(t,
		"Lipid_Panel_Report_9b2e64fd-9406-4ad1-8f78-0577e8a1a045.txt",
		Filename(b))
}
