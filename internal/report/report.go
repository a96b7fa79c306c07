// Package report synthesizes the downloadable text report for a
// booking. Synthesis is pure: it reads the booking and patient and
// produces text, nothing else.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/healthlab/portal-api/internal/model"
)

// Report is a synthesized lab report ready for download.
type Report struct {
	Filename string
	Content  string
}

// Synthesize renders the report text for a booking, using the canned
// result block for the booked test when one exists.
func Synthesize(booking *model.Booking, patient *model.Patient) *Report {
	content := fmt.Sprintf(`
HEALTHLAB PORTAL - LAB REPORT
================================

Patient: %s %s
Test: %s
Date: %s
Report Generated: %s

TEST RESULTS
============

%s

REFERENCE RANGES
================

Values within normal limits unless otherwise noted.

INTERPRETATION
==============

Results reviewed and approved by medical staff.
Please consult with your healthcare provider for interpretation.

This is a sample report for demonstration purposes.
`,
		patient.FirstName,
		patient.LastName,
		booking.TestName,
		booking.ScheduledDate.Format("1/2/2006"),
		time.Now().Format("1/2/2006, 3:04:05 PM"),
		resultsFor(booking.TestName),
	)

	return &Report{
		Filename: Filename(booking),
		Content:  content,
	}
}

// Filename builds the download name: the test name with whitespace
// collapsed to underscores, followed by the booking id.
func Filename(booking *model.Booking) string {
	name := strings.Join(strings.Fields(booking.TestName), "_")
	return fmt.Sprintf("%s_Report_%s.txt", name, booking.ID)
}
