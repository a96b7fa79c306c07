package model

// LabTest is a bookable catalog entry. The catalog is fixed at startup
// and read-only for the process lifetime.
type LabTest struct {
	ID                      string  `json:"id"`
	Name                    string  `json:"name"`
	Description             string  `json:"description"`
	Price                   float64 `json:"price"`
	Category                string  `json:"category"`
	PreparationInstructions string  `json:"preparation_instructions"`
	TurnaroundTime          string  `json:"turnaround_time"`
}
