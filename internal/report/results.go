package report

// cannedResults maps a test name to its sample result block. Lookup is
// by exact name; unrecognized tests fall back to a generic line.
var cannedResults = map[string]string{
	"Complete Blood Count (CBC)": `
White Blood Cell Count: 6.8 K/uL (Normal: 4.0-11.0)
Red Blood Cell Count: 4.5 M/uL (Normal: 4.2-5.4)
Hemoglobin: 14.2 g/dL (Normal: 12.0-16.0)
Hematocrit: 42.1% (Normal: 36-46)
Platelet Count: 275 K/uL (Normal: 150-450)`,
	"Lipid Panel": `
Total Cholesterol: 185 mg/dL (Normal: <200)
LDL Cholesterol: 115 mg/dL (Normal: <100)
HDL Cholesterol: 55 mg/dL (Normal: >40)
Triglycerides: 120 mg/dL (Normal: <150)`,
	"Comprehensive Metabolic Panel": `
Glucose: 95 mg/dL (Normal: 70-100)
BUN: 15 mg/dL (Normal: 7-20)
Creatinine: 1.0 mg/dL (Normal: 0.6-1.2)
Sodium: 140 mEq/L (Normal: 136-145)
Potassium: 4.2 mEq/L (Normal: 3.5-5.0)`,
	"Thyroid Function (TSH, T3, T4)": `
TSH: 2.1 mIU/L (Normal: 0.4-4.0)
Free T4: 1.3 ng/dL (Normal: 0.8-1.8)
Free T3: 3.2 pg/mL (Normal: 2.3-4.2)`,
	"Vitamin D": `
25-Hydroxyvitamin D: 32 ng/mL (Normal: 30-100)
Status: Adequate`,
	"HbA1c (Diabetes Screening)": `
HbA1c: 5.4% (Normal: <5.7%)
Estimated Average Glucose: 108 mg/dL`,
}

func resultsFor(testName string) string {
	if block, ok := cannedResults[testName]; ok {
		return block
	}
	return "Results within normal ranges."
}
