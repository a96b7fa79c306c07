package catalog

import "github.com/healthlab/portal-api/internal/model"

// labTests returns the fixed catalog. Prices are in USD.
func labTests() []model.LabTest {
	return []model.LabTest{
		{
			ID:                      "1",
			Name:                    "Complete Blood Count (CBC)",
			Description:             "Comprehensive blood analysis including red blood cells, white blood cells, and platelets",
			Price:                   45.00,
			Category:                "Hematology",
			PreparationInstructions: "No special preparation required",
			TurnaroundTime:          "1-2 business days",
		},
		{
			ID:                      "2",
			Name:                    "Lipid Panel",
			Description:             "Cholesterol and triglyceride levels to assess cardiovascular health",
			Price:                   65.00,
			Category:                "Chemistry",
			PreparationInstructions: "Fast for 12 hours before test",
			TurnaroundTime:          "1-2 business days",
		},
		{
			ID:                      "3",
			Name:                    "Comprehensive Metabolic Panel",
			Description:             "Kidney function, liver function, blood sugar, and electrolyte levels",
			Price:                   85.00,
			Category:                "Chemistry",
			PreparationInstructions: "Fast for 8-12 hours before test",
			TurnaroundTime:          "1-2 business days",
		},
		{
			ID:                      "4",
			Name:                    "Thyroid Function (TSH, T3, T4)",
			Description:             "Complete thyroid hormone evaluation",
			Price:                   120.00,
			Category:                "Endocrinology",
			PreparationInstructions: "No special preparation required",
			TurnaroundTime:          "2-3 business days",
		},
		{
			ID:                      "5",
			Name:                    "Vitamin D",
			Description:             "25-hydroxyvitamin D blood test",
			Price:                   75.00,
			Category:                "Nutrition",
			PreparationInstructions: "No special preparation required",
			TurnaroundTime:          "1-2 business days",
		},
		{
			ID:                      "6",
			Name:                    "HbA1c (Diabetes Screening)",
			Description:             "Average blood sugar levels over the past 2-3 months",
			Price:                   55.00,
			Category:                "Diabetes",
			PreparationInstructions: "No fasting required",
			TurnaroundTime:          "1-2 business days",
		},
	}
}
