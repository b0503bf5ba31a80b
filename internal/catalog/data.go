package catalog

// Fixture data. Representative only; values are not clinical guidance.

var patients = []Patient{
	{ID: "p-001", Name: "Maria Gonzalez", Age: 52, Email: "maria.gonzalez@example.com", Condition: "Type 2 Diabetes", Risk: RiskHigh, LastVisit: "2026-09-28", PlanID: "metabolic-reset"},
	{ID: "p-002", Name: "James Chen", Age: 41, Email: "james.chen@example.com", Condition: "Hypertension", Risk: RiskModerate, LastVisit: "2026-10-02", PlanID: "heart-health"},
	{ID: "p-003", Name: "Aisha Okafor", Age: 34, Email: "aisha.okafor@example.com", Condition: "Insomnia", Risk: RiskLow, LastVisit: "2026-10-09", PlanID: "sleep-restore"},
	{ID: "p-004", Name: "Lukas Berg", Age: 63, Email: "lukas.berg@example.com", Condition: "Hyperlipidemia", Risk: RiskModerate, LastVisit: "2026-08-17", PlanID: "heart-health"},
	{ID: "p-005", Name: "Priya Nair", Age: 29, Email: "priya.nair@example.com", Condition: "Chronic Stress", Risk: RiskLow, LastVisit: "2026-10-12", PlanID: "stress-balance"},
	{ID: "p-006", Name: "Tom Walsh", Age: 58, Email: "tom.walsh@example.com", Condition: "Prediabetes", Risk: RiskModerate, LastVisit: "2026-09-03"},
}

var biomarkers = []Biomarker{
	{Name: "HbA1c", Unit: "%", Low: 4.0, High: 5.6, Description: "Average blood glucose over roughly three months."},
	{Name: "Fasting Glucose", Unit: "mg/dL", Low: 70, High: 99, Description: "Blood glucose after an overnight fast."},
	{Name: "LDL Cholesterol", Unit: "mg/dL", Low: 0, High: 99, Description: "Low-density lipoprotein cholesterol."},
	{Name: "HDL Cholesterol", Unit: "mg/dL", Low: 40, High: 90, Description: "High-density lipoprotein cholesterol."},
	{Name: "Triglycerides", Unit: "mg/dL", Low: 0, High: 149, Description: "Circulating fat from recent meals and stores."},
	{Name: "Vitamin D", Unit: "ng/mL", Low: 30, High: 80, Description: "25-hydroxy vitamin D."},
	{Name: "hs-CRP", Unit: "mg/L", Low: 0, High: 1.0, Description: "High-sensitivity C-reactive protein, an inflammation marker."},
	{Name: "Cortisol (AM)", Unit: "ug/dL", Low: 6, High: 18, Description: "Morning serum cortisol."},
	{Name: "Systolic BP", Unit: "mmHg", Low: 90, High: 119, Description: "Systolic blood pressure."},
}

var labResults = []LabResult{
	{PatientID: "p-001", Biomarker: "HbA1c", Value: 7.4, Date: "2026-09-28"},
	{PatientID: "p-001", Biomarker: "Fasting Glucose", Value: 142, Date: "2026-09-28"},
	{PatientID: "p-001", Biomarker: "Triglycerides", Value: 188, Date: "2026-09-28"},
	{PatientID: "p-001", Biomarker: "Vitamin D", Value: 24, Date: "2026-09-28"},
	{PatientID: "p-002", Biomarker: "Systolic BP", Value: 138, Date: "2026-10-02"},
	{PatientID: "p-002", Biomarker: "LDL Cholesterol", Value: 118, Date: "2026-10-02"},
	{PatientID: "p-002", Biomarker: "HDL Cholesterol", Value: 52, Date: "2026-10-02"},
	{PatientID: "p-003", Biomarker: "Cortisol (AM)", Value: 21, Date: "2026-10-09"},
	{PatientID: "p-003", Biomarker: "Vitamin D", Value: 41, Date: "2026-10-09"},
	{PatientID: "p-004", Biomarker: "LDL Cholesterol", Value: 164, Date: "2026-08-17"},
	{PatientID: "p-004", Biomarker: "hs-CRP", Value: 2.3, Date: "2026-08-17"},
	{PatientID: "p-005", Biomarker: "Cortisol (AM)", Value: 16, Date: "2026-10-12"},
	{PatientID: "p-006", Biomarker: "HbA1c", Value: 5.9, Date: "2026-09-03"},
	{PatientID: "p-006", Biomarker: "Fasting Glucose", Value: 104, Date: "2026-09-03"},
}

var literature = []Literature{
	{ID: "lit-01", Title: "Time-restricted eating and glycemic control in adults with type 2 diabetes", Authors: "Ramos L, Whitfield K", Journal: "Journal of Metabolic Research", Year: 2023, DOI: "10.5555/jmr.2023.0142", Tags: []string{"nutrition", "diabetes"}, Summary: "Eight-hour eating windows lowered HbA1c over twelve weeks."},
	{ID: "lit-02", Title: "Resistance training and blood pressure: a meta-analysis", Authors: "Ohanian S, Brandt M", Journal: "Cardiology Reviews", Year: 2022, DOI: "10.5555/cr.2022.0871", Tags: []string{"exercise", "hypertension"}, Summary: "Moderate resistance training reduced systolic pressure by roughly 5 mmHg."},
	{ID: "lit-03", Title: "Cognitive behavioral therapy for insomnia delivered digitally", Authors: "Kaur P, Lindqvist E", Journal: "Sleep Medicine Letters", Year: 2024, DOI: "10.5555/sml.2024.0033", Tags: []string{"sleep"}, Summary: "App-based CBT-I improved sleep efficiency versus sleep hygiene education."},
	{ID: "lit-04", Title: "Mindfulness-based stress reduction and salivary cortisol", Authors: "Moreau A, Tanaka H", Journal: "Psychoneuroendocrinology Notes", Year: 2021, DOI: "10.5555/pnn.2021.0510", Tags: []string{"stress", "mindfulness"}, Summary: "An eight-week MBSR course blunted the cortisol awakening response."},
	{ID: "lit-05", Title: "Vitamin D supplementation and respiratory infections", Authors: "Adeyemi T, Fischer R", Journal: "Nutrition Evidence", Year: 2022, DOI: "10.5555/ne.2022.0199", Tags: []string{"supplements", "nutrition"}, Summary: "Daily dosing benefited deficient participants most."},
	{ID: "lit-06", Title: "Step counts and all-cause mortality", Authors: "Hughes D, Sato Y", Journal: "Preventive Health Quarterly", Year: 2023, DOI: "10.5555/phq.2023.0456", Tags: []string{"exercise"}, Summary: "Benefits accrued steadily up to about 8,000 steps per day."},
}

var plans = []LifestylePlan{
	{
		ID: "metabolic-reset", Name: "Metabolic Reset", Focus: "blood sugar", Weeks: 12,
		Actions: []PlanAction{
			{Category: "nutrition", Text: "Keep meals within an 8-10 hour window", Frequency: "daily"},
			{Category: "exercise", Text: "Walk 10 minutes after dinner", Frequency: "daily"},
			{Category: "sleep", Text: "Lights out by 23:00", Frequency: "daily"},
			{Category: "stress", Text: "Five minutes of box breathing", Frequency: "daily"},
		},
	},
	{
		ID: "heart-health", Name: "Heart Health", Focus: "cardiovascular", Weeks: 8,
		Actions: []PlanAction{
			{Category: "nutrition", Text: "Two servings of oily fish", Frequency: "weekly"},
			{Category: "exercise", Text: "Resistance training, 30 minutes", Frequency: "3x weekly"},
			{Category: "stress", Text: "Evening screen-free hour", Frequency: "daily"},
		},
	},
	{
		ID: "sleep-restore", Name: "Sleep Restore", Focus: "sleep quality", Weeks: 6,
		Actions: []PlanAction{
			{Category: "sleep", Text: "Fixed wake time, including weekends", Frequency: "daily"},
			{Category: "nutrition", Text: "No caffeine after 14:00", Frequency: "daily"},
			{Category: "exercise", Text: "Morning daylight walk", Frequency: "daily"},
		},
	},
	{
		ID: "stress-balance", Name: "Stress Balance", Focus: "stress", Weeks: 4,
		Actions: []PlanAction{
			{Category: "stress", Text: "Ten-minute guided meditation", Frequency: "daily"},
			{Category: "exercise", Text: "Yoga session", Frequency: "2x weekly"},
			{Category: "sleep", Text: "Journal before bed", Frequency: "daily"},
		},
	},
}

var geneticMarkers = []GeneticMarker{
	{PatientID: "p-001", Gene: "TCF7L2", Variant: "rs7903146", Genotype: "CT", Impact: "Elevated type 2 diabetes risk", Recommendation: "Prioritize fiber and post-meal activity."},
	{PatientID: "p-001", Gene: "FTO", Variant: "rs9939609", Genotype: "AT", Impact: "Modest obesity association", Recommendation: "Regular physical activity offsets most of the effect."},
	{PatientID: "p-002", Gene: "ACE", Variant: "rs4646994", Genotype: "DD", Impact: "Salt-sensitive blood pressure", Recommendation: "Limit sodium to under 2 g per day."},
	{PatientID: "p-003", Gene: "PER3", Variant: "VNTR 5/5", Genotype: "5/5", Impact: "Morning chronotype, sensitive to sleep loss", Recommendation: "Protect a consistent early bedtime."},
	{PatientID: "p-004", Gene: "APOE", Variant: "rs429358", Genotype: "e3/e4", Impact: "Higher LDL response to saturated fat", Recommendation: "Replace saturated fat with unsaturated sources."},
	{PatientID: "p-005", Gene: "COMT", Variant: "rs4680", Genotype: "Met/Met", Impact: "Slower catecholamine clearance under stress", Recommendation: "Favor daily stress-reduction practice."},
	{PatientID: "p-006", Gene: "MTHFR", Variant: "rs1801133", Genotype: "CT", Impact: "Reduced folate metabolism", Recommendation: "Ensure adequate dietary folate."},
}

var supplements = []Supplement{
	{Name: "Vitamin D3", Category: "vitamin", Benefit: "Bone health and immune support", Dosage: "1000-2000 IU daily", Evidence: "strong"},
	{Name: "Omega-3 (EPA/DHA)", Category: "fatty acid", Benefit: "Triglyceride reduction", Dosage: "1-2 g daily", Evidence: "strong"},
	{Name: "Magnesium Glycinate", Category: "mineral", Benefit: "Sleep quality and muscle relaxation", Dosage: "200-400 mg evening", Evidence: "moderate"},
	{Name: "Berberine", Category: "botanical", Benefit: "Glucose regulation", Dosage: "500 mg with meals", Evidence: "moderate"},
	{Name: "Ashwagandha", Category: "adaptogen", Benefit: "Stress and cortisol reduction", Dosage: "300-600 mg daily", Evidence: "moderate"},
	{Name: "Psyllium Husk", Category: "fiber", Benefit: "LDL cholesterol and satiety", Dosage: "5-10 g daily", Evidence: "strong"},
	{Name: "L-Theanine", Category: "amino acid", Benefit: "Calm focus", Dosage: "100-200 mg as needed", Evidence: "limited"},
}

// AntiCharities are the destinations a commitment contract stake may name.
var AntiCharities = []string{
	"Opposing Political Party Fund",
	"Rival Sports Club Foundation",
	"Fossil Fuel Advocacy Group",
	"Society for Keeping Daylight Saving",
}
