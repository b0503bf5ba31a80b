// Package catalog holds the static fixtures behind the doctor and patient
// views (patients, labs, literature, plans, genetics, supplements) and the
// filters over them.
package catalog

import (
	"fmt"
	"strings"
)

type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
)

type Patient struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	Email     string    `json:"email"`
	Condition string    `json:"condition"`
	Risk      RiskLevel `json:"riskLevel"`
	LastVisit string    `json:"lastVisit"`
	PlanID    string    `json:"planId,omitempty"`
}

// Biomarker is a lookup row with the optimal reference range.
type Biomarker struct {
	Name        string  `json:"name"`
	Unit        string  `json:"unit"`
	Low         float64 `json:"low"`
	High        float64 `json:"high"`
	Description string  `json:"description"`
}

type LabStatus string

const (
	LabLow     LabStatus = "low"
	LabNormal  LabStatus = "normal"
	LabHigh    LabStatus = "high"
	LabUnknown LabStatus = "unknown"
)

type LabResult struct {
	PatientID string    `json:"patientId"`
	Biomarker string    `json:"biomarker"`
	Value     float64   `json:"value"`
	Unit      string    `json:"unit"`
	Date      string    `json:"date"`
	Status    LabStatus `json:"status"`
}

type Literature struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Authors string   `json:"authors"`
	Journal string   `json:"journal"`
	Year    int      `json:"year"`
	DOI     string   `json:"doi"`
	Tags    []string `json:"tags"`
	Summary string   `json:"summary"`
}

// DOIURL is the outbound link for the entry, or "" without a DOI.
func (l Literature) DOIURL() string {
	doi := strings.TrimSpace(l.DOI)
	if doi == "" {
		return ""
	}
	return "https://doi.org/" + doi
}

type PlanAction struct {
	Category  string `json:"category"`
	Text      string `json:"text"`
	Frequency string `json:"frequency"`
}

type LifestylePlan struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Focus   string       `json:"focus"`
	Weeks   int          `json:"weeks"`
	Actions []PlanAction `json:"actions"`
}

type GeneticMarker struct {
	PatientID      string `json:"patientId"`
	Gene           string `json:"gene"`
	Variant        string `json:"variant"`
	Genotype       string `json:"genotype"`
	Impact         string `json:"impact"`
	Recommendation string `json:"recommendation"`
}

type Supplement struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Benefit  string `json:"benefit"`
	Dosage   string `json:"dosage"`
	Evidence string `json:"evidence"`
}

// NotFoundError is returned for unknown fixture identifiers.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}
