package catalog

import "strings"

type Tab string

const (
	TabOverview Tab = "overview"
	TabLabs     Tab = "labs"
	TabGenetics Tab = "genetics"
	TabPlan     Tab = "plan"
)

var Tabs = []Tab{TabOverview, TabLabs, TabGenetics, TabPlan}

// ParseTab maps input to a known tab, falling back to overview.
func ParseTab(s string) Tab {
	t := Tab(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Tabs {
		if t == known {
			return t
		}
	}
	return TabOverview
}

// PatientDetail is the doctor's per-patient view. Only the section for Tab
// is populated; Patient is always set.
type PatientDetail struct {
	Tab     Tab             `json:"tab"`
	Patient Patient         `json:"patient"`
	Labs    []LabResult     `json:"labs,omitempty"`
	Markers []GeneticMarker `json:"markers,omitempty"`
	Plan    *LifestylePlan  `json:"plan,omitempty"`
	Flagged int             `json:"flaggedLabs"`
}

func GetPatientDetail(id string, tab Tab) (*PatientDetail, error) {
	p, err := GetPatient(id)
	if err != nil {
		return nil, err
	}
	labs, err := LabsForPatient(id)
	if err != nil {
		return nil, err
	}

	d := &PatientDetail{Tab: ParseTab(string(tab)), Patient: p}
	for _, l := range labs {
		if l.Status == LabLow || l.Status == LabHigh {
			d.Flagged++
		}
	}

	switch d.Tab {
	case TabLabs:
		d.Labs = labs
	case TabGenetics:
		d.Markers = MarkersForPatient(id)
	case TabPlan:
		// A patient without an assigned plan renders the empty fallback.
		if p.PlanID != "" {
			plan, err := GetPlan(p.PlanID)
			if err != nil {
				return nil, err
			}
			d.Plan = &plan
		}
	}
	return d, nil
}
