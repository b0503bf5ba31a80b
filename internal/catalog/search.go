package catalog

import "strings"

// matches reports whether q is a case-insensitive substring of any field.
// An empty query matches everything.
func matches(q string, fields ...string) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// SearchPatients filters by name, condition or email. risk == "" keeps all
// risk levels.
func SearchPatients(q string, risk RiskLevel) []Patient {
	out := make([]Patient, 0, len(patients))
	for _, p := range patients {
		if risk != "" && p.Risk != risk {
			continue
		}
		if matches(q, p.Name, p.Condition, p.Email) {
			out = append(out, p)
		}
	}
	return out
}

func GetPatient(id string) (Patient, error) {
	for _, p := range patients {
		if p.ID == id {
			return p, nil
		}
	}
	return Patient{}, NotFoundError{Kind: "patient", ID: id}
}

// SearchLiterature filters by title, authors or journal, optionally
// restricted to entries carrying tag.
func SearchLiterature(q, tag string) []Literature {
	tag = strings.ToLower(strings.TrimSpace(tag))
	out := make([]Literature, 0, len(literature))
	for _, l := range literature {
		if tag != "" && !hasTag(l.Tags, tag) {
			continue
		}
		if matches(q, l.Title, l.Authors, l.Journal) {
			out = append(out, l)
		}
	}
	return out
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

func SearchSupplements(q string) []Supplement {
	out := make([]Supplement, 0, len(supplements))
	for _, s := range supplements {
		if matches(q, s.Name, s.Category, s.Benefit) {
			out = append(out, s)
		}
	}
	return out
}

func SearchGenetics(q string) []GeneticMarker {
	out := make([]GeneticMarker, 0, len(geneticMarkers))
	for _, g := range geneticMarkers {
		if matches(q, g.Gene, g.Variant, g.Impact) {
			out = append(out, g)
		}
	}
	return out
}

func Biomarkers() []Biomarker {
	return append([]Biomarker(nil), biomarkers...)
}

func LookupBiomarker(name string) (Biomarker, bool) {
	for _, b := range biomarkers {
		if strings.EqualFold(b.Name, name) {
			return b, true
		}
	}
	return Biomarker{}, false
}

// ClassifyLab compares value against the biomarker's range. Unknown
// biomarkers are reported as LabUnknown.
func ClassifyLab(name string, value float64) LabStatus {
	b, ok := LookupBiomarker(name)
	if !ok {
		return LabUnknown
	}
	switch {
	case value < b.Low:
		return LabLow
	case value > b.High:
		return LabHigh
	default:
		return LabNormal
	}
}

// LabsForPatient returns the patient's results with unit and status filled
// from the biomarker table.
func LabsForPatient(patientID string) ([]LabResult, error) {
	if _, err := GetPatient(patientID); err != nil {
		return nil, err
	}
	var out []LabResult
	for _, r := range labResults {
		if r.PatientID != patientID {
			continue
		}
		if b, ok := LookupBiomarker(r.Biomarker); ok {
			r.Unit = b.Unit
		}
		r.Status = ClassifyLab(r.Biomarker, r.Value)
		out = append(out, r)
	}
	return out, nil
}

func MarkersForPatient(patientID string) []GeneticMarker {
	var out []GeneticMarker
	for _, g := range geneticMarkers {
		if g.PatientID == patientID {
			out = append(out, g)
		}
	}
	return out
}

func Plans() []LifestylePlan {
	return append([]LifestylePlan(nil), plans...)
}

func GetPlan(id string) (LifestylePlan, error) {
	for _, p := range plans {
		if p.ID == id {
			return p, nil
		}
	}
	return LifestylePlan{}, NotFoundError{Kind: "plan", ID: id}
}

func IsAntiCharity(name string) bool {
	for _, c := range AntiCharities {
		if c == name {
			return true
		}
	}
	return false
}
