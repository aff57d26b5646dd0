package patient

import "strings"

// Patient maps to the patients table. The JSON names are the API's wire
// contract; dates are ISO strings (YYYY-MM-DD), not timestamps.
type Patient struct {
	ID                   int64   `db:"id" json:"id"`
	FirstName            string  `db:"first_name" json:"firstName"`
	LastName             string  `db:"last_name" json:"lastName"`
	DateOfBirth          string  `db:"date_of_birth" json:"dateOfBirth"`
	Gender               string  `db:"gender" json:"gender"`
	LastVisitDate        string  `db:"last_visit_date" json:"lastVisitDate"`
	DiagnosisDescription *string `db:"diagnosis_description" json:"patientDiagnosisDescription,omitempty"`
}

// Diagnosis returns the diagnosis text and whether the record has one.
func (p *Patient) Diagnosis() (string, bool) {
	if p.DiagnosisDescription == nil || *p.DiagnosisDescription == "" {
		return "", false
	}
	return *p.DiagnosisDescription, true
}

// fieldValue resolves a wire field name to its value and whether the field is
// present on this record. The id is not listed; projections always carry it.
func (p *Patient) fieldValue(name string) (interface{}, bool) {
	switch name {
	case "firstName":
		return p.FirstName, true
	case "lastName":
		return p.LastName, true
	case "dateOfBirth":
		return p.DateOfBirth, true
	case "gender":
		return p.Gender, true
	case "lastVisitDate":
		return p.LastVisitDate, true
	case "patientDiagnosisDescription":
		if p.DiagnosisDescription == nil {
			return nil, false
		}
		return *p.DiagnosisDescription, true
	}
	return nil, false
}

// Project returns a partial view of the record: the id plus every field whose
// query flag is explicitly "true" (case-insensitive) and which is present on
// the record. Unknown flags are ignored.
func (p *Patient) Project(flags map[string]string) map[string]interface{} {
	out := map[string]interface{}{"id": p.ID}
	for name, raw := range flags {
		if !strings.EqualFold(raw, "true") {
			continue
		}
		if v, ok := p.fieldValue(name); ok {
			out[name] = v
		}
	}
	return out
}
