package patient

import "testing"

func strPtr(s string) *string { return &s }

func samplePatient() *Patient {
	return &Patient{
		ID:                   1,
		FirstName:            "John",
		LastName:             "Doe",
		DateOfBirth:          "1980-05-15",
		Gender:               "Male",
		LastVisitDate:        "2024-02-15",
		DiagnosisDescription: strPtr("Hypertension, Type 2 Diabetes"),
	}
}

func TestDiagnosis(t *testing.T) {
	p := samplePatient()
	text, ok := p.Diagnosis()
	if !ok || text != "Hypertension, Type 2 Diabetes" {
		t.Errorf("unexpected diagnosis: %q, %v", text, ok)
	}

	p.DiagnosisDescription = nil
	if _, ok := p.Diagnosis(); ok {
		t.Error("nil diagnosis must not be present")
	}

	p.DiagnosisDescription = strPtr("")
	if _, ok := p.Diagnosis(); ok {
		t.Error("empty diagnosis must not be present")
	}
}

func TestProject_SingleField(t *testing.T) {
	p := samplePatient()
	out := p.Project(map[string]string{"firstName": "true"})
	if len(out) != 2 {
		t.Fatalf("expected exactly id+firstName, got %v", out)
	}
	if out["id"] != int64(1) || out["firstName"] != "John" {
		t.Errorf("unexpected projection: %v", out)
	}
}

func TestProject_CaseInsensitiveFlag(t *testing.T) {
	p := samplePatient()
	out := p.Project(map[string]string{"lastName": "TRUE"})
	if out["lastName"] != "Doe" {
		t.Errorf("expected TRUE to count as true, got %v", out)
	}
}

func TestProject_NonTrueFlagExcluded(t *testing.T) {
	p := samplePatient()
	out := p.Project(map[string]string{"firstName": "false", "gender": "1"})
	if len(out) != 1 {
		t.Errorf("only id expected, got %v", out)
	}
}

func TestProject_AbsentFieldSkipped(t *testing.T) {
	p := samplePatient()
	p.DiagnosisDescription = nil
	out := p.Project(map[string]string{"patientDiagnosisDescription": "true"})
	if _, ok := out["patientDiagnosisDescription"]; ok {
		t.Errorf("absent field must be skipped: %v", out)
	}
}

func TestProject_UnknownFlagIgnored(t *testing.T) {
	p := samplePatient()
	out := p.Project(map[string]string{"ssn": "true"})
	if len(out) != 1 {
		t.Errorf("unknown flag must be ignored: %v", out)
	}
}
