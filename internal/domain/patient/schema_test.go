package patient

import (
	"strings"
	"testing"
)

const validBody = `{
	"id": 1,
	"firstName": "John",
	"lastName": "Doe",
	"dateOfBirth": "1980-05-15",
	"gender": "Male",
	"lastVisitDate": "2024-02-15",
	"patientDiagnosisDescription": "Hypertension"
}`

func TestValidatePayload_Valid(t *testing.T) {
	if err := ValidatePayload([]byte(validBody), true); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidatePayload_MissingFirstName(t *testing.T) {
	body := strings.Replace(validBody, `"firstName": "John",`, "", 1)
	err := ValidatePayload([]byte(body), true)
	if err == nil || !strings.Contains(err.Error(), "firstName") {
		t.Errorf("expected firstName error, got %v", err)
	}
}

func TestValidatePayload_DiagnosisOptional(t *testing.T) {
	body := strings.Replace(validBody, `,
	"patientDiagnosisDescription": "Hypertension"`, "", 1)
	if err := ValidatePayload([]byte(body), true); err != nil {
		t.Errorf("diagnosis must be optional: %v", err)
	}
}

func TestValidatePayload_IDOptionalForUpdate(t *testing.T) {
	body := strings.Replace(validBody, `"id": 1,`, "", 1)
	if err := ValidatePayload([]byte(body), false); err != nil {
		t.Errorf("id must be optional when not required: %v", err)
	}
	if err := ValidatePayload([]byte(body), true); err == nil {
		t.Error("id must be required for add")
	}
}

func TestValidatePayload_NonIntegerID(t *testing.T) {
	body := strings.Replace(validBody, `"id": 1,`, `"id": 1.5,`, 1)
	if err := ValidatePayload([]byte(body), true); err == nil {
		t.Error("expected error for fractional id")
	}

	body = strings.Replace(validBody, `"id": 1,`, `"id": "1",`, 1)
	if err := ValidatePayload([]byte(body), true); err == nil {
		t.Error("expected error for string id")
	}
}

func TestValidatePayload_BadDate(t *testing.T) {
	body := strings.Replace(validBody, "1980-05-15", "15/05/1980", 1)
	err := ValidatePayload([]byte(body), true)
	if err == nil || !strings.Contains(err.Error(), "dateOfBirth") {
		t.Errorf("expected date error, got %v", err)
	}
}

func TestValidatePayload_WrongType(t *testing.T) {
	body := strings.Replace(validBody, `"gender": "Male",`, `"gender": 3,`, 1)
	if err := ValidatePayload([]byte(body), true); err == nil {
		t.Error("expected error for numeric gender")
	}
}

func TestValidatePayload_NotAnObject(t *testing.T) {
	if err := ValidatePayload([]byte(`[1,2,3]`), true); err == nil {
		t.Error("expected error for non-object body")
	}
}

func TestSchema_RequiredListTracksID(t *testing.T) {
	withID := Schema(true)["required"].([]string)
	withoutID := Schema(false)["required"].([]string)
	if len(withID) != len(withoutID)+1 {
		t.Errorf("expected id to be dropped from required: %v vs %v", withID, withoutID)
	}
	for _, name := range withoutID {
		if name == "id" {
			t.Error("id must not be required for update")
		}
	}
}

func TestDecodePayload(t *testing.T) {
	p, err := DecodePayload([]byte(validBody))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != 1 || p.FirstName != "John" {
		t.Errorf("unexpected patient: %+v", p)
	}
	if text, ok := p.Diagnosis(); !ok || text != "Hypertension" {
		t.Errorf("unexpected diagnosis: %q", text)
	}
}
