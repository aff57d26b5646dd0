package patient

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// The payload contract is a declarative shape: required fields and their
// types, with the expected shape echoed back on mismatch so callers can fix
// their request without reading docs.

type fieldSpec struct {
	name     string
	typ      string // "integer", "string", "date"
	required bool
}

var patientShape = []fieldSpec{
	{name: "id", typ: "integer", required: true},
	{name: "firstName", typ: "string", required: true},
	{name: "lastName", typ: "string", required: true},
	{name: "dateOfBirth", typ: "date", required: true},
	{name: "gender", typ: "string", required: true},
	{name: "lastVisitDate", typ: "date", required: true},
	{name: "patientDiagnosisDescription", typ: "string", required: false},
}

// Schema describes the expected payload shape. When requireID is false (the
// update path takes the id from the URL) the id is listed but not required.
func Schema(requireID bool) map[string]interface{} {
	properties := make(map[string]interface{}, len(patientShape))
	var required []string
	for _, f := range patientShape {
		typ := f.typ
		if typ == "date" {
			typ = "string (YYYY-MM-DD)"
		}
		properties[f.name] = map[string]string{"type": typ}
		req := f.required
		if f.name == "id" {
			req = requireID
		}
		if req {
			required = append(required, f.name)
		}
	}
	return map[string]interface{}{
		"type":       "object",
		"required":   required,
		"properties": properties,
	}
}

// ValidatePayload checks raw JSON against the patient shape. It returns nil
// when the payload conforms, or an error naming the first offending field.
func ValidatePayload(raw []byte, requireID bool) error {
	var body map[string]interface{}
	if err := json.Unmarshal(raw, &body); err != nil {
		return fmt.Errorf("body is not a JSON object")
	}

	for _, f := range patientShape {
		v, ok := body[f.name]
		if !ok || v == nil {
			req := f.required
			if f.name == "id" {
				req = requireID
			}
			if req {
				return fmt.Errorf("missing required field %q", f.name)
			}
			continue
		}

		switch f.typ {
		case "integer":
			n, ok := v.(float64)
			if !ok || n != math.Trunc(n) {
				return fmt.Errorf("field %q must be an integer", f.name)
			}
		case "string":
			if _, ok := v.(string); !ok {
				return fmt.Errorf("field %q must be a string", f.name)
			}
		case "date":
			s, ok := v.(string)
			if !ok {
				return fmt.Errorf("field %q must be a string", f.name)
			}
			if _, err := time.Parse("2006-01-02", s); err != nil {
				return fmt.Errorf("field %q must be a date in YYYY-MM-DD form", f.name)
			}
		}
	}
	return nil
}

// DecodePayload unmarshals a validated payload into a Patient.
func DecodePayload(raw []byte) (*Patient, error) {
	var p Patient
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode patient payload: %w", err)
	}
	return &p, nil
}
