package patient

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/patientd/patientd/pkg/respond"
)

func newTestHandler() (*Handler, *mockRepo, *echo.Echo) {
	repo := newMockRepo()
	h := NewHandler(NewService(repo))
	e := echo.New()
	return h, repo, e
}

func TestHandler_GetByID_FullRecord(t *testing.T) {
	h, repo, e := newTestHandler()
	repo.Put(nil, samplePatient())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("patientId")
	c.SetParamValues("1")

	if err := h.GetByID(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	var body struct {
		Data Patient `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body.Data.FirstName != "John" || body.Data.DiagnosisDescription == nil {
		t.Errorf("expected full record, got %s", rec.Body.String())
	}
}

func TestHandler_GetByID_Projection(t *testing.T) {
	h, repo, e := newTestHandler()
	repo.Put(nil, samplePatient())

	req := httptest.NewRequest(http.MethodGet, "/?firstName=true", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("patientId")
	c.SetParamValues("1")

	if err := h.GetByID(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var body struct {
		Data map[string]interface{} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(body.Data) != 2 {
		t.Fatalf("expected exactly {id, firstName}, got %v", body.Data)
	}
	if body.Data["firstName"] != "John" {
		t.Errorf("unexpected projection: %v", body.Data)
	}
}

func TestHandler_GetByID_NonNumericID(t *testing.T) {
	h, _, e := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("patientId")
	c.SetParamValues("abc")

	err := h.GetByID(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}

func TestHandler_GetByID_NotFound(t *testing.T) {
	h, _, e := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("patientId")
	c.SetParamValues("9999")

	err := h.GetByID(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %v", err)
	}
}

func TestHandler_List(t *testing.T) {
	h, repo, e := newTestHandler()
	repo.Put(nil, samplePatient())
	repo.Put(nil, &Patient{ID: 2, FirstName: "Alice", LastName: "Smith"})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var body struct {
		Data []Patient `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(body.Data) != 2 {
		t.Errorf("expected 2 patients, got %d", len(body.Data))
	}
}

func TestHandler_List_EmptyCollection(t *testing.T) {
	h, _, e := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), `"data":[]`) {
		t.Errorf("expected empty array, got %s", rec.Body.String())
	}
}

func TestHandler_Create(t *testing.T) {
	h, repo, e := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(validBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if _, ok := repo.patients[1]; !ok {
		t.Error("expected patient to be stored")
	}
}

func TestHandler_Create_MissingBody(t *testing.T) {
	h, _, e := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}

func TestHandler_Create_SchemaMismatchIncludesShape(t *testing.T) {
	h, _, e := newTestHandler()

	body := strings.Replace(validBody, `"firstName": "John",`, "", 1)
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
	vf, ok := he.Message.(respond.ValidationFailure)
	if !ok {
		t.Fatalf("expected ValidationFailure payload, got %T", he.Message)
	}
	if vf.Schema == nil {
		t.Error("expected expected-shape schema in validation error")
	}
}

func TestHandler_Update(t *testing.T) {
	h, repo, e := newTestHandler()
	repo.Put(nil, samplePatient())

	body := strings.Replace(validBody, `"firstName": "John"`, `"firstName": "Johnny"`, 1)
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("patientId")
	c.SetParamValues("1")

	if err := h.Update(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.patients[1].FirstName != "Johnny" {
		t.Errorf("expected update applied, got %s", repo.patients[1].FirstName)
	}
	if !strings.Contains(rec.Body.String(), "Patient updated successfully") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestHandler_Update_ValidationLeavesRecordUnchanged(t *testing.T) {
	h, repo, e := newTestHandler()
	repo.Put(nil, samplePatient())

	body := strings.Replace(validBody, `"firstName": "John",`, "", 1)
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("patientId")
	c.SetParamValues("1")

	err := h.Update(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
	if repo.patients[1].FirstName != "John" {
		t.Error("failed validation must not touch the stored record")
	}
	if repo.updates != 0 {
		t.Error("no store write expected on validation failure")
	}
}

func TestHandler_Update_BodyIDIgnored(t *testing.T) {
	h, repo, e := newTestHandler()
	repo.Put(nil, samplePatient())

	body := strings.Replace(validBody, `"id": 1,`, `"id": 77,`, 1)
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("patientId")
	c.SetParamValues("1")

	if err := h.Update(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := repo.patients[77]; ok {
		t.Error("path id must win over body id")
	}
}
