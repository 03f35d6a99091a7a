package api

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/nightingaleproject/csv2fhir/deathrecord"
)

func newTestRouter() http.Handler {
	transformer := deathrecord.NewTransformer(deathrecord.DefaultGenerator(), zerolog.Nop())
	return NewRouter(transformer, nil, nil, zerolog.Nop()).Handler()
}

func uploadRequest(t *testing.T, rows []map[string]string, columns []string) *http.Request {
	t.Helper()

	var csvBuf bytes.Buffer
	w := csv.NewWriter(&csvBuf)
	w.Write(columns)
	for _, row := range rows {
		values := make([]string, len(columns))
		for i, col := range columns {
			values[i] = row[col]
		}
		w.Write(values)
	}
	w.Flush()

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	part, err := form.CreateFormFile("file", "records.csv")
	if err != nil {
		t.Fatalf("failed to build form: %v", err)
	}
	part.Write(csvBuf.Bytes())
	form.Close()

	req := httptest.NewRequest(http.MethodPost, "/fhir/json", &body)
	req.Header.Set("Content-Type", form.FormDataContentType())
	return req
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/fhir+json" {
		t.Errorf("content type = %s", ct)
	}
}

func TestUploadWithoutFile(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/fhir/json", nil)
	newTestRouter().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

// A row missing required columns is rejected per record, not per request: the
// batch still succeeds and the issue names the record index.
func TestUploadRejectsIncompleteRecords(t *testing.T) {
	columns := []string{deathrecord.FieldGivenName, deathrecord.FieldFamilyName}
	rows := []map[string]string{
		{deathrecord.FieldGivenName: "Alice", deathrecord.FieldFamilyName: "Smith"},
	}

	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, uploadRequest(t, rows, columns))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var response struct {
		Bundles []map[string]any `json:"bundles"`
		Errors  []struct {
			Record int    `json:"record"`
			Error  string `json:"error"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}

	if len(response.Bundles) != 0 {
		t.Errorf("bundle count = %d, want 0", len(response.Bundles))
	}
	if len(response.Errors) != 1 {
		t.Fatalf("error count = %d, want 1", len(response.Errors))
	}
	if response.Errors[0].Record != 0 {
		t.Errorf("failing record index = %d, want 0", response.Errors[0].Record)
	}
	if response.Errors[0].Error == "" {
		t.Error("issue carries no message")
	}
}

func TestDatabaseRouteDisabledWithoutSource(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/fhir/json/db", nil)
	newTestRouter().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404 when no database source is wired", rec.Code)
	}
}
