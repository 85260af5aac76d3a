package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"carboncalc/internal/models"
	"carboncalc/internal/repository"
	"carboncalc/internal/service"
)

func TestHistoryHandler_ListWithDateFilters(t *testing.T) {
	auth := &mockAuth{parseID: 1}
	hist := &mockHistory{listResp: []models.CalculationRecord{
		{ID: "one", Result: models.FootprintResult{Total: 3.2}},
		{ID: "two", Result: models.FootprintResult{Total: 5.1}},
	}}
	s := &service.Service{Authorization: auth, History: hist}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/history/?from=2026-08-01&to=2026-08-31", nil)
	applyAuthHeader(req, "valid")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}

	var m map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if int(m["count"].(float64)) != 2 {
		t.Fatalf("expected count=2, got %v", m["count"])
	}

	wantFrom := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	if !hist.lastFrom.Equal(wantFrom) {
		t.Fatalf("expected from=%v, got %v", wantFrom, hist.lastFrom)
	}
	// date-only 'to' becomes end-of-day inclusive
	wantTo := time.Date(2026, 8, 31, 23, 59, 59, 999999999, time.UTC)
	if !hist.lastTo.Equal(wantTo) {
		t.Fatalf("expected to=%v, got %v", wantTo, hist.lastTo)
	}
}

func TestHistoryHandler_BadTimeFormats(t *testing.T) {
	auth := &mockAuth{parseID: 1}
	s := &service.Service{Authorization: auth, History: &mockHistory{}}
	r := newTestRouter(s)

	for _, u := range []string{
		"/api/v1/history/?from=not-a-date",
		"/api/v1/history/?to=31-08-2026",
		"/api/v1/history/?from=2026-08-31&to=2026-08-01",
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, u, nil)
		applyAuthHeader(req, "valid")
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %s, got %d", u, w.Code)
		}
	}
}

func TestHistoryHandler_Latest(t *testing.T) {
	auth := &mockAuth{parseID: 1}
	hist := &mockHistory{latestResp: models.CalculationRecord{
		ID:     "abc",
		Result: models.FootprintResult{Total: 4.2},
	}}
	s := &service.Service{Authorization: auth, History: hist}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/history/latest", nil)
	applyAuthHeader(req, "valid")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	var rec models.CalculationRecord
	if err := json.Unmarshal(w.Body.Bytes(), &rec); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if rec.ID != "abc" || rec.Result.Total != 4.2 {
		t.Fatalf("unexpected record: %+v", rec)
	}
}

func TestHistoryHandler_LatestEmptyIs404(t *testing.T) {
	auth := &mockAuth{parseID: 1}
	hist := &mockHistory{latestErr: repository.ErrNoCalculations}
	s := &service.Service{Authorization: auth, History: hist}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/history/latest", nil)
	applyAuthHeader(req, "valid")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for empty history, got %d", w.Code)
	}
}

func TestHistoryHandler_ListServiceError(t *testing.T) {
	auth := &mockAuth{parseID: 1}
	hist := &mockHistory{listErr: errors.New("db down")}
	s := &service.Service{Authorization: auth, History: hist}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/history/", nil)
	applyAuthHeader(req, "valid")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}
