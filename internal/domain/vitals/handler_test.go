package vitals

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/vitalsync/vitalsync/internal/domain/session"
)

var errFailingStore = errors.New("store down")

func newTestHandler(sessions *mockSessions, store *mockStore) (*Handler, *echo.Echo) {
	svc := NewService(NewCache(), sessions, store, zerolog.Nop(), time.Second)
	return NewHandler(svc), echo.New()
}

func postJSON(e *echo.Echo, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func assertAck(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var ack ackResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &ack); err != nil {
		t.Fatalf("invalid ack body: %v", err)
	}
	if !ack.Success {
		t.Error("expected success true")
	}
}

func TestHandler_SubmitBloodPressure(t *testing.T) {
	h, e := newTestHandler(&mockSessions{sess: &session.Session{SessionID: "abc"}}, newMockStore())

	c, rec := postJSON(e, "/api/data", `{"value":"Result: 118 / 76, BPM : 80"}`)
	if err := h.SubmitBloodPressure(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertAck(t, rec)
}

func TestHandler_AcksWhenNoSession(t *testing.T) {
	store := newMockStore()
	h, e := newTestHandler(&mockSessions{}, store)

	c, rec := postJSON(e, "/api/data", `{"value":"Result: 118 / 76, BPM : 80"}`)
	if err := h.SubmitBloodPressure(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertAck(t, rec)
	if len(store.records) != 0 {
		t.Errorf("expected no records, got %d", len(store.records))
	}
}

func TestHandler_AcksOnStoreFailure(t *testing.T) {
	store := newMockStore()
	store.failErr = errFailingStore
	h, e := newTestHandler(&mockSessions{sess: &session.Session{SessionID: "abc"}}, store)

	c, rec := postJSON(e, "/api/temp", `{"value":"37.5"}`)
	if err := h.SubmitTemperature(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertAck(t, rec)
}

func TestHandler_AcksMalformedBody(t *testing.T) {
	h, e := newTestHandler(&mockSessions{}, newMockStore())

	c, rec := postJSON(e, "/api/spo2", `{not json`)
	if err := h.SubmitSpO2(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertAck(t, rec)
}

func TestHandler_GetLatest(t *testing.T) {
	h, e := newTestHandler(&mockSessions{sess: &session.Session{SessionID: "abc"}}, newMockStore())

	c, _ := postJSON(e, "/api/spo2", `{"value":"SpO2 : 98%, BPM : 75"}`)
	h.SubmitSpO2(c)
	c, _ = postJSON(e, "/api/temp", `{"value":"36.8"}`)
	h.SubmitTemperature(c)

	req := httptest.NewRequest(http.MethodGet, "/api/latest", nil)
	rec := httptest.NewRecorder()
	if err := h.GetLatest(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var snap Combined
	if err := json.Unmarshal(rec.Body.Bytes(), &snap); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if snap.SpO2 != "SpO2 : 98%, BPM : 75" {
		t.Errorf("unexpected spo2: %q", snap.SpO2)
	}
	if snap.Temp != "Temp : 36.8°C" {
		t.Errorf("unexpected temp: %q", snap.Temp)
	}
}

func TestHandler_Reset(t *testing.T) {
	h, e := newTestHandler(&mockSessions{sess: &session.Session{SessionID: "abc"}}, newMockStore())

	c, _ := postJSON(e, "/api/spo2", `{"value":"SpO2 : 98%, BPM : 75"}`)
	h.SubmitSpO2(c)

	c, rec := postJSON(e, "/api/reset", "")
	if err := h.Reset(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertAck(t, rec)

	req := httptest.NewRequest(http.MethodGet, "/api/latest", nil)
	getRec := httptest.NewRecorder()
	h.GetLatest(e.NewContext(req, getRec))

	var snap Combined
	json.Unmarshal(getRec.Body.Bytes(), &snap)
	if snap.BP != "" || snap.SpO2 != "" || snap.Temp != "" {
		t.Errorf("expected empty snapshot after reset, got %+v", snap)
	}
}
