package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/room-booking/internal/client"
	"github.com/iliyamo/room-booking/internal/model"
)

func TestBookingListWithoutTokenFailsBeforeNetwork(t *testing.T) {
	var calls int64
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
	}))
	defer backend.Close()

	h := &BookingHandler{Bookings: &client.Bookings{BaseURL: backend.URL}}
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/bookings", nil)
	rec := httptest.NewRecorder()
	if err := h.List(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if msg := decodeMessage(t, rec); msg != "Authentication required" {
		t.Fatalf("unexpected message %q", msg)
	}
	if atomic.LoadInt64(&calls) != 0 {
		t.Fatalf("expected no network call, backend saw %d", calls)
	}
}

func TestBookingCreateDerivesOneHourSlot(t *testing.T) {
	var submitted model.CreateBookingRequest
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&submitted); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"b1","roomId":"r1","userId":"u1","startTime":"2026-07-01T14:00:00Z","endTime":"2026-07-01T15:00:00Z","price":104,"location":"Berlin"}`))
	}))
	defer backend.Close()

	h := &BookingHandler{Bookings: &client.Bookings{BaseURL: backend.URL}}
	e := echo.New()
	e.Validator = NewValidator()
	// The picked time is mid-hour; the handler aligns it and derives the end.
	req := httptest.NewRequest(http.MethodPost, "/v1/bookings", strings.NewReader(`{"roomId":"r1","startTime":"2026-07-01T14:45:00Z"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("Authorization", "Bearer tok")
	rec := httptest.NewRecorder()
	if err := h.Create(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	if submitted.StartTime != "2026-07-01T14:00:00Z" || submitted.EndTime != "2026-07-01T15:00:00Z" {
		t.Fatalf("slot invariant violated: %+v", submitted)
	}

	var booking model.Booking
	if err := json.Unmarshal(rec.Body.Bytes(), &booking); err != nil {
		t.Fatalf("bad response: %v", err)
	}
	if booking.ID != "b1" || booking.Price != 104 {
		t.Fatalf("backend booking not returned as-is: %+v", booking)
	}
}

func TestBookingCreateBackendRejectionKeepsStatusAndMessage(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("room already booked for this slot"))
	}))
	defer backend.Close()

	h := &BookingHandler{Bookings: &client.Bookings{BaseURL: backend.URL}}
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/v1/bookings", strings.NewReader(`{"roomId":"r1","startTime":"2026-07-01T14:00:00Z"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("Authorization", "Bearer tok")
	rec := httptest.NewRecorder()
	if err := h.Create(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	if msg := decodeMessage(t, rec); msg != "room already booked for this slot" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestRoomDetailNotFoundIsLocal(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"r1","name":"Aurora","location":"Berlin","basePrice":100,"capacity":4}]`))
	}))
	defer backend.Close()

	h := &RoomHandler{Rooms: &client.Rooms{BaseURL: backend.URL}}
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/rooms/r2", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("r2")
	if err := h.Get(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if msg := decodeMessage(t, rec); msg != "room not found" {
		t.Fatalf("unexpected message %q", msg)
	}
}
