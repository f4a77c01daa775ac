package reservation

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gorilla/mux"

	"pizzeria-backend/internal/logger"
	"pizzeria-backend/internal/models"
	"pizzeria-backend/internal/validation"
)

const reservationID = "55555555-5555-4555-8555-555555555555"

type stubStore struct {
	created      *models.Reservation
	reservations []models.Reservation
	total        int
	reservation  *models.Reservation

	lastFilter models.ReservationFilter
}

func (s *stubStore) CreateReservation(ctx context.Context, res *models.Reservation) error {
	res.ID = reservationID
	s.created = res
	return nil
}

func (s *stubStore) CountReservations(ctx context.Context, f models.ReservationFilter) (int, error) {
	s.lastFilter = f
	return s.total, nil
}

func (s *stubStore) ListReservations(ctx context.Context, f models.ReservationFilter, limit, offset int) ([]models.Reservation, error) {
	return s.reservations, nil
}

func (s *stubStore) GetReservation(ctx context.Context, id string) (*models.Reservation, error) {
	return s.reservation, nil
}

func (s *stubStore) UpdateStatus(ctx context.Context, id string, status models.ReservationStatus) (*models.Reservation, error) {
	r := *s.reservation
	r.Status = status
	return &r, nil
}

func validRequest() *models.CreateReservationRequest {
	return &models.CreateReservationRequest{
		GuestName:       "Jamie Lee",
		GuestEmail:      "jamie@example.com",
		GuestPhone:      "+1 555 0100",
		ReservationDate: "2025-06-15T18:30",
		NumberOfGuests:  4,
	}
}

func TestCreate(t *testing.T) {
	store := &stubStore{}
	svc := NewService(store)

	res, err := svc.Create(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if res.Status != models.ReservationPending {
		t.Errorf("status = %s, want PENDING", res.Status)
	}
	want := time.Date(2025, 6, 15, 18, 30, 0, 0, time.UTC)
	if !res.ReservationDate.Equal(want) {
		t.Errorf("date = %v, want %v", res.ReservationDate, want)
	}
	if store.created == nil {
		t.Fatal("reservation never reached the store")
	}
}

func TestCreate_BadDate(t *testing.T) {
	store := &stubStore{}
	svc := NewService(store)

	req := validRequest()
	req.ReservationDate = "next friday"

	_, err := svc.Create(context.Background(), req)
	verr, ok := err.(*validation.Error)
	if !ok {
		t.Fatalf("expected *validation.Error, got %T (%v)", err, err)
	}
	if verr.Fields[0].Field != "reservationDate" {
		t.Errorf("field = %q, want reservationDate", verr.Fields[0].Field)
	}
	if store.created != nil {
		t.Error("invalid reservation reached the store")
	}
}

func TestList_DateRangeFilter(t *testing.T) {
	store := &stubStore{}
	svc := NewService(store)

	params := url.Values{}
	params.Set("status", "CONFIRMED")
	params.Set("from", "2025-06-01")
	params.Set("to", "2025-06-30")

	if _, _, err := svc.List(context.Background(), params); err != nil {
		t.Fatalf("List: %v", err)
	}
	f := store.lastFilter
	if f.Status == nil || *f.Status != "CONFIRMED" {
		t.Errorf("status filter = %v", f.Status)
	}
	if f.From == nil || f.To == nil {
		t.Fatalf("date bounds missing: %+v", f)
	}
	if f.From.Day() != 1 || f.To.Day() != 30 {
		t.Errorf("bounds = %v .. %v", f.From, f.To)
	}
}

func TestList_BadBound(t *testing.T) {
	svc := NewService(&stubStore{})

	params := url.Values{}
	params.Set("from", "whenever")

	if _, _, err := svc.List(context.Background(), params); err == nil {
		t.Fatal("expected an error for an unparseable bound")
	}
}

func TestHandler_Create(t *testing.T) {
	router := mux.NewRouter()
	NewHandler(NewService(&stubStore{}), logger.New("test")).Register(router)

	body, _ := json.Marshal(validRequest())
	req := httptest.NewRequest(http.MethodPost, "/reservations", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Success     bool   `json:"success"`
		Message     string `json:"message"`
		Reservation struct {
			ID             string `json:"id"`
			GuestName      string `json:"guestName"`
			NumberOfGuests int    `json:"numberOfGuests"`
			Status         string `json:"status"`
		} `json:"reservation"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success || resp.Message != "Reservation submitted. We will confirm shortly." {
		t.Errorf("envelope = %+v", resp)
	}
	if resp.Reservation.Status != "PENDING" || resp.Reservation.GuestName != "Jamie Lee" {
		t.Errorf("reservation = %+v", resp.Reservation)
	}
}

func TestHandler_UpdateStatus(t *testing.T) {
	store := &stubStore{reservation: &models.Reservation{ID: reservationID, Status: models.ReservationConfirmed}}
	router := mux.NewRouter()
	NewHandler(NewService(store), logger.New("test")).Register(router)

	req := httptest.NewRequest(http.MethodPatch, "/reservations/"+reservationID+"/status",
		bytes.NewReader([]byte(`{"status":"SEATED"}`)))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodPatch, "/reservations/"+reservationID+"/status",
		bytes.NewReader([]byte(`{"status":"MAYBE"}`)))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var resp struct {
		ValidStatuses []string `json:"validStatuses"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.ValidStatuses) != 6 {
		t.Errorf("validStatuses = %v, want the 6 reservation statuses", resp.ValidStatuses)
	}
}
