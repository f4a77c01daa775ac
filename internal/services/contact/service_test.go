package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gorilla/mux"

	"pizzeria-backend/internal/logger"
	"pizzeria-backend/internal/models"
)

const contactID = "66666666-6666-4666-8666-666666666666"

type stubStore struct {
	created  *models.Contact
	contacts []models.Contact
	total    int
	contact  *models.Contact
}

func (s *stubStore) CreateContact(ctx context.Context, c *models.Contact) error {
	c.ID = contactID
	s.created = c
	return nil
}

func (s *stubStore) CountContacts(ctx context.Context, status *string) (int, error) {
	return s.total, nil
}

func (s *stubStore) ListContacts(ctx context.Context, status *string, limit, offset int) ([]models.Contact, error) {
	return s.contacts, nil
}

func (s *stubStore) GetContact(ctx context.Context, id string) (*models.Contact, error) {
	return s.contact, nil
}

func (s *stubStore) UpdateStatus(ctx context.Context, id string, status models.ContactStatus) (*models.Contact, error) {
	c := *s.contact
	c.Status = status
	return &c, nil
}

func TestCreate(t *testing.T) {
	store := &stubStore{}
	svc := NewService(store)

	c, err := svc.Create(context.Background(), &models.CreateContactRequest{
		Name:    "Jamie Lee",
		Email:   "jamie@example.com",
		Subject: "Catering inquiry",
		Message: "Do you cater events of around forty people?",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if c.Status != models.ContactNew {
		t.Errorf("status = %s, want NEW", c.Status)
	}
	if store.created == nil {
		t.Fatal("contact never reached the store")
	}
}

func TestCreate_ShortMessage(t *testing.T) {
	store := &stubStore{}
	svc := NewService(store)

	_, err := svc.Create(context.Background(), &models.CreateContactRequest{
		Name:    "Jamie Lee",
		Email:   "jamie@example.com",
		Subject: "Hi",
		Message: "Hi",
	})
	if err == nil {
		t.Fatal("expected a validation error")
	}
	if store.created != nil {
		t.Error("invalid contact reached the store")
	}
}

func TestList_DefaultLimit(t *testing.T) {
	svc := NewService(&stubStore{total: 25})

	_, p, err := svc.List(context.Background(), url.Values{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if p.Limit != 10 {
		t.Errorf("limit = %d, want default 10", p.Limit)
	}
	if p.TotalPages != 3 {
		t.Errorf("totalPages = %d, want 3", p.TotalPages)
	}
}

func TestHandler_Create(t *testing.T) {
	router := mux.NewRouter()
	NewHandler(NewService(&stubStore{}), logger.New("test")).Register(router)

	body, _ := json.Marshal(map[string]any{
		"name":    "Jamie Lee",
		"email":   "jamie@example.com",
		"subject": "Catering inquiry",
		"message": "Do you cater events of around forty people?",
	})
	req := httptest.NewRequest(http.MethodPost, "/contact", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Contact struct {
			ID    string `json:"id"`
			Name  string `json:"name"`
			Email string `json:"email"`
		} `json:"contact"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success || resp.Message != "Thank you for your message. We will get back to you soon!" {
		t.Errorf("envelope = %+v", resp)
	}
	if resp.Contact.ID != contactID {
		t.Errorf("contact = %+v", resp.Contact)
	}
}

func TestUpdateStatus(t *testing.T) {
	store := &stubStore{contact: &models.Contact{ID: contactID, Status: models.ContactNew}}
	svc := NewService(store)

	c, err := svc.UpdateStatus(context.Background(), contactID, "READ")
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if c.Status != models.ContactRead {
		t.Errorf("status = %s, want READ", c.Status)
	}

	if _, err := svc.UpdateStatus(context.Background(), contactID, "PENDING"); err == nil {
		t.Fatal("expected order-only status to be rejected")
	}
}
