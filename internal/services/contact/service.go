package contact

import (
	"context"
	"net/url"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"pizzeria-backend/internal/apierr"
	"pizzeria-backend/internal/models"
	"pizzeria-backend/internal/query"
	"pizzeria-backend/internal/validation"
)

const defaultContactLimit = 10

// Store is the storage collaborator for contact messages.
type Store interface {
	CreateContact(ctx context.Context, c *models.Contact) error
	CountContacts(ctx context.Context, status *string) (int, error)
	ListContacts(ctx context.Context, status *string, limit, offset int) ([]models.Contact, error)
	GetContact(ctx context.Context, id string) (*models.Contact, error)
	UpdateStatus(ctx context.Context, id string, status models.ContactStatus) (*models.Contact, error)
}

// Service implements contact form intake and querying.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) Create(ctx context.Context, req *models.CreateContactRequest) (*models.Contact, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	c := &models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
		Status:  models.ContactNew,
	}
	if err := s.store.CreateContact(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// List returns one page of contact messages, newest first, optionally
// filtered by status. Count and page queries run concurrently.
func (s *Service) List(ctx context.Context, params url.Values) ([]models.Contact, query.Pagination, error) {
	page := query.Page(params.Get("page"))
	limit := query.Limit(params.Get("limit"), defaultContactLimit)

	var status *string
	if raw := params.Get("status"); raw != "" {
		status = &raw
	}

	var (
		total    int
		contacts []models.Contact
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, err = s.store.CountContacts(gctx, status)
		return err
	})
	g.Go(func() error {
		var err error
		contacts, err = s.store.ListContacts(gctx, status, limit, query.Offset(page, limit))
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, query.Pagination{}, err
	}

	if contacts == nil {
		contacts = []models.Contact{}
	}
	return contacts, query.NewPagination(page, limit, total), nil
}

func (s *Service) Get(ctx context.Context, id string) (*models.Contact, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apierr.NotFound("Contact")
	}
	return s.store.GetContact(ctx, id)
}

// UpdateStatus sets a new status after checking membership in the contact
// status set.
func (s *Service) UpdateStatus(ctx context.Context, id, raw string) (*models.Contact, error) {
	status := models.ContactStatus(raw)
	if !status.Valid() {
		return nil, apierr.InvalidStatus(raw, models.ValidContactStatuses())
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, apierr.NotFound("Contact")
	}
	return s.store.UpdateStatus(ctx, id, status)
}
