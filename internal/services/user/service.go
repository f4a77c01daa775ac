package user

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

const defaultUserLimit = 20

// Store is the storage collaborator for users.
type Store interface {
	EmailExists(ctx context.Context, email string) (bool, error)
	CreateUser(ctx context.Context, u *models.User) error
	CountUsers(ctx context.Context) (int, error)
	ListUsers(ctx context.Context, limit, offset int) ([]models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
}

// Service implements user registration and querying.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Create registers a user, rejecting duplicate emails with a conflict error.
func (s *Service) Create(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	exists, err := s.store.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apierr.Conflict("User with this email already exists")
	}

	u := &models.User{
		Email:   req.Email,
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	}
	if err := s.store.CreateUser(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// List returns one page of users, newest first, each with derived order and
// reservation counts. Count and page queries run concurrently.
func (s *Service) List(ctx context.Context, params url.Values) ([]models.User, query.Pagination, error) {
	page := query.Page(params.Get("page"))
	limit := query.Limit(params.Get("limit"), defaultUserLimit)

	var (
		total int
		users []models.User
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, err = s.store.CountUsers(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		users, err = s.store.ListUsers(gctx, limit, query.Offset(page, limit))
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, query.Pagination{}, err
	}

	if users == nil {
		users = []models.User{}
	}
	return users, query.NewPagination(page, limit, total), nil
}

func (s *Service) Get(ctx context.Context, id string) (*models.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apierr.NotFound("User")
	}
	return s.store.GetUser(ctx, id)
}
