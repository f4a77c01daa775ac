package reservation

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

const defaultReservationLimit = 20

// Store is the storage collaborator for reservations.
type Store interface {
	CreateReservation(ctx context.Context, res *models.Reservation) error
	CountReservations(ctx context.Context, f models.ReservationFilter) (int, error)
	ListReservations(ctx context.Context, f models.ReservationFilter, limit, offset int) ([]models.Reservation, error)
	GetReservation(ctx context.Context, id string) (*models.Reservation, error)
	UpdateStatus(ctx context.Context, id string, status models.ReservationStatus) (*models.Reservation, error)
}

// Service implements reservation intake and querying.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) Create(ctx context.Context, req *models.CreateReservationRequest) (*models.Reservation, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	when, err := query.Time(req.ReservationDate)
	if err != nil || when == nil {
		return nil, validation.NewError("reservationDate", "must be a valid date")
	}

	res := &models.Reservation{
		UserID:          req.UserID,
		GuestName:       req.GuestName,
		GuestEmail:      req.GuestEmail,
		GuestPhone:      req.GuestPhone,
		ReservationDate: *when,
		NumberOfGuests:  req.NumberOfGuests,
		SpecialRequests: req.SpecialRequests,
		Status:          models.ReservationPending,
	}
	if err := s.store.CreateReservation(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

// List returns one page of reservations in ascending date order, optionally
// filtered by status and an inclusive date range. Count and page queries run
// concurrently.
func (s *Service) List(ctx context.Context, params url.Values) ([]models.Reservation, query.Pagination, error) {
	page := query.Page(params.Get("page"))
	limit := query.Limit(params.Get("limit"), defaultReservationLimit)

	var f models.ReservationFilter
	if raw := params.Get("status"); raw != "" {
		f.Status = &raw
	}
	from, err := query.Time(params.Get("from"))
	if err != nil {
		return nil, query.Pagination{}, validation.NewError("from", "must be a valid date")
	}
	to, err := query.Time(params.Get("to"))
	if err != nil {
		return nil, query.Pagination{}, validation.NewError("to", "must be a valid date")
	}
	f.From, f.To = from, to

	var (
		total        int
		reservations []models.Reservation
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, err = s.store.CountReservations(gctx, f)
		return err
	})
	g.Go(func() error {
		var err error
		reservations, err = s.store.ListReservations(gctx, f, limit, query.Offset(page, limit))
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, query.Pagination{}, err
	}

	if reservations == nil {
		reservations = []models.Reservation{}
	}
	return reservations, query.NewPagination(page, limit, total), nil
}

func (s *Service) Get(ctx context.Context, id string) (*models.Reservation, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apierr.NotFound("Reservation")
	}
	return s.store.GetReservation(ctx, id)
}

// UpdateStatus sets a new status after checking membership in the
// reservation status set.
func (s *Service) UpdateStatus(ctx context.Context, id, raw string) (*models.Reservation, error) {
	status := models.ReservationStatus(raw)
	if !status.Valid() {
		return nil, apierr.InvalidStatus(raw, models.ValidReservationStatuses())
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, apierr.NotFound("Reservation")
	}
	return s.store.UpdateStatus(ctx, id, status)
}
