package reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"pizzeria-backend/internal/apierr"
	"pizzeria-backend/internal/database"
	"pizzeria-backend/internal/models"
)

// PostgresStore runs reservation queries against the shared connection pool.
type PostgresStore struct {
	db *database.DB
}

func NewPostgresStore(db *database.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const reservationColumns = `r.id, r.user_id, r.guest_name, r.guest_email, r.guest_phone,
	r.reservation_date, r.number_of_guests, r.special_requests, r.status, r.created_at, r.updated_at`

func (s *PostgresStore) CreateReservation(ctx context.Context, res *models.Reservation) error {
	err := s.db.QueryRow(ctx, `
		INSERT INTO reservations (user_id, guest_name, guest_email, guest_phone,
			reservation_date, number_of_guests, special_requests, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`,
		res.UserID, res.GuestName, res.GuestEmail, res.GuestPhone,
		res.ReservationDate, res.NumberOfGuests, res.SpecialRequests, res.Status,
	).Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apierr.NotFound("User")
		}
		return fmt.Errorf("create reservation: %w", err)
	}
	return nil
}

func (s *PostgresStore) CountReservations(ctx context.Context, f models.ReservationFilter) (int, error) {
	where, args := reservationWhere(f)
	var total int
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM reservations r `+where, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count reservations: %w", err)
	}
	return total, nil
}

func (s *PostgresStore) ListReservations(ctx context.Context, f models.ReservationFilter, limit, offset int) ([]models.Reservation, error) {
	where, args := reservationWhere(f)
	args = append(args, limit, offset)
	sql := fmt.Sprintf(`
		SELECT %s FROM reservations r
		%s
		ORDER BY r.reservation_date ASC
		LIMIT $%d OFFSET $%d`, reservationColumns, where, len(args)-1, len(args))

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer rows.Close()

	reservations := []models.Reservation{}
	for rows.Next() {
		var res models.Reservation
		if err := rows.Scan(&res.ID, &res.UserID, &res.GuestName, &res.GuestEmail,
			&res.GuestPhone, &res.ReservationDate, &res.NumberOfGuests,
			&res.SpecialRequests, &res.Status, &res.CreatedAt, &res.UpdatedAt); err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}
	return reservations, rows.Err()
}

func (s *PostgresStore) GetReservation(ctx context.Context, id string) (*models.Reservation, error) {
	var res models.Reservation
	var userID, userEmail, userName *string
	err := s.db.QueryRow(ctx, fmt.Sprintf(`
		SELECT %s, u.id, u.email, u.name
		FROM reservations r
		LEFT JOIN users u ON u.id = r.user_id
		WHERE r.id = $1`, reservationColumns),
		id,
	).Scan(&res.ID, &res.UserID, &res.GuestName, &res.GuestEmail, &res.GuestPhone,
		&res.ReservationDate, &res.NumberOfGuests, &res.SpecialRequests, &res.Status,
		&res.CreatedAt, &res.UpdatedAt, &userID, &userEmail, &userName)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apierr.NotFound("Reservation")
	}
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}
	if userID != nil && userEmail != nil {
		res.User = &models.UserSummary{ID: *userID, Email: *userEmail, Name: userName}
	}
	return &res, nil
}

func (s *PostgresStore) UpdateStatus(ctx context.Context, id string, status models.ReservationStatus) (*models.Reservation, error) {
	var res models.Reservation
	err := s.db.QueryRow(ctx, `
		UPDATE reservations SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, user_id, guest_name, guest_email, guest_phone, reservation_date,
			number_of_guests, special_requests, status, created_at, updated_at`,
		status, id,
	).Scan(&res.ID, &res.UserID, &res.GuestName, &res.GuestEmail, &res.GuestPhone,
		&res.ReservationDate, &res.NumberOfGuests, &res.SpecialRequests, &res.Status,
		&res.CreatedAt, &res.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apierr.NotFound("Reservation")
	}
	if err != nil {
		return nil, fmt.Errorf("update reservation status: %w", err)
	}
	return &res, nil
}

func reservationWhere(f models.ReservationFilter) (string, []any) {
	var clauses []string
	var args []any
	add := func(expr string, v any) {
		args = append(args, v)
		clauses = append(clauses, fmt.Sprintf(expr, len(args)))
	}

	if f.Status != nil {
		add("r.status = $%d", *f.Status)
	}
	if f.From != nil {
		add("r.reservation_date >= $%d", *f.From)
	}
	if f.To != nil {
		add("r.reservation_date <= $%d", *f.To)
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(clauses, " AND "), args
}
