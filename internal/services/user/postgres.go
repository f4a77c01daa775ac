package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"pizzeria-backend/internal/apierr"
	"pizzeria-backend/internal/database"
	"pizzeria-backend/internal/models"
)

const pgUniqueViolation = "23505"

// PostgresStore runs user queries against the shared connection pool.
type PostgresStore struct {
	db *database.DB
}

func NewPostgresStore(db *database.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const userColumns = `u.id, u.email, u.name, u.phone, u.address, u.created_at, u.updated_at,
	(SELECT COUNT(*) FROM orders o WHERE o.user_id = u.id),
	(SELECT COUNT(*) FROM reservations r WHERE r.user_id = u.id)`

// EmailExists reports whether a user with the given email is registered.
func (s *PostgresStore) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check user email: %w", err)
	}
	return exists, nil
}

// CreateUser persists a new user. The unique constraint on email closes the
// race left open by the EmailExists pre-check.
func (s *PostgresStore) CreateUser(ctx context.Context, u *models.User) error {
	err := s.db.QueryRow(ctx, `
		INSERT INTO users (email, name, phone, address)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`,
		u.Email, u.Name, u.Phone, u.Address,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apierr.Conflict("User with this email already exists")
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (s *PostgresStore) CountUsers(ctx context.Context) (int, error) {
	var total int
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return total, nil
}

func (s *PostgresStore) ListUsers(ctx context.Context, limit, offset int) ([]models.User, error) {
	rows, err := s.db.Query(ctx, fmt.Sprintf(`
		SELECT %s FROM users u
		ORDER BY u.created_at DESC
		LIMIT $1 OFFSET $2`, userColumns),
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Email, &u.Name, &u.Phone, &u.Address,
			&u.CreatedAt, &u.UpdatedAt, &u.OrderCount, &u.ReservationCount); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (s *PostgresStore) GetUser(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	err := s.db.QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM users u WHERE u.id = $1`, userColumns), id,
	).Scan(&u.ID, &u.Email, &u.Name, &u.Phone, &u.Address,
		&u.CreatedAt, &u.UpdatedAt, &u.OrderCount, &u.ReservationCount)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apierr.NotFound("User")
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}
