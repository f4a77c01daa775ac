package contact

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"pizzeria-backend/internal/apierr"
	"pizzeria-backend/internal/database"
	"pizzeria-backend/internal/models"
)

// PostgresStore runs contact queries against the shared connection pool.
type PostgresStore struct {
	db *database.DB
}

func NewPostgresStore(db *database.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const contactColumns = `id, name, email, phone, subject, message, status, created_at, updated_at`

func (s *PostgresStore) CreateContact(ctx context.Context, c *models.Contact) error {
	err := s.db.QueryRow(ctx, `
		INSERT INTO contacts (name, email, phone, subject, message, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`,
		c.Name, c.Email, c.Phone, c.Subject, c.Message, c.Status,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create contact: %w", err)
	}
	return nil
}

func (s *PostgresStore) CountContacts(ctx context.Context, status *string) (int, error) {
	where, args := contactWhere(status)
	var total int
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM contacts `+where, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count contacts: %w", err)
	}
	return total, nil
}

func (s *PostgresStore) ListContacts(ctx context.Context, status *string, limit, offset int) ([]models.Contact, error) {
	where, args := contactWhere(status)
	args = append(args, limit, offset)
	sql := fmt.Sprintf(`
		SELECT %s FROM contacts
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d`, contactColumns, where, len(args)-1, len(args))

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	contacts := []models.Contact{}
	for rows.Next() {
		var c models.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Subject,
			&c.Message, &c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

func (s *PostgresStore) GetContact(ctx context.Context, id string) (*models.Contact, error) {
	var c models.Contact
	err := s.db.QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM contacts WHERE id = $1`, contactColumns), id,
	).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Subject, &c.Message,
		&c.Status, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apierr.NotFound("Contact")
	}
	if err != nil {
		return nil, fmt.Errorf("get contact: %w", err)
	}
	return &c, nil
}

func (s *PostgresStore) UpdateStatus(ctx context.Context, id string, status models.ContactStatus) (*models.Contact, error) {
	var c models.Contact
	err := s.db.QueryRow(ctx, `
		UPDATE contacts SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, name, email, phone, subject, message, status, created_at, updated_at`,
		status, id,
	).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Subject, &c.Message,
		&c.Status, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apierr.NotFound("Contact")
	}
	if err != nil {
		return nil, fmt.Errorf("update contact status: %w", err)
	}
	return &c, nil
}

func contactWhere(status *string) (string, []any) {
	if status == nil {
		return "", nil
	}
	return "WHERE status = $1", []any{*status}
}
