package postgres

import (
	"context"
	"database/sql"
	"time"

	"keeso-backend/internal/domain"
	"keeso-backend/internal/repository"

	"github.com/google/uuid"
)

type contactRepository struct {
	db *sql.DB
}

func NewContactRepository(db *sql.DB) repository.ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(ctx context.Context, c *domain.Contact) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	query := `INSERT INTO contacts (id, name, email, phone, message, status, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecContext(ctx, query, c.ID, c.Name, c.Email, c.Phone, c.Message, c.Status, c.CreatedAt)
	return err
}

func (r *contactRepository) List(ctx context.Context, limit, skip int) ([]domain.Contact, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contacts`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, name, email, phone, message, status, created_at
	          FROM contacts ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, limit, skip)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var contacts []domain.Contact
	for rows.Next() {
		var c domain.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Message, &c.Status, &c.CreatedAt); err != nil {
			return nil, 0, err
		}
		contacts = append(contacts, c)
	}
	return contacts, total, rows.Err()
}
