package postgres

import (
	"context"
	"database/sql"
	"time"

	"keeso-backend/internal/domain"
	"keeso-backend/internal/logger"
	"keeso-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type membershipRepository struct {
	db *sql.DB
}

func NewMembershipRepository(db *sql.DB) repository.MembershipRepository {
	return &membershipRepository{db: db}
}

// Create inserts the application and its attachment rows in one transaction
// so a record never commits without its declared attachments.
func (r *membershipRepository) Create(ctx context.Context, app *domain.MembershipApplication) error {
	if app.ID == "" {
		app.ID = uuid.New().String()
	}
	if app.CreatedAt.IsZero() {
		app.CreatedAt = time.Now().UTC()
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO membership_applications (id, name, email, phone, address, tax_number, note, status, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	logger.DatabaseCall("INSERT", "membership_applications", "id", app.ID)
	_, err = tx.ExecContext(ctx, query,
		app.ID, app.Name, app.Email, app.Phone, app.Address, app.TaxNumber, app.Note, app.Status, app.CreatedAt)
	if err != nil {
		logger.DatabaseResult("INSERT", 0, err, "id", app.ID)
		return err
	}

	fileQuery := `INSERT INTO membership_files (application_id, position, file_url) VALUES ($1, $2, $3)`
	for i, url := range app.Files {
		if _, err := tx.ExecContext(ctx, fileQuery, app.ID, i, url); err != nil {
			logger.DatabaseResult("INSERT", int64(i), err, "id", app.ID)
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	logger.DatabaseResult("INSERT", int64(1+len(app.Files)), nil, "id", app.ID)
	return nil
}

func (r *membershipRepository) GetByID(ctx context.Context, id string) (*domain.MembershipApplication, error) {
	a := &domain.MembershipApplication{}
	query := `SELECT id, name, email, phone, address, tax_number, COALESCE(note, ''), status, created_at
	          FROM membership_applications WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&a.ID, &a.Name, &a.Email, &a.Phone, &a.Address, &a.TaxNumber, &a.Note, &a.Status, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	files, err := r.loadFiles(ctx, []string{a.ID})
	if err != nil {
		return nil, err
	}
	a.Files = files[a.ID]
	return a, nil
}

// FindByEmailOrTaxNumber matches the query exactly against both lookup keys.
// Attachments are not loaded: callers of this path only ever need the
// public status projection.
func (r *membershipRepository) FindByEmailOrTaxNumber(ctx context.Context, query string) ([]domain.MembershipApplication, error) {
	sqlQuery := `SELECT id, name, email, phone, address, tax_number, COALESCE(note, ''), status, created_at
	             FROM membership_applications
	             WHERE email = $1 OR tax_number = $1
	             ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, sqlQuery, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.MembershipApplication
	for rows.Next() {
		var a domain.MembershipApplication
		if err := rows.Scan(&a.ID, &a.Name, &a.Email, &a.Phone, &a.Address, &a.TaxNumber, &a.Note, &a.Status, &a.CreatedAt); err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

func (r *membershipRepository) List(ctx context.Context, limit, skip int) ([]domain.MembershipApplication, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM membership_applications`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, name, email, phone, address, tax_number, COALESCE(note, ''), status, created_at
	          FROM membership_applications ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, limit, skip)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var apps []domain.MembershipApplication
	var ids []string
	for rows.Next() {
		var a domain.MembershipApplication
		if err := rows.Scan(&a.ID, &a.Name, &a.Email, &a.Phone, &a.Address, &a.TaxNumber, &a.Note, &a.Status, &a.CreatedAt); err != nil {
			return nil, 0, err
		}
		apps = append(apps, a)
		ids = append(ids, a.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if len(ids) > 0 {
		files, err := r.loadFiles(ctx, ids)
		if err != nil {
			return nil, 0, err
		}
		for i := range apps {
			apps[i].Files = files[apps[i].ID]
		}
	}
	return apps, total, nil
}

func (r *membershipRepository) ListPending(ctx context.Context) ([]domain.MembershipApplication, error) {
	query := `SELECT id, name, email, phone, address, tax_number, COALESCE(note, ''), status, created_at
	          FROM membership_applications WHERE status = $1 ORDER BY created_at ASC`
	rows, err := r.db.QueryContext(ctx, query, domain.ApplicationStatusPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.MembershipApplication
	for rows.Next() {
		var a domain.MembershipApplication
		if err := rows.Scan(&a.ID, &a.Name, &a.Email, &a.Phone, &a.Address, &a.TaxNumber, &a.Note, &a.Status, &a.CreatedAt); err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

func (r *membershipRepository) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) error {
	query := `UPDATE membership_applications SET status = $1 WHERE id = $2`
	res, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *membershipRepository) ListAttachmentURLs(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT file_url FROM membership_files`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var urls []string
	for rows.Next() {
		var url string
		if err := rows.Scan(&url); err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, rows.Err()
}

// loadFiles returns attachment URLs keyed by application id, in upload order.
func (r *membershipRepository) loadFiles(ctx context.Context, ids []string) (map[string][]string, error) {
	query := `SELECT application_id, file_url FROM membership_files
	          WHERE application_id = ANY($1) ORDER BY application_id, position`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	files := make(map[string][]string)
	for rows.Next() {
		var appID, url string
		if err := rows.Scan(&appID, &url); err != nil {
			return nil, err
		}
		files[appID] = append(files[appID], url)
	}
	return files, rows.Err()
}
