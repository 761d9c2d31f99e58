package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"strconv"
	"time"

	"keeso-backend/internal/domain"
	"keeso-backend/internal/repository"

	"github.com/google/uuid"
)

type resourceRepository struct {
	db *sql.DB
}

func NewResourceRepository(db *sql.DB) repository.ResourceRepository {
	return &resourceRepository{db: db}
}

func (r *resourceRepository) Create(ctx context.Context, res *domain.Resource) error {
	if res.ID == "" {
		res.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	res.CreatedAt = now
	res.UpdatedAt = now

	attrs, err := json.Marshal(res.Attrs)
	if err != nil {
		return err
	}
	query := `INSERT INTO resources (id, type, title, category, slug, attrs, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = r.db.ExecContext(ctx, query,
		res.ID, res.Type, res.Title, res.Category, res.Slug, attrs, res.CreatedAt, res.UpdatedAt)
	return err
}

func (r *resourceRepository) GetByID(ctx context.Context, t domain.ResourceType, id string) (*domain.Resource, error) {
	res := &domain.Resource{}
	var attrs []byte
	query := `SELECT id, type, title, COALESCE(category, ''), COALESCE(slug, ''), attrs, created_at, updated_at
	          FROM resources WHERE type = $1 AND id = $2`
	err := r.db.QueryRowContext(ctx, query, t, id).Scan(
		&res.ID, &res.Type, &res.Title, &res.Category, &res.Slug, &attrs, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(attrs, &res.Attrs); err != nil {
		return nil, err
	}
	return res, nil
}

func (r *resourceRepository) List(ctx context.Context, t domain.ResourceType, opts repository.ListOptions) ([]domain.Resource, int, error) {
	where := `WHERE type = $1`
	args := []any{t}
	if opts.Category != "" {
		args = append(args, opts.Category)
		where += ` AND category = $2`
	}
	if opts.Search != "" {
		args = append(args, "%"+opts.Search+"%")
		where += ` AND title ILIKE $` + strconv.Itoa(len(args))
	}

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM resources `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, opts.Limit, opts.Skip)
	query := `SELECT id, type, title, COALESCE(category, ''), COALESCE(slug, ''), attrs, created_at, updated_at
	          FROM resources ` + where + ` ORDER BY created_at DESC LIMIT $` + strconv.Itoa(len(args)-1) + ` OFFSET $` + strconv.Itoa(len(args))
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []domain.Resource
	for rows.Next() {
		var res domain.Resource
		var attrs []byte
		if err := rows.Scan(&res.ID, &res.Type, &res.Title, &res.Category, &res.Slug, &attrs, &res.CreatedAt, &res.UpdatedAt); err != nil {
			return nil, 0, err
		}
		if err := json.Unmarshal(attrs, &res.Attrs); err != nil {
			return nil, 0, err
		}
		items = append(items, res)
	}
	return items, total, rows.Err()
}

func (r *resourceRepository) Update(ctx context.Context, res *domain.Resource) error {
	res.UpdatedAt = time.Now().UTC()
	attrs, err := json.Marshal(res.Attrs)
	if err != nil {
		return err
	}
	query := `UPDATE resources SET title=$1, category=$2, slug=$3, attrs=$4, updated_at=$5 WHERE type=$6 AND id=$7`
	result, err := r.db.ExecContext(ctx, query, res.Title, res.Category, res.Slug, attrs, res.UpdatedAt, res.Type, res.ID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *resourceRepository) Delete(ctx context.Context, t domain.ResourceType, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM resources WHERE type = $1 AND id = $2`, t, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *resourceRepository) ListFileURLs(ctx context.Context) ([]string, error) {
	query := `SELECT attrs->>'file_url' FROM resources WHERE attrs ? 'file_url'
	          UNION
	          SELECT attrs->>'cover_image' FROM resources WHERE attrs ? 'cover_image'
	          UNION
	          SELECT jsonb_array_elements_text(attrs->'gallery_images') FROM resources WHERE attrs ? 'gallery_images'`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var urls []string
	for rows.Next() {
		var url sql.NullString
		if err := rows.Scan(&url); err != nil {
			return nil, err
		}
		if url.Valid && url.String != "" {
			urls = append(urls, url.String)
		}
	}
	return urls, rows.Err()
}
