package postgres

import (
	"context"
	"database/sql"
	"time"

	"keeso-backend/internal/domain"
	"keeso-backend/internal/repository"
)

type settingsRepository struct {
	db *sql.DB
}

func NewSettingsRepository(db *sql.DB) repository.SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Get(ctx context.Context) (*domain.Settings, error) {
	s := &domain.Settings{}
	query := `SELECT address, phone, email, whatsapp, map_location FROM settings WHERE id = 1`
	err := r.db.QueryRowContext(ctx, query).Scan(&s.Address, &s.Phone, &s.Email, &s.WhatsApp, &s.MapLocation)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Upsert writes the singleton row. COALESCE keeps the stored value for any
// field the caller left nil, so partial updates never blank out settings.
func (r *settingsRepository) Upsert(ctx context.Context, s *domain.Settings) error {
	query := `INSERT INTO settings (id, address, phone, email, whatsapp, map_location, updated_at)
	          VALUES (1, $1, $2, $3, $4, $5, $6)
	          ON CONFLICT (id) DO UPDATE SET
	            address      = COALESCE(EXCLUDED.address, settings.address),
	            phone        = COALESCE(EXCLUDED.phone, settings.phone),
	            email        = COALESCE(EXCLUDED.email, settings.email),
	            whatsapp     = COALESCE(EXCLUDED.whatsapp, settings.whatsapp),
	            map_location = COALESCE(EXCLUDED.map_location, settings.map_location),
	            updated_at   = EXCLUDED.updated_at`
	_, err := r.db.ExecContext(ctx, query, s.Address, s.Phone, s.Email, s.WhatsApp, s.MapLocation, time.Now().UTC())
	return err
}
