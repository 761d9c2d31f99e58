package postgres

import (
	"database/sql"

	"keeso-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.MembershipRepository
	repository.UserRepository
	repository.ResourceRepository
	repository.ContactRepository
	repository.SettingsRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                   db,
		MembershipRepository: NewMembershipRepository(db),
		UserRepository:       NewUserRepository(db),
		ResourceRepository:   NewResourceRepository(db),
		ContactRepository:    NewContactRepository(db),
		SettingsRepository:   NewSettingsRepository(db),
	}
}
