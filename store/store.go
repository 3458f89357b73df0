package store

import (
	"database/sql"
)

// Store wraps the submission journal database.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db: db,
	}
}

func (s *Store) Ping() error {
	return s.db.Ping()
}
