// Package postgres implements domain.RecordStore over PostgreSQL. Donor and
// recipient rows are append-only; the donor search is exact on blood type and
// ILIKE-substring on city, capped by the caller's limit.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	// pgx as the database/sql driver.
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/thalaconnect/bloodbot/internal/domain"
	"github.com/thalaconnect/bloodbot/internal/observability"
)

const (
	maxOpenConns = 10
	pingTimeout  = 5 * time.Second
)

type Store struct {
	db *sql.DB
}

// NewStore opens a bounded connection pool against dsn and ensures the two
// tables exist. database/sql acquires a connection per statement and releases
// it on every exit path, which is exactly the scoped-acquisition contract the
// store needs.
func NewStore(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres: dsn is required")
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}
	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(1)
	db.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: ping: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}
	observability.ForComponent("postgres").Info("record store ready", "max_open_conns", maxOpenConns)
	return s, nil
}

func (s *Store) migrate(ctx context.Context) error {
	ddl := []string{
		`CREATE TABLE IF NOT EXISTS donors (
			id         BIGSERIAL PRIMARY KEY,
			full_name  TEXT NOT NULL,
			blood_type TEXT NOT NULL,
			phone      TEXT NOT NULL,
			city       TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS recipients (
			id         BIGSERIAL PRIMARY KEY,
			full_name  TEXT NOT NULL,
			blood_type TEXT NOT NULL,
			phone      TEXT NOT NULL,
			city       TEXT NOT NULL
		)`,
	}
	for _, q := range ddl {
		if _, err := s.db.ExecContext(ctx, q); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) InsertDonor(ctx context.Context, rec domain.DonorRecord) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO donors (full_name, blood_type, phone, city) VALUES ($1, $2, $3, $4) RETURNING id`,
		rec.FullName, rec.BloodType, rec.Phone, rec.City,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("postgres: insert donor: %w", err)
	}
	return id, nil
}

func (s *Store) InsertRecipient(ctx context.Context, rec domain.RecipientRecord) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO recipients (full_name, blood_type, phone, city) VALUES ($1, $2, $3, $4) RETURNING id`,
		rec.FullName, rec.BloodType, rec.Phone, rec.City,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("postgres: insert recipient: %w", err)
	}
	return id, nil
}

func (s *Store) SearchDonors(ctx context.Context, bloodType, city string, limit int) ([]domain.DonorMatch, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT full_name, phone, city FROM donors WHERE blood_type = $1 AND city ILIKE $2 ORDER BY id LIMIT $3`,
		bloodType, "%"+city+"%", limit,
	)
	if err != nil {
		return nil, fmt.Errorf("postgres: search donors: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []domain.DonorMatch
	for rows.Next() {
		var m domain.DonorMatch
		if err := rows.Scan(&m.FullName, &m.Phone, &m.City); err != nil {
			return nil, fmt.Errorf("postgres: scan donor row: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: iterate donor rows: %w", err)
	}
	return out, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
