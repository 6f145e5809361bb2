package storage

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/inkpaste/inkpaste/models"
)

// Postgres unique_violation error code.
const pgUniqueViolation = "23505"

var _ PasteStore = (*PostgresStore)(nil)

// PostgresStore implements PasteStore using PostgreSQL via pgx.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore connects to PostgreSQL, verifies the connection and
// creates the pastes table if it does not exist.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	store := &PostgresStore{pool: pool}
	if err := store.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return store, nil
}

// migrate creates the pastes table if it doesn't exist.
func (s *PostgresStore) migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS pastes (
			id                    TEXT PRIMARY KEY,
			title                 TEXT NOT NULL,
			content               TEXT NOT NULL,
			expiry                BIGINT NOT NULL,
			is_password_protected BOOLEAN NOT NULL DEFAULT FALSE,
			password              TEXT,
			syntax                TEXT,
			burn_after_read       BOOLEAN NOT NULL DEFAULT FALSE,
			created_at            TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	return err
}

// Put inserts a new paste. A primary-key collision maps to ErrDuplicateID
// so the caller can retry with a fresh ID.
func (s *PostgresStore) Put(ctx context.Context, paste *models.Paste) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO pastes (id, title, content, expiry, is_password_protected, password, syntax, burn_after_read, created_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NULLIF($7, ''), $8, $9)`,
		paste.ID, paste.Title, paste.Content, paste.Expiry,
		paste.PasswordProtected, paste.Password, paste.Syntax,
		paste.BurnAfterRead, paste.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ErrDuplicateID
		}
		return err
	}
	return nil
}

// Get retrieves a paste by its ID.
func (s *PostgresStore) Get(ctx context.Context, id string) (*models.Paste, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT id, title, content, expiry, is_password_protected,
		       COALESCE(password, ''), COALESCE(syntax, ''), burn_after_read, created_at
		FROM pastes WHERE id = $1`, id)
	return scanPaste(row)
}

// Delete removes a paste; deleting an absent ID is not an error.
func (s *PostgresStore) Delete(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM pastes WHERE id = $1`, id)
	return err
}

// Take removes the paste and returns it in a single statement. DELETE with
// RETURNING is atomic per key, so two concurrent burn-after-read views
// cannot both observe the record.
func (s *PostgresStore) Take(ctx context.Context, id string) (*models.Paste, error) {
	row := s.pool.QueryRow(ctx, `
		DELETE FROM pastes WHERE id = $1
		RETURNING id, title, content, expiry, is_password_protected,
		          COALESCE(password, ''), COALESCE(syntax, ''), burn_after_read, created_at`, id)
	return scanPaste(row)
}

// Ping verifies the database connection.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close releases the connection pool.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func scanPaste(row pgx.Row) (*models.Paste, error) {
	var p models.Paste
	err := row.Scan(
		&p.ID, &p.Title, &p.Content, &p.Expiry,
		&p.PasswordProtected, &p.Password, &p.Syntax,
		&p.BurnAfterRead, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}
