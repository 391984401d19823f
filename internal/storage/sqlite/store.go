package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"

	"github.com/hongminglow/puzzle-be/internal/models"
	"github.com/hongminglow/puzzle-be/internal/storage"
	"github.com/hongminglow/puzzle-be/internal/storage/migrations"
)

var _ storage.Store = (*Store)(nil)

// Store is a single-file backend for local development and tests.
type Store struct {
	db *sqlx.DB
}

// NewStore opens the database at path and, when migrate is set, applies the embedded schema.
func NewStore(ctx context.Context, path string, migrate bool) (*Store, error) {
	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// SQLite allows a single writer at a time.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if migrate {
		if err := migrations.Up(ctx, db.DB, migrations.SQLite); err != nil {
			db.Close()
			return nil, err
		}
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() {
	if s.db != nil {
		_ = s.db.Close()
	}
}

func (s *Store) CreateUser(ctx context.Context, username, passwordHash string) (models.User, error) {
	const query = `INSERT INTO users (username, password) VALUES (?, ?) RETURNING id, username, password`

	var user models.User
	if err := s.db.GetContext(ctx, &user, query, username, passwordHash); err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return models.User{}, storage.ErrAlreadyExists
		}
		return models.User{}, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

func (s *Store) FindByUsername(ctx context.Context, username string) (models.User, error) {
	const query = `SELECT id, username, password FROM users WHERE username = ? ORDER BY id LIMIT 1`

	var user models.User
	if err := s.db.GetContext(ctx, &user, query, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, storage.ErrNotFound
		}
		return models.User{}, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

func (s *Store) RandomQuestion(ctx context.Context) (models.Question, error) {
	row := make(map[string]any)
	err := s.db.QueryRowxContext(ctx, `SELECT * FROM questions ORDER BY RANDOM() LIMIT 1`).MapScan(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("query question: %w", err)
	}

	q := make(models.Question, len(row))
	for col, v := range row {
		// TEXT columns come back as []byte, which would JSON-encode as base64.
		if b, ok := v.([]byte); ok {
			q[col] = string(b)
			continue
		}
		q[col] = v
	}
	return q, nil
}
