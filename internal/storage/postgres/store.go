package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/hongminglow/puzzle-be/internal/models"
	"github.com/hongminglow/puzzle-be/internal/storage"
	"github.com/hongminglow/puzzle-be/internal/storage/migrations"
)

// Ensure Store satisfies the storage.Store interface at compile time.
var _ storage.Store = (*Store)(nil)

const uniqueViolation = "23505"

// Store provides Postgres-backed persistence for users and questions.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore opens a connection pool and, when migrate is set, applies the embedded schema.
func NewStore(ctx context.Context, databaseURL string, migrate bool) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	s := &Store{pool: pool}
	if migrate {
		if err := s.migrate(ctx); err != nil {
			pool.Close()
			return nil, err
		}
	}

	return s, nil
}

// Close releases database resources.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *Store) migrate(ctx context.Context) error {
	db := stdlib.OpenDBFromPool(s.pool)
	defer db.Close()
	return migrations.Up(ctx, db, migrations.Postgres)
}

// CreateUser inserts a new user row and returns its generated id.
func (s *Store) CreateUser(ctx context.Context, username, passwordHash string) (models.User, error) {
	const query = `
	INSERT INTO users (username, password)
	VALUES ($1, $2)
	RETURNING id, username, password;
	`
	var user models.User
	err := s.pool.QueryRow(ctx, query, username, passwordHash).Scan(&user.ID, &user.Username, &user.PasswordHash)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return models.User{}, storage.ErrAlreadyExists
		}
		return models.User{}, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

// FindByUsername fetches a user by username.
func (s *Store) FindByUsername(ctx context.Context, username string) (models.User, error) {
	const query = `
	SELECT id, username, password
	FROM users
	WHERE username = $1
	ORDER BY id
	LIMIT 1;
	`
	var user models.User
	err := s.pool.QueryRow(ctx, query, username).Scan(&user.ID, &user.Username, &user.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, storage.ErrNotFound
		}
		return models.User{}, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

// RandomQuestion returns one row of the questions table chosen by the database.
func (s *Store) RandomQuestion(ctx context.Context) (models.Question, error) {
	rows, err := s.pool.Query(ctx, `SELECT * FROM questions ORDER BY RANDOM() LIMIT 1;`)
	if err != nil {
		return nil, fmt.Errorf("query question: %w", err)
	}
	row, err := pgx.CollectOneRow(rows, pgx.RowToMap)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("scan question: %w", err)
	}
	return models.Question(row), nil
}
