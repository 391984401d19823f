package storage

import (
	"context"
	"errors"

	"github.com/hongminglow/puzzle-be/internal/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict.
var ErrAlreadyExists = errors.New("record already exists")

// UserStore captures the user persistence operations needed by handlers.
type UserStore interface {
	CreateUser(ctx context.Context, username, passwordHash string) (models.User, error)
	FindByUsername(ctx context.Context, username string) (models.User, error)
}

// QuestionStore serves rows from the question pool.
type QuestionStore interface {
	// RandomQuestion returns one uniformly chosen row, or ErrNotFound when the pool is empty.
	RandomQuestion(ctx context.Context) (models.Question, error)
}

// Store is a full backend as opened by main.
type Store interface {
	UserStore
	QuestionStore
	Close()
}
