package handlers

import (
	"fmt"

	"github.com/hongminglow/puzzle-be/internal/storage"
)

func errAlreadyExists() error {
	return fmt.Errorf("insert user: %w", storage.ErrAlreadyExists)
}
