package handlers

import (
	"context"
	"sync"

	"github.com/hongminglow/puzzle-be/internal/models"
	"github.com/hongminglow/puzzle-be/internal/storage"
)

type fakeStore struct {
	mu        sync.Mutex
	users     map[string]models.User
	nextID    int64
	questions []models.Question

	findErr     error
	createErr   error
	questionErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{users: map[string]models.User{}}
}

func (f *fakeStore) CreateUser(_ context.Context, username, passwordHash string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return models.User{}, f.createErr
	}
	if _, ok := f.users[username]; ok {
		return models.User{}, storage.ErrAlreadyExists
	}
	f.nextID++
	u := models.User{ID: f.nextID, Username: username, PasswordHash: passwordHash}
	f.users[username] = u
	return u, nil
}

func (f *fakeStore) FindByUsername(_ context.Context, username string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return models.User{}, f.findErr
	}
	u, ok := f.users[username]
	if !ok {
		return models.User{}, storage.ErrNotFound
	}
	return u, nil
}

func (f *fakeStore) RandomQuestion(context.Context) (models.Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.questionErr != nil {
		return nil, f.questionErr
	}
	if len(f.questions) == 0 {
		return nil, storage.ErrNotFound
	}
	return f.questions[0], nil
}

func (f *fakeStore) Close() {}
