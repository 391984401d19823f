package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hongminglow/puzzle-be/internal/logging"
	"github.com/hongminglow/puzzle-be/internal/models"
)

func passThrough(next http.Handler) http.Handler { return next }

func getGenerate(store *fakeStore, gate func(http.Handler) http.Handler) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	NewQuestionHandler(store, gate, logging.Nop()).Register(mux)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/generate", nil))
	return rec
}

func TestGenerate_ReturnsRow(t *testing.T) {
	store := newFakeStore()
	store.questions = []models.Question{{"id": 1, "prompt": "2+2?", "answer": "4"}}

	rec := getGenerate(store, passThrough)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"prompt":"2+2?","answer":"4"}`, rec.Body.String())
}

func TestGenerate_Empty(t *testing.T) {
	rec := getGenerate(newFakeStore(), passThrough)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"No questions or puzzles available."}`, rec.Body.String())
}

func TestGenerate_StoreError(t *testing.T) {
	store := newFakeStore()
	store.questionErr = errors.New("db down")

	rec := getGenerate(store, passThrough)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Server error during question/puzzle generation."}`, rec.Body.String())
}

func TestGenerate_GateRuns(t *testing.T) {
	deny := func(http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
	}
	store := newFakeStore()
	store.questions = []models.Question{{"id": 1}}

	rec := getGenerate(store, deny)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
