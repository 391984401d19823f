package handlers

import (
	"errors"
	"net/http"

	"github.com/hongminglow/puzzle-be/internal/http/respond"
	"github.com/hongminglow/puzzle-be/internal/logging"
	"github.com/hongminglow/puzzle-be/internal/middleware"
	"github.com/hongminglow/puzzle-be/internal/storage"
)

const (
	msgNoQuestions    = "No questions or puzzles available."
	msgGenerateFailed = "Server error during question/puzzle generation."
)

// QuestionHandler serves random questions to authenticated callers.
type QuestionHandler struct {
	store  storage.QuestionStore
	gate   func(http.Handler) http.Handler
	logger logging.Logger
}

// NewQuestionHandler constructs the handler. gate wraps every route it registers.
func NewQuestionHandler(store storage.QuestionStore, gate func(http.Handler) http.Handler, logger logging.Logger) *QuestionHandler {
	return &QuestionHandler{store: store, gate: gate, logger: logger}
}

// Register attaches the question routes to the mux.
func (h *QuestionHandler) Register(mux *http.ServeMux) {
	mux.Handle("GET /generate", h.gate(http.HandlerFunc(h.handleGenerate)))
}

func (h *QuestionHandler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	question, err := h.store.RandomQuestion(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, r, http.StatusNotFound, msgNoQuestions)
			return
		}
		args := []any{"endpoint", "/generate", "error", err, "request_id", middleware.RequestIDFromContext(ctx)}
		if claims, ok := middleware.ClaimsFromContext(ctx); ok {
			args = append(args, "user_id", claims.UserID)
		}
		h.logger.Error(ctx, "fetch question failed", args...)
		respond.Error(w, r, http.StatusInternalServerError, msgGenerateFailed)
		return
	}

	respond.JSON(w, r, http.StatusOK, question)
}
