package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/hongminglow/puzzle-be/internal/http/respond"
	"github.com/hongminglow/puzzle-be/internal/logging"
	"github.com/hongminglow/puzzle-be/internal/middleware"
	"github.com/hongminglow/puzzle-be/internal/models"
	"github.com/hongminglow/puzzle-be/internal/models/dto"
	"github.com/hongminglow/puzzle-be/internal/storage"
)

const (
	msgInvalidJSON     = "Invalid JSON payload."
	msgUsernameTaken   = "Username already exists."
	msgRegistered      = "User registered successfully."
	msgRegisterFailed  = "Server error during registration."
	msgUserNotFound    = "User not found."
	msgInvalidPassword = "Invalid password."
	msgLoggedIn        = "Login successful."
	msgLoginFailed     = "Server error during login."
)

// errNullUsername mirrors the NOT NULL constraint on users.username.
var errNullUsername = errors.New("insert user: username is null")

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	Generate(user models.User) (string, error)
}

// PasswordHasher hashes and checks passwords that may be missing from the request.
type PasswordHasher interface {
	Hash(password *string) (string, error)
	Verify(password *string, hash string) (bool, error)
}

// AuthHandler owns the register/login endpoints.
type AuthHandler struct {
	store  storage.UserStore
	tokens TokenIssuer
	hasher PasswordHasher
	logger logging.Logger
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(store storage.UserStore, tokens TokenIssuer, hasher PasswordHasher, logger logging.Logger) *AuthHandler {
	return &AuthHandler{store: store, tokens: tokens, hasher: hasher, logger: logger}
}

// Register attaches auth routes to the mux.
func (h *AuthHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /register", h.handleRegister)
	mux.HandleFunc("POST /login", h.handleLogin)
}

func (h *AuthHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}
	ctx := r.Context()
	log := h.logger.With("endpoint", "/register", "request_id", middleware.RequestIDFromContext(ctx))

	// A null username never matches an existing row. The unique index can
	// still reject the insert below if another request registers the same
	// name between this check and CreateUser.
	if req.Username != nil {
		_, err := h.store.FindByUsername(ctx, *req.Username)
		switch {
		case err == nil:
			respond.Error(w, r, http.StatusBadRequest, msgUsernameTaken)
			return
		case !errors.Is(err, storage.ErrNotFound):
			log.Error(ctx, "lookup user failed", "error", err)
			respond.Error(w, r, http.StatusInternalServerError, msgRegisterFailed)
			return
		}
	}

	passwordHash, err := h.hasher.Hash(req.Password)
	if err != nil {
		log.Error(ctx, "hash password failed", "error", err)
		respond.Error(w, r, http.StatusInternalServerError, msgRegisterFailed)
		return
	}

	if req.Username == nil {
		log.Error(ctx, "create user failed", "error", errNullUsername)
		respond.Error(w, r, http.StatusInternalServerError, msgRegisterFailed)
		return
	}
	created, err := h.store.CreateUser(ctx, *req.Username, passwordHash)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			log.Warn(ctx, "concurrent registration lost the race", "username", *req.Username)
			respond.Error(w, r, http.StatusBadRequest, msgUsernameTaken)
			return
		}
		log.Error(ctx, "create user failed", "error", err)
		respond.Error(w, r, http.StatusInternalServerError, msgRegisterFailed)
		return
	}

	log.Info(ctx, "user registered", "user_id", created.ID)
	respond.JSON(w, r, http.StatusCreated, dto.RegisterResponse{Message: msgRegistered, User: created})
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}
	ctx := r.Context()
	log := h.logger.With("endpoint", "/login", "request_id", middleware.RequestIDFromContext(ctx))

	if req.Username == nil {
		respond.Error(w, r, http.StatusBadRequest, msgUserNotFound)
		return
	}
	user, err := h.store.FindByUsername(ctx, *req.Username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, r, http.StatusBadRequest, msgUserNotFound)
			return
		}
		log.Error(ctx, "lookup user failed", "error", err)
		respond.Error(w, r, http.StatusInternalServerError, msgLoginFailed)
		return
	}

	match, err := h.hasher.Verify(req.Password, user.PasswordHash)
	if err != nil {
		log.Error(ctx, "verify password failed", "error", err)
		respond.Error(w, r, http.StatusInternalServerError, msgLoginFailed)
		return
	}
	if !match {
		respond.Error(w, r, http.StatusBadRequest, msgInvalidPassword)
		return
	}

	token, err := h.tokens.Generate(user)
	if err != nil {
		log.Error(ctx, "generate token failed", "error", err)
		respond.Error(w, r, http.StatusInternalServerError, msgLoginFailed)
		return
	}
	respond.JSON(w, r, http.StatusOK, dto.LoginResponse{Message: msgLoggedIn, Token: token})
}

// decodeBody reads a JSON object into dst. An empty body leaves every field nil.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	respond.Error(w, r, http.StatusBadRequest, msgInvalidJSON)
	return false
}
