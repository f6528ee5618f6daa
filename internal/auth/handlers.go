package auth

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"shoppay/internal/api"
	"shoppay/internal/requestctx"
)

const tokenTTL = 12 * time.Hour

type Handler struct {
	pool            *pgxpool.Pool
	jwtSecret       string
	allowSelfSignup bool
}

func NewHandler(pool *pgxpool.Pool, jwtSecret string, allowSelfSignup bool) *Handler {
	return &Handler{pool: pool, jwtSecret: jwtSecret, allowSelfSignup: allowSelfSignup}
}

type signupRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Token string `json:"token"`
	User  struct {
		ID        string `json:"id"`
		Email     string `json:"email"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
	} `json:"user"`
}

func (h *Handler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	reqID := requestctx.GetRequestID(r.Context())
	if !h.allowSelfSignup {
		api.Fail(w, http.StatusForbidden, "signup_disabled", "self signup is disabled", reqID)
		return
	}

	var payload signupRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	payload.Email = strings.ToLower(strings.TrimSpace(payload.Email))
	if payload.Email == "" || payload.Password == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "email and password are required", reqID)
		return
	}

	var exists int
	if err := h.pool.QueryRow(r.Context(), "SELECT COUNT(1) FROM users WHERE email = $1", payload.Email).Scan(&exists); err != nil {
		api.Fail(w, http.StatusInternalServerError, "signup_failed", "failed to create account", reqID)
		return
	}
	if exists > 0 {
		api.Fail(w, http.StatusConflict, "email_taken", "an account with this email already exists", reqID)
		return
	}

	hashed, err := HashPassword(payload.Password)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "signup_failed", "failed to create account", reqID)
		return
	}

	var id string
	err = h.pool.QueryRow(r.Context(), `
    INSERT INTO users (email, password_hash, first_name, last_name)
    VALUES ($1, $2, $3, $4)
    RETURNING id
  `, payload.Email, hashed, payload.FirstName, payload.LastName).Scan(&id)
	if err != nil {
		slog.Error("signup insert failed", "err", err, "requestId", reqID)
		api.Fail(w, http.StatusInternalServerError, "signup_failed", "failed to create account", reqID)
		return
	}

	h.writeSession(w, r, id, payload.Email, payload.FirstName, payload.LastName, http.StatusCreated)
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	reqID := requestctx.GetRequestID(r.Context())

	var payload loginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	payload.Email = strings.ToLower(strings.TrimSpace(payload.Email))

	var id, hash, firstName, lastName string
	err := h.pool.QueryRow(r.Context(), `
    SELECT id, password_hash, first_name, last_name
    FROM users
    WHERE email = $1
  `, payload.Email).Scan(&id, &hash, &firstName, &lastName)
	if err != nil {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid email or password", reqID)
		return
	}

	if err := CheckPassword(hash, payload.Password); err != nil {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid email or password", reqID)
		return
	}

	h.writeSession(w, r, id, payload.Email, firstName, lastName, http.StatusOK)
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	// Tokens are stateless; logout is client-side discard.
	api.Success(w, map[string]string{"status": "logged_out"}, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	reqID := requestctx.GetRequestID(r.Context())
	claims, ok := h.userFromRequest(r)
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", reqID)
		return
	}

	var email, firstName, lastName string
	err := h.pool.QueryRow(r.Context(), `
    SELECT email, first_name, last_name FROM users WHERE id = $1
  `, claims.UserID).Scan(&email, &firstName, &lastName)
	if err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", "user not found", reqID)
		return
	}

	api.Success(w, map[string]string{
		"id":        claims.UserID,
		"email":     email,
		"firstName": firstName,
		"lastName":  lastName,
	}, reqID)
}

func (h *Handler) writeSession(w http.ResponseWriter, r *http.Request, id, email, firstName, lastName string, status int) {
	reqID := requestctx.GetRequestID(r.Context())
	token, err := GenerateToken(h.jwtSecret, Claims{UserID: id, Email: email}, tokenTTL)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "token_failed", "failed to issue session token", reqID)
		return
	}

	var resp sessionResponse
	resp.Token = token
	resp.User.ID = id
	resp.User.Email = email
	resp.User.FirstName = firstName
	resp.User.LastName = lastName

	api.WriteJSON(w, status, api.Envelope{Success: true, Data: resp, RequestID: reqID})
}

func (h *Handler) userFromRequest(r *http.Request) (*Claims, bool) {
	authHeader := r.Header.Get("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return nil, false
	}
	claims, err := ParseToken(h.jwtSecret, parts[1])
	if err != nil {
		return nil, false
	}
	return claims, true
}
