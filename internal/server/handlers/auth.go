package handlers

import (
	"errors"
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/nmoreno/blogapi/internal/auth"
	"github.com/nmoreno/blogapi/internal/db/models"
	"github.com/nmoreno/blogapi/internal/server/middleware"
	"github.com/nmoreno/blogapi/internal/store"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
}

type userSummary struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

// Register creates a new user account.
func Register(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body registerRequest
		if !decodeBody(w, r, &body) {
			return
		}
		if body.Username == "" || body.Email == "" || body.Password == "" {
			respondError(w, http.StatusBadRequest, "username, email and password are required")
			return
		}

		if _, err := store.GetUserByUsername(db, body.Username); err == nil {
			respondError(w, http.StatusBadRequest, "Username already registered")
			return
		}
		if _, err := store.GetUserByEmail(db, body.Email); err == nil {
			respondError(w, http.StatusBadRequest, "Email already registered")
			return
		}

		hashed, err := auth.HashPassword(body.Password)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "Failed to register user")
			return
		}

		user := &models.User{
			Username:       body.Username,
			Email:          body.Email,
			FullName:       body.FullName,
			HashedPassword: hashed,
			IsActive:       true,
		}
		if err := store.CreateUser(db, user); err != nil {
			respondError(w, http.StatusInternalServerError, "Failed to register user")
			return
		}

		respondJSON(w, http.StatusCreated, userSummary{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
			FullName: user.FullName,
		})
	}
}

// Login authenticates a user and issues an access token.
func Login(db *gorm.DB, secret string, ttl time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if !decodeBody(w, r, &body) {
			return
		}

		user, err := store.GetUserByUsername(db, body.Username)
		if err != nil {
			if !errors.Is(err, store.ErrNotFound) {
				respondError(w, http.StatusInternalServerError, "Failed to log in")
				return
			}
			loginRejected(w)
			return
		}
		if !auth.VerifyPassword(body.Password, user.HashedPassword) {
			loginRejected(w)
			return
		}

		token, err := auth.CreateAccessToken(secret, user.Username, ttl)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "Failed to log in")
			return
		}

		respondJSON(w, http.StatusOK, map[string]string{
			"access_token": token,
			"token_type":   "bearer",
		})
	}
}

func loginRejected(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	respondError(w, http.StatusUnauthorized, "Incorrect username or password")
}

// Me returns the authenticated user's profile.
func Me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middleware.UserFromContext(r.Context())
		respondJSON(w, http.StatusOK, user)
	}
}
