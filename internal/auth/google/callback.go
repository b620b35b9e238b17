package google

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/nmoreno/blogapi/internal/auth"
	"github.com/nmoreno/blogapi/internal/db/models"
	"github.com/nmoreno/blogapi/internal/store"
)

// HandleCallback processes the OAuth callback from Google: exchanges
// the code, reads the profile, provisions a local user on first login,
// and redirects to the frontend with an application JWT.
func (s *Service) HandleCallback(w http.ResponseWriter, r *http.Request) {
	if !s.Enabled() {
		http.Error(w, `{"detail": "Google login is not configured"}`, http.StatusNotImplemented)
		return
	}

	// Verify state token
	if r.URL.Query().Get("state") != GetStateToken() {
		http.Error(w, `{"detail": "Invalid state token"}`, http.StatusBadRequest)
		return
	}

	code := r.URL.Query().Get("code")
	config := s.Config(redirectURL(r))

	token, err := config.Exchange(r.Context(), code)
	if err != nil {
		s.Logger.Warnf("google token exchange failed: %v", err)
		http.Error(w, `{"detail": "Token exchange failed"}`, http.StatusBadRequest)
		return
	}

	// Fetch user info from Google
	client := config.Client(r.Context(), token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		s.Logger.Warnf("google userinfo request failed: %v", err)
		http.Error(w, `{"detail": "Failed to get user info"}`, http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	var userInfo struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&userInfo); err != nil {
		http.Error(w, `{"detail": "Failed to decode user info"}`, http.StatusBadGateway)
		return
	}
	if userInfo.Email == "" {
		http.Error(w, `{"detail": "Google did not provide an email"}`, http.StatusBadRequest)
		return
	}

	user, err := s.findOrCreateUser(userInfo.Email, userInfo.Name)
	if err != nil {
		s.Logger.Errorf("provision google user %s: %v", userInfo.Email, err)
		http.Error(w, `{"detail": "Failed to provision user"}`, http.StatusInternalServerError)
		return
	}

	accessToken, err := auth.CreateAccessToken(s.SecretKey, user.Username, s.TokenTTL)
	if err != nil {
		http.Error(w, `{"detail": "Failed to issue token"}`, http.StatusInternalServerError)
		return
	}

	s.Logger.Infof("google login for user %d (%s)", user.ID, user.Email)

	redirect := fmt.Sprintf("%s?access_token=%s&token_type=bearer",
		s.FrontendURL, url.QueryEscape(accessToken))
	http.Redirect(w, r, redirect, http.StatusTemporaryRedirect)
}

// findOrCreateUser returns the existing account for the email or
// creates one with a unique username derived from the address.
func (s *Service) findOrCreateUser(email, fullName string) (*models.User, error) {
	user, err := store.GetUserByEmail(s.DB, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	base := strings.SplitN(email, "@", 2)[0]
	username := base
	for i := 1; ; i++ {
		if _, err := store.GetUserByUsername(s.DB, username); errors.Is(err, store.ErrNotFound) {
			break
		} else if err != nil {
			return nil, err
		}
		username = fmt.Sprintf("%s_%d", base, i)
	}

	// OAuth users never log in with this password; it only keeps the
	// column non-empty.
	raw := make([]byte, 32)
	rand.Read(raw)
	hashed, err := auth.HashPassword(base64.RawURLEncoding.EncodeToString(raw))
	if err != nil {
		return nil, err
	}

	user = &models.User{
		Username:       username,
		Email:          email,
		FullName:       fullName,
		HashedPassword: hashed,
		IsActive:       true,
	}
	if err := store.CreateUser(s.DB, user); err != nil {
		return nil, err
	}
	s.Logger.Infof("created user %d for google account %s", user.ID, email)
	return user, nil
}
