package google

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
)

// stateToken is used to protect against CSRF attacks
var stateToken string

func init() {
	b := make([]byte, 16)
	rand.Read(b)
	stateToken = hex.EncodeToString(b)
}

// GetStateToken returns the current CSRF state token for validation.
func GetStateToken() string {
	return stateToken
}

// redirectURL derives the callback URL from the incoming request, so
// the flow works behind a proxy as well as on localhost.
func redirectURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/api/auth/google/callback", scheme, r.Host)
}

// HandleLogin initiates the Google OAuth flow by redirecting to
// Google's consent page.
func (s *Service) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if !s.Enabled() {
		http.Error(w, `{"detail": "Google login is not configured"}`, http.StatusNotImplemented)
		return
	}

	config := s.Config(redirectURL(r))
	url := config.AuthCodeURL(stateToken)
	s.Logger.Debugf("redirecting to Google consent page: %s", url)
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}
