// Package google implements the Google OAuth login flow: consent
// redirect, callback exchange, and account provisioning for first-time
// logins.
package google

import (
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
	"gorm.io/gorm"
)

// Scopes requested from Google; enough to read the account email and
// display name.
var Scopes = []string{
	"openid",
	"https://www.googleapis.com/auth/userinfo.email",
	"https://www.googleapis.com/auth/userinfo.profile",
}

// Service handles the OAuth login endpoints.
type Service struct {
	DB           *gorm.DB
	ClientID     string
	ClientSecret string
	SecretKey    string
	TokenTTL     time.Duration
	FrontendURL  string
	Logger       *logrus.Logger
}

// Enabled reports whether Google login is configured.
func (s *Service) Enabled() bool {
	return s.ClientID != "" && s.ClientSecret != ""
}

// Config returns the OAuth2 config for the given callback URL.
func (s *Service) Config(redirectURL string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     s.ClientID,
		ClientSecret: s.ClientSecret,
		RedirectURL:  redirectURL,
		Scopes:       Scopes,
		Endpoint:     googleoauth.Endpoint,
	}
}
