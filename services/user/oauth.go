package user

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	googleoauth "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

// Scopes requested from Google at sign in.
var Scopes = []string{
	"https://www.googleapis.com/auth/calendar",
	"https://www.googleapis.com/auth/spreadsheets.readonly",
	"https://www.googleapis.com/auth/userinfo.email",
}

// NewOAuthConfig builds the Google OAuth2 client configuration.
func NewOAuthConfig(clientID, clientSecret, redirectURL string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Scopes:       Scopes,
		Endpoint:     google.Endpoint,
	}
}

// GoogleEmailFetcher reads the email from the userinfo endpoint.
type GoogleEmailFetcher struct {
	OAuth *oauth2.Config
}

func (f *GoogleEmailFetcher) Email(ctx context.Context, token *oauth2.Token) (string, error) {
	svc, err := googleoauth.NewService(ctx, option.WithHTTPClient(f.OAuth.Client(ctx, token)))
	if err != nil {
		return "", fmt.Errorf("failed to create userinfo service: %w", err)
	}
	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to get user info: %w", err)
	}
	return info.Email, nil
}
