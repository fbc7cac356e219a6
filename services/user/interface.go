package user

import (
	"context"

	userRepo "shiftsync/database/repository/user"
	"shiftsync/models"

	"golang.org/x/oauth2"
)

// UserService resolves the signed in account and its display name.
type UserService interface {
	// Email returns the Google account email bound to token.
	Email(ctx context.Context, token *oauth2.Token) (string, error)
	// GetUserInfo returns the email and stored display name.
	GetUserInfo(ctx context.Context, token *oauth2.Token) (*models.UserInfoResponse, error)
	// SaveName stores a trimmed, non-empty display name for the account.
	SaveName(ctx context.Context, token *oauth2.Token, firstName string) (string, error)
}

// EmailFetcher looks up the email behind an OAuth token.
type EmailFetcher interface {
	Email(ctx context.Context, token *oauth2.Token) (string, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo    userRepo.UserRepository
	Fetcher EmailFetcher
}
