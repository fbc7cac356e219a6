package user

import (
	"context"
	"fmt"
	"strings"

	"shiftsync/models"
	"shiftsync/utils"

	"golang.org/x/oauth2"
)

func (s *DefaultUserService) Email(ctx context.Context, token *oauth2.Token) (string, error) {
	email, err := s.Fetcher.Email(ctx, token)
	if err != nil {
		return "", utils.NewBackendError("Failed to get user info", err)
	}
	return email, nil
}

// GetUserInfo returns the account email and whether a display name is stored.
func (s *DefaultUserService) GetUserInfo(ctx context.Context, token *oauth2.Token) (*models.UserInfoResponse, error) {
	email, err := s.Email(ctx, token)
	if err != nil {
		return nil, err
	}
	name, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, utils.NewBackendError("Failed to load user name", err)
	}

	resp := &models.UserInfoResponse{Email: email}
	if name != nil && name.FirstName != "" {
		first := name.FirstName
		resp.HasName = true
		resp.FirstName = &first
	}
	return resp, nil
}

// SaveName validates and stores the display name for the signed in account.
func (s *DefaultUserService) SaveName(ctx context.Context, token *oauth2.Token, firstName string) (string, error) {
	firstName = strings.TrimSpace(firstName)
	if firstName == "" {
		return "", utils.NewValidationError("First name is required")
	}
	email, err := s.Email(ctx, token)
	if err != nil {
		return "", err
	}
	if _, err := s.Repo.Upsert(ctx, email, firstName); err != nil {
		return "", utils.NewBackendError("Failed to save user name", fmt.Errorf("upsert %s: %w", email, err))
	}
	return firstName, nil
}
