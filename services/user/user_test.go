package user

import (
	"context"
	"errors"
	"net/http"
	"testing"

	userRepo "shiftsync/database/repository/user"
	"shiftsync/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

type staticEmail struct {
	email string
	err   error
}

func (s staticEmail) Email(context.Context, *oauth2.Token) (string, error) {
	return s.email, s.err
}

var token = &oauth2.Token{AccessToken: "at"}

func TestGetUserInfo(t *testing.T) {
	ctx := context.Background()
	svc := &DefaultUserService{Repo: userRepo.NewMemoryUserRepo(), Fetcher: staticEmail{email: "ann@example.com"}}

	info, err := svc.GetUserInfo(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", info.Email)
	assert.False(t, info.HasName)
	assert.Nil(t, info.FirstName)

	name, err := svc.SaveName(ctx, token, "  Ann  ")
	require.NoError(t, err)
	assert.Equal(t, "Ann", name)

	info, err = svc.GetUserInfo(ctx, token)
	require.NoError(t, err)
	assert.True(t, info.HasName)
	require.NotNil(t, info.FirstName)
	assert.Equal(t, "Ann", *info.FirstName)
}

func TestSaveNameValidation(t *testing.T) {
	svc := &DefaultUserService{Repo: userRepo.NewMemoryUserRepo(), Fetcher: staticEmail{email: "ann@example.com"}}
	_, err := svc.SaveName(context.Background(), token, "   ")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, utils.StatusFor(err))
}

func TestEmailFailure(t *testing.T) {
	svc := &DefaultUserService{Repo: userRepo.NewMemoryUserRepo(), Fetcher: staticEmail{err: errors.New("401 from userinfo")}}
	_, err := svc.GetUserInfo(context.Background(), token)
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, utils.StatusFor(err))

	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Failed to get user info", appErr.Message)
}

func TestNewOAuthConfig(t *testing.T) {
	cfg := NewOAuthConfig("id", "secret", "http://localhost:3000/oauth2callback")
	assert.Equal(t, Scopes, cfg.Scopes)
	assert.Contains(t, cfg.AuthCodeURL("state", oauth2.AccessTypeOffline), "access_type=offline")
}
