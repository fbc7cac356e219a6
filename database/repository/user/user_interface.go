package userRepo

import (
	"context"

	"shiftsync/models"
)

// UserRepository stores the display name chosen for each Google account.
type UserRepository interface {
	// GetByEmail returns the display name for email, or nil when none is stored.
	GetByEmail(ctx context.Context, email string) (*models.DisplayName, error)
	// Upsert stores or replaces the display name for an email.
	Upsert(ctx context.Context, email, firstName string) (*models.DisplayName, error)
}
