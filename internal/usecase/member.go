package usecase

import (
	"context"

	"pharmhub/internal/entity"
)

// MemberCredentials carries the stored secrets alongside the public
// account profile. PasswordHash (bcrypt) is preferred; TempPassword is the
// legacy plaintext field kept only for accounts that have not been
// migrated yet.
type MemberCredentials struct {
	Account      entity.MemberAccount
	PasswordHash string
	TempPassword string
}

// MemberDirectory looks up member records for authentication.
type MemberDirectory interface {
	// FindByEmail matches case-insensitively and returns ErrNotFound when
	// no member record exists for the address.
	FindByEmail(ctx context.Context, email string) (MemberCredentials, error)
}
