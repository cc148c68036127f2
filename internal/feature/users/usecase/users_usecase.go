// Package usecase implements the business logic for user listing operations.
package usecase

import (
	"context"

	"user_backend/internal/feature/auth/domain/entity"
)

// UserLister abstracts read access to the user store.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserLister interface {
	FindAll(ctx context.Context) ([]*entity.User, error)
}

// UsersUsecase provides business logic for user listing.
type UsersUsecase struct {
	users UserLister
}

// NewUsersUsecase creates a new UsersUsecase with the given repository.
func NewUsersUsecase(users UserLister) *UsersUsecase {
	return &UsersUsecase{users: users}
}

// ListUsers returns all registered users.
// Any authenticated caller may list all users: the trust model is flat,
// there is no per-user ownership or role check.
func (u *UsersUsecase) ListUsers(ctx context.Context) ([]*entity.User, error) {
	return u.users.FindAll(ctx)
}
