package dto

import (
	"time"

	"user_backend/internal/feature/auth/domain/entity"
)

// UserRes represents a user's non-secret identity fields.
// The password hash is deliberately absent and must stay that way.
type UserRes struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// UserResFromEntity converts a domain entity to its response shape.
func UserResFromEntity(u *entity.User) UserRes {
	return UserRes{
		ID:        u.ID,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
