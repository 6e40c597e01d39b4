package models

import (
	"encoding/json"
	"time"

	"shopbackend/internal/domain"
)

// User is the persisted account record. SessionToken holds the single
// active opaque token; empty string means no active session.
type User struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Lastname     string          `json:"lastname"`
	Email        string          `json:"email"`
	PasswordHash string          `json:"-"`
	Role         domain.Role     `json:"role"`
	SessionToken string          `json:"-"`
	Cart         json.RawMessage `json:"cart"`
	History      json.RawMessage `json:"history"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// Profile is the public shape returned by GET /api/users/auth.
type Profile struct {
	IsAdmin  bool            `json:"isAdmin"`
	IsAuth   bool            `json:"isAuth"`
	Email    string          `json:"email"`
	Name     string          `json:"name"`
	Lastname string          `json:"lastname"`
	Role     domain.Role     `json:"role"`
	Cart     json.RawMessage `json:"cart"`
	History  json.RawMessage `json:"history"`
}

func (u *User) ToProfile() Profile {
	return Profile{
		IsAdmin:  u.Role.IsAdmin(),
		IsAuth:   true,
		Email:    u.Email,
		Name:     u.Name,
		Lastname: u.Lastname,
		Role:     u.Role,
		Cart:     u.Cart,
		History:  u.History,
	}
}
