package dto

import "time"

type LoginRequest struct {
	Password string `json:"password" validate:"required,max=256"`
}

// LoginResult carries the signed cookie value. It is never serialized to the client.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
}

type SessionResponse struct {
	IsAdmin bool `json:"isAdmin"`
}
