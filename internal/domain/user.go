package domain

import "time"

type Role string

const (
	RolePlayer Role = "player"
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
)

type User struct {
	ID             string     `json:"id"`
	Username       string     `json:"username"`
	Email          string     `json:"email"`
	Role           Role       `json:"role"`
	TelegramChatID *int64     `json:"telegram_chat_id"`
	TrialEndsAt    *time.Time `json:"trial_ends_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

type CreateUserInput struct {
	Username       string `validate:"required,max=64"`
	Email          string `validate:"required,email"`
	Role           Role   `validate:"required,oneof=player owner admin"`
	TelegramChatID *int64
	TrialDays      *int `validate:"omitempty,gte=0"`
}
