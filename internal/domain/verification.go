package domain

import "time"

type VerificationCode struct {
	ID        string
	UserID    string
	Purpose   string
	CodeHash  []byte
	Attempts  int
	ExpiresAt time.Time
	CreatedAt time.Time
}
