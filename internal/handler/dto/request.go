package dto

type ReserveRequest struct {
	PitchID string   `json:"pitch_id" binding:"required,uuid"`
	UserID  string   `json:"user_id" binding:"required,uuid"`
	Date    string   `json:"date" binding:"required"`
	Slots   []string `json:"slots" binding:"required,min=1,dive,required"`
}

type ActorRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

type CreatePitchRequest struct {
	OwnerID             string `json:"owner_id" binding:"required,uuid"`
	Name                string `json:"name" binding:"required"`
	Location            string `json:"location" binding:"required"`
	HourlyPrice         int64  `json:"hourly_price" binding:"required,gt=0"`
	SlotIntervalMinutes int    `json:"slot_interval_minutes"`
	OpensAt             string `json:"opens_at" binding:"required"`
	ClosesAt            string `json:"closes_at" binding:"required"`
}

type UpdatePitchStatusRequest struct {
	OwnerID string `json:"owner_id" binding:"required,uuid"`
	Status  string `json:"status" binding:"required,oneof=active unlisted"`
}

type CreateUserRequest struct {
	Username       string `json:"username" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Role           string `json:"role"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
	TrialDays      *int   `json:"trial_days"`
}

type SendCodeRequest struct {
	UserID  string `json:"user_id" binding:"required,uuid"`
	Purpose string `json:"purpose" binding:"required"`
}

type CheckCodeRequest struct {
	UserID  string `json:"user_id" binding:"required,uuid"`
	Purpose string `json:"purpose" binding:"required"`
	Code    string `json:"code" binding:"required,len=6,numeric"`
}
