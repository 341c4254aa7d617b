package domain

import (
	"fmt"
	"time"
)

type PitchStatus string

const (
	PitchStatusActive   PitchStatus = "active"
	PitchStatusUnlisted PitchStatus = "unlisted"
)

type Pitch struct {
	ID           string      `json:"id"`
	OwnerID      string      `json:"owner_id"`
	Name         string      `json:"name"`
	Location     string      `json:"location"`
	HourlyPrice  int64       `json:"hourly_price"`
	SlotInterval int         `json:"slot_interval_minutes"`
	OpensAt      int         `json:"opens_at_minute"`
	ClosesAt     int         `json:"closes_at_minute"`
	Status       PitchStatus `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// SlotPrice is the price of a single slot in minor units.
func (p *Pitch) SlotPrice() int64 {
	return p.HourlyPrice * int64(p.SlotInterval) / 60
}

// Validate rejects pitches whose slots would not tile the day or the operating window exactly.
func (p *Pitch) Validate() error {
	if p.SlotInterval <= 0 || MinutesPerDay%p.SlotInterval != 0 {
		return fmt.Errorf("%w: slot interval must evenly divide 24h", ErrValidation)
	}
	if p.OpensAt < 0 || p.ClosesAt > MinutesPerDay || p.OpensAt >= p.ClosesAt {
		return fmt.Errorf("%w: invalid operating window", ErrValidation)
	}
	if (p.ClosesAt-p.OpensAt)%p.SlotInterval != 0 {
		return fmt.Errorf("%w: slot interval must evenly divide the operating window", ErrValidation)
	}
	if p.HourlyPrice <= 0 {
		return fmt.Errorf("%w: hourly price must be positive", ErrValidation)
	}
	if p.HourlyPrice*int64(p.SlotInterval)%60 != 0 {
		return fmt.Errorf("%w: hourly price does not split into whole slot prices", ErrValidation)
	}
	return nil
}

type CreatePitchInput struct {
	OwnerID      string `validate:"required,uuid"`
	Name         string `validate:"required,max=200"`
	Location     string `validate:"required,max=500"`
	HourlyPrice  int64  `validate:"gt=0"`
	SlotInterval int    `validate:"gt=0,lte=1440"`
	OpensAt      string
	ClosesAt     string
}

type PitchAvailability struct {
	PitchID   string     `json:"pitch_id"`
	Date      Date       `json:"date"`
	Available []SlotTime `json:"available"`
	SlotPrice int64      `json:"slot_price"`
}
