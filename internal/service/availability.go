package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/stpnv0/PitchBooker/internal/domain"
	"github.com/stpnv0/PitchBooker/internal/service/ports"
)

// AvailabilityService answers which slots of a pitch are free on a given day.
// A slot is taken while a paid booking or an unexpired pending hold claims it.
type AvailabilityService struct {
	pitchRepo   ports.PitchRepo
	bookingRepo ports.BookingRepo
	location    *time.Location
	now         func() time.Time
}

// NewAvailabilityService reads slot times as wall clock time in loc, or UTC when loc is nil.
func NewAvailabilityService(pitchRepo ports.PitchRepo, bookingRepo ports.BookingRepo, loc *time.Location) *AvailabilityService {
	if loc == nil {
		loc = time.UTC
	}
	return &AvailabilityService{
		pitchRepo:   pitchRepo,
		bookingRepo: bookingRepo,
		location:    loc,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *AvailabilityService) ListAvailable(ctx context.Context, pitchID string, date domain.Date) (*domain.PitchAvailability, error) {
	pitch, err := s.pitchRepo.GetByID(ctx, pitchID)
	if err != nil {
		return nil, fmt.Errorf("get pitch: %w", err)
	}
	if pitch.Status != domain.PitchStatusActive {
		return nil, domain.ErrPitchInactive
	}

	claimed, err := s.bookingRepo.ClaimedSlots(ctx, pitchID, date)
	if err != nil {
		return nil, fmt.Errorf("claimed slots: %w", err)
	}

	now := s.now()
	free := make([]domain.SlotTime, 0)
	for _, slot := range domain.GenerateSlots(pitch) {
		if slices.Contains(claimed, slot) || slotStarted(date, slot, now, s.location) {
			continue
		}
		free = append(free, slot)
	}

	return &domain.PitchAvailability{
		PitchID:   pitchID,
		Date:      date,
		Available: free,
		SlotPrice: pitch.SlotPrice(),
	}, nil
}

func (s *AvailabilityService) IsAvailable(ctx context.Context, pitchID string, date domain.Date, slot domain.SlotTime) (bool, error) {
	availability, err := s.ListAvailable(ctx, pitchID, date)
	if err != nil {
		return false, err
	}
	return slices.Contains(availability.Available, slot), nil
}
