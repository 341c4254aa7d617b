package service

import (
	"context"
	"testing"
	"time"

	"github.com/stpnv0/PitchBooker/internal/domain"
	"github.com/stpnv0/PitchBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAvailabilityService(t *testing.T) (*AvailabilityService, *mocks.MockPitchRepo, *mocks.MockBookingRepo) {
	pitches := mocks.NewMockPitchRepo(t)
	bookings := mocks.NewMockBookingRepo(t)
	svc := NewAvailabilityService(pitches, bookings, time.UTC)
	svc.now = func() time.Time { return testNow }
	return svc, pitches, bookings
}

func TestAvailabilityService_ListAvailable_ExcludesClaimed(t *testing.T) {
	svc, pitches, bookings := newAvailabilityService(t)

	day := tomorrow()
	pitches.EXPECT().GetByID(mock.Anything, "p1").Return(testPitch(), nil)
	bookings.EXPECT().ClaimedSlots(mock.Anything, "p1", day).Return([]domain.SlotTime{16 * 60, 17 * 60}, nil)

	res, err := svc.ListAvailable(context.Background(), "p1", day)

	require.NoError(t, err)
	assert.Len(t, res.Available, 12)
	assert.NotContains(t, res.Available, domain.SlotTime(16*60))
	assert.NotContains(t, res.Available, domain.SlotTime(17*60))
	assert.Contains(t, res.Available, domain.SlotTime(8*60))
	assert.Equal(t, int64(25000), res.SlotPrice)
}

func TestAvailabilityService_ListAvailable_TodaySkipsStartedSlots(t *testing.T) {
	svc, pitches, bookings := newAvailabilityService(t)

	today := domain.DateOf(testNow)
	pitches.EXPECT().GetByID(mock.Anything, "p1").Return(testPitch(), nil)
	bookings.EXPECT().ClaimedSlots(mock.Anything, "p1", today).Return(nil, nil)

	res, err := svc.ListAvailable(context.Background(), "p1", today)

	require.NoError(t, err)
	require.NotEmpty(t, res.Available)
	assert.Equal(t, domain.SlotTime(11*60), res.Available[0])
}

func TestAvailabilityService_ListAvailable_SlotsReadInPitchZone(t *testing.T) {
	pitches := mocks.NewMockPitchRepo(t)
	bookings := mocks.NewMockBookingRepo(t)
	lagos := time.FixedZone("WAT", 60*60)
	svc := NewAvailabilityService(pitches, bookings, lagos)
	svc.now = func() time.Time { return testNow }

	today := domain.DateOf(testNow)
	pitches.EXPECT().GetByID(mock.Anything, "p1").Return(testPitch(), nil)
	bookings.EXPECT().ClaimedSlots(mock.Anything, "p1", today).Return(nil, nil)

	res, err := svc.ListAvailable(context.Background(), "p1", today)

	require.NoError(t, err)
	require.NotEmpty(t, res.Available)
	assert.Equal(t, domain.SlotTime(12*60), res.Available[0])
}

func TestAvailabilityService_ListAvailable_UnlistedPitch(t *testing.T) {
	svc, pitches, _ := newAvailabilityService(t)

	pitch := testPitch()
	pitch.Status = domain.PitchStatusUnlisted
	pitches.EXPECT().GetByID(mock.Anything, "p1").Return(pitch, nil)

	_, err := svc.ListAvailable(context.Background(), "p1", tomorrow())

	assert.ErrorIs(t, err, domain.ErrPitchInactive)
}

func TestAvailabilityService_IsAvailable(t *testing.T) {
	svc, pitches, bookings := newAvailabilityService(t)

	day := tomorrow()
	pitches.EXPECT().GetByID(mock.Anything, "p1").Return(testPitch(), nil)
	bookings.EXPECT().ClaimedSlots(mock.Anything, "p1", day).Return([]domain.SlotTime{16 * 60}, nil)

	free, err := svc.IsAvailable(context.Background(), "p1", day, 18*60)
	require.NoError(t, err)
	assert.True(t, free)

	taken, err := svc.IsAvailable(context.Background(), "p1", day, 16*60)
	require.NoError(t, err)
	assert.False(t, taken)
}
