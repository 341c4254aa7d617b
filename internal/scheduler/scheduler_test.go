package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/PitchBooker/internal/domain"
	"github.com/stpnv0/PitchBooker/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_ExpiresStale(t *testing.T) {
	expirer := mocks.NewMockBookingExpirer(t)
	purger := mocks.NewMockCodePurger(t)
	log := newTestLogger(t)

	s := New(expirer, purger, 50*time.Millisecond, log)

	expired := []*domain.Booking{
		{ID: "b1", PitchID: "p1", PlayerID: "u1"},
	}
	expirer.EXPECT().ExpireStale(mock.Anything).Return(expired, nil)
	purger.EXPECT().PurgeExpired(mock.Anything).Return(2, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(expirer.Calls), 1)
	assert.GreaterOrEqual(t, len(purger.Calls), 1)
}

func TestScheduler_Tick_ExpireErrorStillPurges(t *testing.T) {
	expirer := mocks.NewMockBookingExpirer(t)
	purger := mocks.NewMockCodePurger(t)
	log := newTestLogger(t)

	s := New(expirer, purger, 50*time.Millisecond, log)

	expirer.EXPECT().ExpireStale(mock.Anything).Return(nil, errors.New("db error"))
	purger.EXPECT().PurgeExpired(mock.Anything).Return(0, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(purger.Calls), 1)
}

func TestScheduler_Tick_HandlesPurgeError(t *testing.T) {
	expirer := mocks.NewMockBookingExpirer(t)
	purger := mocks.NewMockCodePurger(t)

	s := New(expirer, purger, time.Hour, newTestLogger(t))

	expirer.EXPECT().ExpireStale(mock.Anything).Return(nil, nil).Once()
	purger.EXPECT().PurgeExpired(mock.Anything).Return(0, errors.New("db error")).Once()

	s.tick(context.Background())
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	expirer := mocks.NewMockBookingExpirer(t)
	purger := mocks.NewMockCodePurger(t)
	log := newTestLogger(t)

	s := New(expirer, purger, time.Second, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	expirer := mocks.NewMockBookingExpirer(t)
	purger := mocks.NewMockCodePurger(t)
	log := newTestLogger(t)

	s := New(expirer, purger, 30*time.Millisecond, log)

	expirer.EXPECT().ExpireStale(mock.Anything).Return(nil, nil)
	purger.EXPECT().PurgeExpired(mock.Anything).Return(0, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(expirer.Calls), 2)
}
