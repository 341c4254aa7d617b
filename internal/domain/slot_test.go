package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSlotTime(t *testing.T) {
	s, err := ParseSlotTime("16:00")
	require.NoError(t, err)
	assert.Equal(t, SlotTime(960), s)
	assert.Equal(t, "16:00", s.String())

	_, err = ParseSlotTime("24:00")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = ParseSlotTime("4pm")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestParseMinuteOfDay_EndOfDay(t *testing.T) {
	m, err := ParseMinuteOfDay("24:00")
	require.NoError(t, err)
	assert.Equal(t, MinutesPerDay, m)
}

func TestGenerateSlots(t *testing.T) {
	p := &Pitch{SlotInterval: 90, OpensAt: 8 * 60, ClosesAt: 14 * 60}

	slots := GenerateSlots(p)

	assert.Equal(t, []SlotTime{480, 570, 660, 750}, slots)
}

func TestValidateSlots(t *testing.T) {
	p := &Pitch{SlotInterval: 60, OpensAt: 6 * 60, ClosesAt: 23 * 60}

	sorted, err := ValidateSlots(p, []SlotTime{17 * 60, 16 * 60})
	require.NoError(t, err)
	assert.Equal(t, []SlotTime{16 * 60, 17 * 60}, sorted)

	_, err = ValidateSlots(p, nil)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = ValidateSlots(p, []SlotTime{16 * 60, 16 * 60})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = ValidateSlots(p, []SlotTime{16*60 + 30})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = ValidateSlots(p, []SlotTime{5 * 60})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = ValidateSlots(p, []SlotTime{23 * 60})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDate_JSON(t *testing.T) {
	d, err := ParseDate("2025-03-01")
	require.NoError(t, err)

	b, err := json.Marshal(struct {
		Date  Date       `json:"date"`
		Slots []SlotTime `json:"slots"`
	}{Date: d, Slots: []SlotTime{960}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2025-03-01","slots":["16:00"]}`, string(b))

	var back Date
	require.NoError(t, json.Unmarshal([]byte(`"2025-03-01"`), &back))
	assert.True(t, back.Equal(d.Time))
}

func TestSlotTime_StartsAt(t *testing.T) {
	date, err := ParseDate("2026-10-16")
	require.NoError(t, err)
	lagos := time.FixedZone("WAT", 60*60)

	got := SlotTime(16 * 60).StartsAt(date, lagos)

	assert.Equal(t, time.Date(2026, 10, 16, 15, 0, 0, 0, time.UTC), got.UTC())
}
