package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPitch_Validate(t *testing.T) {
	valid := Pitch{HourlyPrice: 25000, SlotInterval: 60, OpensAt: 0, ClosesAt: MinutesPerDay}
	assert.NoError(t, valid.Validate())
	assert.Equal(t, int64(25000), valid.SlotPrice())

	half := Pitch{HourlyPrice: 25000, SlotInterval: 30, OpensAt: 6 * 60, ClosesAt: 22 * 60}
	assert.NoError(t, half.Validate())
	assert.Equal(t, int64(12500), half.SlotPrice())

	cases := map[string]Pitch{
		"interval does not divide day":    {HourlyPrice: 100, SlotInterval: 7, OpensAt: 0, ClosesAt: MinutesPerDay},
		"interval does not divide window": {HourlyPrice: 100, SlotInterval: 60, OpensAt: 30, ClosesAt: 23 * 60},
		"window inverted":                 {HourlyPrice: 100, SlotInterval: 60, OpensAt: 20 * 60, ClosesAt: 8 * 60},
		"zero price":                      {HourlyPrice: 0, SlotInterval: 60, OpensAt: 0, ClosesAt: MinutesPerDay},
		"fractional slot price":           {HourlyPrice: 25001, SlotInterval: 30, OpensAt: 0, ClosesAt: MinutesPerDay},
		"zero interval":                   {HourlyPrice: 100, SlotInterval: 0, OpensAt: 0, ClosesAt: MinutesPerDay},
	}
	for name, p := range cases {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, p.Validate(), ErrValidation)
		})
	}
}
