package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CommissionPolicy splits a booking amount between owner, platform and player.
type CommissionPolicy struct {
	Rate     decimal.Decimal
	Cashback int64
}

type Split struct {
	Commission int64
	Payout     int64
	Cashback   int64
}

// Split is free while the owner's trial runs; afterwards the platform keeps Rate of the
// amount and pays the player a fixed cashback. Payout+Commission always equals amount.
func (p CommissionPolicy) Split(trialEndsAt *time.Time, now time.Time, amount int64) Split {
	if trialEndsAt != nil && now.Before(*trialEndsAt) {
		return Split{Payout: amount}
	}

	commission := decimal.NewFromInt(amount).Mul(p.Rate).Round(0).IntPart()
	if commission > amount {
		commission = amount
	}
	if commission < 0 {
		commission = 0
	}

	return Split{
		Commission: commission,
		Payout:     amount - commission,
		Cashback:   p.Cashback,
	}
}
