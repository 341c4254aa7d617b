package service

import (
	"context"
	"testing"

	"github.com/stpnv0/PitchBooker/internal/domain"
	"github.com/stpnv0/PitchBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLedgerService_Balance(t *testing.T) {
	repo := mocks.NewMockLedgerRepo(t)
	svc := NewLedgerService(repo)

	repo.EXPECT().Balance(mock.Anything, domain.AccountOwner, "owner1").Return(int64(23750), nil)

	bal, err := svc.Balance(context.Background(), domain.AccountOwner, "owner1")

	require.NoError(t, err)
	assert.Equal(t, int64(23750), bal.Amount)
	assert.Equal(t, domain.AccountOwner, bal.AccountType)
}

func TestLedgerService_Balance_UnknownAccountType(t *testing.T) {
	svc := NewLedgerService(nil)

	_, err := svc.Balance(context.Background(), "bank", "x")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestLedgerService_Revenue(t *testing.T) {
	repo := mocks.NewMockLedgerRepo(t)
	svc := NewLedgerService(repo)

	expected := &domain.RevenueSummary{Commission: 1250, Payouts: 23750, Cashback: 30, Settled: 1}
	repo.EXPECT().Revenue(mock.Anything).Return(expected, nil)

	res, err := svc.Revenue(context.Background())

	require.NoError(t, err)
	assert.Equal(t, expected, res)
}
