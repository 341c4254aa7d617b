package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stpnv0/PitchBooker/internal/domain"
	"github.com/stpnv0/PitchBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const ownerUUID = "5b0f4c9e-8d1a-4c1e-9f57-3f1d2a7b8c90"

func validPitchInput() domain.CreatePitchInput {
	return domain.CreatePitchInput{
		OwnerID:      ownerUUID,
		Name:         "Surulere Arena",
		Location:     "Lagos",
		HourlyPrice:  25000,
		SlotInterval: 60,
		OpensAt:      "08:00",
		ClosesAt:     "22:00",
	}
}

func TestPitchService_Create_Success(t *testing.T) {
	repo := mocks.NewMockPitchRepo(t)
	users := mocks.NewMockUserRepo(t)
	svc := NewPitchService(repo, users)

	users.EXPECT().GetByID(mock.Anything, ownerUUID).Return(&domain.User{ID: ownerUUID, Role: domain.RoleOwner}, nil)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	pitch, err := svc.Create(context.Background(), validPitchInput())

	require.NoError(t, err)
	assert.NotEmpty(t, pitch.ID)
	assert.Equal(t, domain.PitchStatusActive, pitch.Status)
	assert.Equal(t, 8*60, pitch.OpensAt)
	assert.Equal(t, 22*60, pitch.ClosesAt)
}

func TestPitchService_Create_DefaultsToFullDay(t *testing.T) {
	repo := mocks.NewMockPitchRepo(t)
	users := mocks.NewMockUserRepo(t)
	svc := NewPitchService(repo, users)

	users.EXPECT().GetByID(mock.Anything, ownerUUID).Return(&domain.User{ID: ownerUUID, Role: domain.RoleOwner}, nil)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	input := validPitchInput()
	input.OpensAt, input.ClosesAt = "", ""

	pitch, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, 0, pitch.OpensAt)
	assert.Equal(t, domain.MinutesPerDay, pitch.ClosesAt)
}

func TestPitchService_Create_RejectsMisconfiguredInterval(t *testing.T) {
	repo := mocks.NewMockPitchRepo(t)
	users := mocks.NewMockUserRepo(t)
	svc := NewPitchService(repo, users)

	users.EXPECT().GetByID(mock.Anything, ownerUUID).Return(&domain.User{ID: ownerUUID, Role: domain.RoleOwner}, nil)

	input := validPitchInput()
	input.SlotInterval = 70

	_, err := svc.Create(context.Background(), input)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPitchService_Create_InvalidInput(t *testing.T) {
	svc := NewPitchService(nil, nil)

	tests := []struct {
		name   string
		mutate func(*domain.CreatePitchInput)
	}{
		{"missing name", func(in *domain.CreatePitchInput) { in.Name = "" }},
		{"owner not uuid", func(in *domain.CreatePitchInput) { in.OwnerID = "owner" }},
		{"zero price", func(in *domain.CreatePitchInput) { in.HourlyPrice = 0 }},
		{"bad opening time", func(in *domain.CreatePitchInput) { in.OpensAt = "8am" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validPitchInput()
			tt.mutate(&input)

			_, err := svc.Create(context.Background(), input)

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestPitchService_Create_NotAnOwner(t *testing.T) {
	repo := mocks.NewMockPitchRepo(t)
	users := mocks.NewMockUserRepo(t)
	svc := NewPitchService(repo, users)

	users.EXPECT().GetByID(mock.Anything, ownerUUID).Return(&domain.User{ID: ownerUUID, Role: domain.RolePlayer}, nil)

	_, err := svc.Create(context.Background(), validPitchInput())

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestPitchService_Create_RepoError(t *testing.T) {
	repo := mocks.NewMockPitchRepo(t)
	users := mocks.NewMockUserRepo(t)
	svc := NewPitchService(repo, users)

	repoErr := errors.New("db error")
	users.EXPECT().GetByID(mock.Anything, ownerUUID).Return(&domain.User{ID: ownerUUID, Role: domain.RoleOwner}, nil)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(repoErr)

	_, err := svc.Create(context.Background(), validPitchInput())

	assert.ErrorIs(t, err, repoErr)
}

func TestPitchService_SetStatus(t *testing.T) {
	repo := mocks.NewMockPitchRepo(t)
	svc := NewPitchService(repo, nil)

	repo.EXPECT().GetByID(mock.Anything, "p1").Return(testPitch(), nil)
	repo.EXPECT().UpdateStatus(mock.Anything, "p1", domain.PitchStatusUnlisted).Return(nil)

	err := svc.SetStatus(context.Background(), "p1", "owner1", domain.PitchStatusUnlisted)

	require.NoError(t, err)
}

func TestPitchService_SetStatus_NotOwner(t *testing.T) {
	repo := mocks.NewMockPitchRepo(t)
	svc := NewPitchService(repo, nil)

	repo.EXPECT().GetByID(mock.Anything, "p1").Return(testPitch(), nil)

	err := svc.SetStatus(context.Background(), "p1", "someone", domain.PitchStatusUnlisted)

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestPitchService_SetStatus_Unknown(t *testing.T) {
	svc := NewPitchService(nil, nil)

	err := svc.SetStatus(context.Background(), "p1", "owner1", "archived")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPitchService_List(t *testing.T) {
	repo := mocks.NewMockPitchRepo(t)
	svc := NewPitchService(repo, nil)

	repo.EXPECT().List(mock.Anything).Return([]*domain.Pitch{testPitch()}, nil)

	res, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, res, 1)
}
