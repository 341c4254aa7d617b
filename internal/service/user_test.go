package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/PitchBooker/internal/domain"
	"github.com/stpnv0/PitchBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testTrial = 30 * 24 * time.Hour

func TestUserService_Create_Player(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, testTrial)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	chatID := int64(12345)
	input := domain.CreateUserInput{
		Username:       "tunde",
		Email:          "tunde@example.com",
		Role:           domain.RolePlayer,
		TelegramChatID: &chatID,
	}

	user, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "tunde", user.Username)
	assert.Equal(t, domain.RolePlayer, user.Role)
	assert.Equal(t, &chatID, user.TelegramChatID)
	assert.Nil(t, user.TrialEndsAt)
	assert.NotEmpty(t, user.ID)
}

func TestUserService_Create_OwnerGetsTrial(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, testTrial)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	before := time.Now().UTC()
	user, err := svc.Create(context.Background(), domain.CreateUserInput{
		Username: "ada",
		Email:    "ada@example.com",
		Role:     domain.RoleOwner,
	})

	require.NoError(t, err)
	require.NotNil(t, user.TrialEndsAt)
	assert.WithinDuration(t, before.Add(testTrial), *user.TrialEndsAt, 5*time.Second)
}

func TestUserService_Create_OwnerExplicitTrialDays(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, testTrial)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	zero := 0
	before := time.Now().UTC()
	user, err := svc.Create(context.Background(), domain.CreateUserInput{
		Username:  "ada",
		Email:     "ada@example.com",
		Role:      domain.RoleOwner,
		TrialDays: &zero,
	})

	require.NoError(t, err)
	require.NotNil(t, user.TrialEndsAt)
	assert.WithinDuration(t, before, *user.TrialEndsAt, 5*time.Second)
}

func TestUserService_Create_Validation(t *testing.T) {
	svc := NewUserService(nil, testTrial)

	tests := []struct {
		name  string
		input domain.CreateUserInput
	}{
		{"empty username", domain.CreateUserInput{Email: "a@example.com", Role: domain.RolePlayer}},
		{"bad email", domain.CreateUserInput{Username: "a", Email: "nope", Role: domain.RolePlayer}},
		{"unknown role", domain.CreateUserInput{Username: "a", Email: "a@example.com", Role: "referee"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.input)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestUserService_Create_RepoError(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, testTrial)

	repoErr := errors.New("db error")
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(repoErr)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{
		Username: "user",
		Email:    "user@example.com",
		Role:     domain.RolePlayer,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, repoErr)
}

func TestUserService_Create_UsernameTaken(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, testTrial)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrUsernameTaken)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{
		Username: "taken",
		Email:    "taken@example.com",
		Role:     domain.RolePlayer,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestUserService_GetByID_Success(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, testTrial)

	expected := &domain.User{ID: "u1", Username: "alice"}
	repo.EXPECT().GetByID(mock.Anything, "u1").Return(expected, nil)

	user, err := svc.GetByID(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, expected, user)
}

func TestUserService_GetByID_NotFound(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, testTrial)

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrUserNotFound)

	_, err := svc.GetByID(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserService_List_Success(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, testTrial)

	expected := []*domain.User{{ID: "u1"}, {ID: "u2"}}
	repo.EXPECT().List(mock.Anything).Return(expected, nil)

	users, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, users, 2)
}
