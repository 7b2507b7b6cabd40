package service

import (
	"context"
	"errors"
	"testing"

	"ripple/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateAccountRejectsTakenUsername(t *testing.T) {
	repo := noopUserRepo()
	repo.getByUsernameFn = func(_ context.Context, username string) (*models.User, error) {
		return &models.User{ID: 99, Username: username}, nil
	}
	svc := NewUserService(repo)

	name := "taken"
	_, err := svc.UpdateAccount(context.Background(), 1, UpdateAccountInput{Username: &name})

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.CodeValidation, appErr.Code)
}

func TestUpdateAccountAppliesChanges(t *testing.T) {
	repo := noopUserRepo()
	repo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		return &models.User{ID: id, Username: "alice", Email: "alice@example.com"}, nil
	}
	var saved *models.User
	repo.updateFn = func(_ context.Context, user *models.User) error {
		saved = user
		return nil
	}
	svc := NewUserService(repo)

	name := "alice2"
	hashed := "bcrypt-hash"
	user, err := svc.UpdateAccount(context.Background(), 1, UpdateAccountInput{
		Username: &name,
		Password: &hashed,
	})
	require.NoError(t, err)

	require.NotNil(t, saved)
	assert.Equal(t, "alice2", user.Username)
	assert.Equal(t, "alice@example.com", user.Email, "email untouched")
	assert.Equal(t, "bcrypt-hash", saved.Password)
}

func TestUpdateAccountSameUsernameSkipsLookup(t *testing.T) {
	repo := noopUserRepo()
	repo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		return &models.User{ID: id, Username: "alice", Email: "alice@example.com"}, nil
	}
	repo.getByUsernameFn = func(context.Context, string) (*models.User, error) {
		t.Fatal("keeping the current username must not trigger a uniqueness check")
		return nil, nil
	}
	svc := NewUserService(repo)

	name := "alice"
	_, err := svc.UpdateAccount(context.Background(), 1, UpdateAccountInput{Username: &name})
	require.NoError(t, err)
}

func TestDeleteAccountSelfOnly(t *testing.T) {
	repo := noopUserRepo()
	deleted := uint(0)
	repo.deleteFn = func(_ context.Context, id uint) error {
		deleted = id
		return nil
	}
	svc := NewUserService(repo)

	err := svc.DeleteAccount(context.Background(), 1, 2)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.CodeUnauthorized, appErr.Code)
	assert.Zero(t, deleted)

	require.NoError(t, svc.DeleteAccount(context.Background(), 1, 1))
	assert.Equal(t, uint(1), deleted)
}
