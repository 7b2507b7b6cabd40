package service

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/repository"
)

// UserService provides account-level operations. Signup and login live
// in the HTTP layer next to token issuance; this service covers what the
// rest of the API needs.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// ListUsers returns a page of users, newest first.
func (s *UserService) ListUsers(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.userRepo.List(ctx, limit, offset)
}

// GetUserByID returns a single user.
func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// UpdateAccountInput carries optional account changes. Nil fields are
// left unchanged. Password must already be hashed by the caller.
type UpdateAccountInput struct {
	Username *string
	Email    *string
	Password *string
}

// UpdateAccount applies account changes for the user, rejecting a
// username or email already held by someone else.
func (s *UserService) UpdateAccount(ctx context.Context, userID uint, in UpdateAccountInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if in.Username != nil && *in.Username != user.Username {
		existing, err := s.userRepo.GetByUsername(ctx, *in.Username)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, models.NewValidationError("Username is already taken")
		}
		user.Username = *in.Username
	}
	if in.Email != nil && *in.Email != user.Email {
		existing, err := s.userRepo.GetByEmail(ctx, *in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, models.NewValidationError("Email is already taken")
		}
		user.Email = *in.Email
	}
	if in.Password != nil {
		user.Password = *in.Password
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteAccount removes a user and everything they own. Users may only
// delete themselves.
func (s *UserService) DeleteAccount(ctx context.Context, requesterID, targetID uint) error {
	if requesterID != targetID {
		return models.NewUnauthorizedError("You can only delete your own account")
	}
	if _, err := s.userRepo.GetByID(ctx, targetID); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, targetID)
}
