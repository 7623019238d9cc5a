package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/DavidJulianGit/BJJTracker/internal/domain"
	"github.com/DavidJulianGit/BJJTracker/internal/repo"
)

// ProfileUpdate carries the mutable profile fields. Nil pointers and empty
// strings leave the stored value unchanged, matching the API's partial-update
// contract.
type ProfileUpdate struct {
	Username string
	Rank     domain.Rank
	Stripes  *int
}

// UserService implements profile reads and mutations for the
// authenticated account.
type UserService struct {
	users repo.UserRepo
}

// NewUserService constructs a UserService.
func NewUserService(users repo.UserRepo) *UserService {
	return &UserService{users: users}
}

// Get returns the account by id.
func (s *UserService) Get(ctx context.Context, id uuid.UUID) (domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("service.UserService.Get: %w", err)
	}
	return user, nil
}

// UpdateProfile applies a partial update to username, rank, and stripes.
func (s *UserService) UpdateProfile(ctx context.Context, id uuid.UUID, update ProfileUpdate) (domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("service.UserService.UpdateProfile: %w", err)
	}

	if name := strings.TrimSpace(update.Username); name != "" {
		user.Username = name
	}
	if update.Rank != "" {
		user.Rank = update.Rank
	}
	if update.Stripes != nil {
		user.Stripes = *update.Stripes
	}
	if err := validateBelt(user.Rank, user.Stripes); err != nil {
		return domain.User{}, err
	}

	updated, err := s.users.UpdateProfile(ctx, user)
	if err != nil {
		return domain.User{}, fmt.Errorf("service.UserService.UpdateProfile: %w", err)
	}
	return updated, nil
}

// ChangePassword rehashes and stores a new password.
func (s *UserService) ChangePassword(ctx context.Context, id uuid.UUID, newPassword string) error {
	if newPassword == "" {
		return fmt.Errorf("%w: new password is required", domain.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("service.UserService.ChangePassword: %w", err)
	}

	if err := s.users.UpdatePassword(ctx, id, string(hash)); err != nil {
		return fmt.Errorf("service.UserService.ChangePassword: %w", err)
	}
	return nil
}

// Delete removes the account. Owned catalogs and sessions go with it via the
// database's cascading foreign keys.
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.UserService.Delete: %w", err)
	}
	return nil
}
