// Package service contains the business logic for the BJJTracker API.
// Services validate inputs, enforce catalog invariants, and orchestrate repo
// calls. No SQL lives here — services depend on repo interfaces, not
// implementations.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/DavidJulianGit/BJJTracker/internal/auth"
	"github.com/DavidJulianGit/BJJTracker/internal/domain"
	"github.com/DavidJulianGit/BJJTracker/internal/repo"
)

// SignupInput is the payload of an account registration.
type SignupInput struct {
	Email    string
	Password string
	Username string
	Rank     domain.Rank
	Stripes  int
}

// AuthService implements signup and login. It owns credential hashing; token
// minting is delegated to the auth package.
type AuthService struct {
	users  repo.UserRepo
	tokens *auth.Manager
}

// NewAuthService constructs an AuthService.
func NewAuthService(users repo.UserRepo, tokens *auth.Manager) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Signup registers a new account and returns the user plus a fresh token.
// Emails are stored lower-cased; uniqueness is case-insensitive.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (domain.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || !strings.Contains(email, "@") {
		return domain.User{}, "", fmt.Errorf("%w: a valid email is required", domain.ErrValidation)
	}
	if in.Password == "" {
		return domain.User{}, "", fmt.Errorf("%w: password is required", domain.ErrValidation)
	}

	rank := in.Rank
	if rank == "" {
		rank = domain.RankWhite
	}
	if err := validateBelt(rank, in.Stripes); err != nil {
		return domain.User{}, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("service.AuthService.Signup: %w", err)
	}

	user, err := s.users.Create(ctx, domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Username:     strings.TrimSpace(in.Username),
		Rank:         rank,
		Stripes:      in.Stripes,
	})
	if err != nil {
		return domain.User{}, "", fmt.Errorf("service.AuthService.Signup: %w", err)
	}

	token, err := s.tokens.Mint(user.ID)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("service.AuthService.Signup: %w", err)
	}
	return user, token, nil
}

// Login verifies credentials and returns the user plus a fresh token.
// An unknown email and a wrong password both return
// domain.ErrInvalidCredentials so the response never reveals which one it was.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.User{}, "", fmt.Errorf("service.AuthService.Login: %w", domain.ErrInvalidCredentials)
		}
		return domain.User{}, "", fmt.Errorf("service.AuthService.Login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return domain.User{}, "", fmt.Errorf("service.AuthService.Login: %w", domain.ErrInvalidCredentials)
	}

	token, err := s.tokens.Mint(user.ID)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("service.AuthService.Login: %w", err)
	}
	return user, token, nil
}

// validateBelt enforces the rank enum and the stripe range shared by signup
// and profile updates.
func validateBelt(rank domain.Rank, stripes int) error {
	if !rank.Valid() {
		return fmt.Errorf("%w: unknown rank %q", domain.ErrValidation, rank)
	}
	if stripes < 0 || stripes > domain.MaxStripes {
		return fmt.Errorf("%w: stripes must be between 0 and %d", domain.ErrValidation, domain.MaxStripes)
	}
	return nil
}
