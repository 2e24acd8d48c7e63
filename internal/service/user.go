package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/certibot/certibot/internal/auth"
	"github.com/certibot/certibot/internal/domain"
)

// ListUsers returns all registered users.
func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

// AuthorizeAdmin consults the access policy for the admin resource.
func (s *Service) AuthorizeAdmin(ctx context.Context, user *domain.User) error {
	decision, err := s.policyEngine.Evaluate(ctx, map[string]interface{}{
		"role":     string(user.Role),
		"resource": "admin",
	})
	if err != nil {
		return fmt.Errorf("failed to evaluate access policy: %w", err)
	}
	if decision != "allow" {
		return ErrForbidden
	}
	return nil
}

// EnsureDefaultAccounts creates the default admin and demo accounts if they
// do not exist yet.
func (s *Service) EnsureDefaultAccounts(ctx context.Context) error {
	defaults := []struct {
		username  string
		email     string
		password  string
		role      domain.Role
		firstName string
		lastName  string
	}{
		{"admin", "admin@certibot.com", "admin123", domain.RoleAdmin, "Admin", "User"},
		{"user", "user@certibot.com", "user123", domain.RoleUser, "Demo", "User"},
	}

	for _, acc := range defaults {
		existing, err := s.store.GetUserByEmail(ctx, acc.email)
		if err != nil {
			return fmt.Errorf("failed to check default account %s: %w", acc.email, err)
		}
		if existing != nil {
			continue
		}

		hash, err := auth.HashPassword(acc.password)
		if err != nil {
			return fmt.Errorf("failed to hash default password: %w", err)
		}
		now := time.Now().UTC()
		user := &domain.User{
			Username:     acc.username,
			Email:        acc.email,
			PasswordHash: hash,
			Role:         acc.role,
			FirstName:    acc.firstName,
			LastName:     acc.lastName,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := s.store.CreateUser(ctx, user); err != nil {
			return fmt.Errorf("failed to create default account %s: %w", acc.email, err)
		}
		log.Printf("Created default account %s", acc.email)
	}
	return nil
}
