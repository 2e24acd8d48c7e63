// Package repository defines the storage interface and implementations.
package repository

import (
	"context"

	"github.com/certibot/certibot/internal/domain"
)

// Store defines the interface for data persistence. Single-row getters
// return (nil, nil) when the row does not exist; the service layer converts
// that into typed not-found errors.
type Store interface {
	// User operations
	CreateUser(ctx context.Context, user *domain.User) error
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)

	// Session operations
	CreateSession(ctx context.Context, session *domain.Session) error
	GetSession(ctx context.Context, sessionID string) (*domain.Session, error)

	// Message operations
	CreateMessage(ctx context.Context, message *domain.Message) error
	GetMessages(ctx context.Context, sessionID string) ([]domain.Message, error)

	// Certification catalog operations
	ListCertifications(ctx context.Context) ([]domain.Certification, error)
	SearchCertifications(ctx context.Context, query string) ([]domain.Certification, error)
	GetCertificationsByCategory(ctx context.Context, category string) ([]domain.Certification, error)

	// Lifecycle
	Close() error
}
