package service

import (
	"context"
	"fmt"

	"github.com/certibot/certibot/internal/domain"
)

// ListCertifications returns the full catalog.
func (s *Service) ListCertifications(ctx context.Context) ([]domain.Certification, error) {
	certs, err := s.store.ListCertifications(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list certifications: %w", err)
	}
	return certs, nil
}

// SearchCertifications filters the catalog by a case-insensitive substring
// match over name, description, category, provider and tags.
func (s *Service) SearchCertifications(ctx context.Context, query string) ([]domain.Certification, error) {
	certs, err := s.store.SearchCertifications(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search certifications: %w", err)
	}
	if certs == nil {
		certs = []domain.Certification{}
	}
	return certs, nil
}

// GetCertificationsByCategory returns catalog entries in the given category.
func (s *Service) GetCertificationsByCategory(ctx context.Context, category string) ([]domain.Certification, error) {
	certs, err := s.store.GetCertificationsByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed to get certifications by category: %w", err)
	}
	if certs == nil {
		certs = []domain.Certification{}
	}
	return certs, nil
}
