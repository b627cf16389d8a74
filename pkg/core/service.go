package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Service handles the business logic for documents.
type Service struct {
	repo Repository
}

// NewService creates a new Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Repository returns the underlying storage adapter.
func (s *Service) Repository() Repository {
	return s.repo
}

// ValidateName trims the name and checks that it addresses a single file
// directly inside the store root.
func ValidateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: a name is required", ErrInvalidName)
	}
	if name == "." || name == ".." || strings.HasPrefix(name, ".") {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if strings.ContainsAny(name, "/\\\x00") {
		return "", fmt.Errorf("%w: %q contains a path separator", ErrInvalidName, name)
	}
	return name, nil
}

// ListDocuments returns the names of all documents.
func (s *Service) ListDocuments(ctx context.Context) ([]string, error) {
	return s.repo.List(ctx)
}

// GetDocument retrieves a document.
func (s *Service) GetDocument(ctx context.Context, name string) (Document, error) {
	clean, err := ValidateName(name)
	if err != nil {
		return Document{}, err
	}
	return s.repo.Read(ctx, clean)
}

// SaveDocument overwrites the content of a document, creating it if needed.
func (s *Service) SaveDocument(ctx context.Context, name string, content []byte) error {
	clean, err := ValidateName(name)
	if err != nil {
		return err
	}
	return s.repo.Write(ctx, clean, content)
}

// CreateDocument adds an empty document and returns the normalized name.
func (s *Service) CreateDocument(ctx context.Context, name string) (string, error) {
	clean, err := ValidateName(name)
	if err != nil {
		return "", err
	}
	if err := s.repo.Create(ctx, clean); err != nil {
		return clean, err
	}
	return clean, nil
}

// DeleteDocument removes a document.
func (s *Service) DeleteDocument(ctx context.Context, name string) error {
	clean, err := ValidateName(name)
	if err != nil {
		// A name that cannot exist in the store is reported as missing.
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	return s.repo.Delete(ctx, clean)
}

// Watch observes changes in the repository if supported.
func (s *Service) Watch(ctx context.Context) (<-chan Event, error) {
	w, ok := s.repo.(Watchable)
	if !ok {
		return nil, errors.New("repository does not support watching")
	}
	return w.Watch(ctx)
}
