package catalog

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"coffee-subscription/internal/catalog"
	"coffee-subscription/internal/domain"
	catalogrepo "coffee-subscription/internal/repository/catalog"
)

// Service keeps the loaded catalog in memory. The catalog is read once and
// replaced wholesale by Reload.
type Service struct {
	repo catalogrepo.Repository

	mu      sync.RWMutex
	current *catalog.Catalog
}

func New(repo catalogrepo.Repository) *Service {
	return &Service{repo: repo}
}

// Reload reads the catalog from the repository, validates it and swaps it
// in. It returns the non fatal tier warnings of the new catalog.
func (s *Service) Reload(ctx context.Context) ([]string, error) {
	c, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	s.mu.Lock()
	s.current = c
	s.mu.Unlock()

	return c.TierWarnings(), nil
}

// Catalog returns the current catalog, loading it on first use.
func (s *Service) Catalog(ctx context.Context) (*catalog.Catalog, error) {
	s.mu.RLock()
	c := s.current
	s.mu.RUnlock()
	if c != nil {
		return c, nil
	}
	if _, err := s.Reload(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, nil
}

func (s *Service) Machine(ctx context.Context, id string) (domain.Machine, error) {
	c, err := s.Catalog(ctx)
	if err != nil {
		return domain.Machine{}, err
	}
	m, ok := c.Machine(strings.TrimSpace(id))
	if !ok {
		return domain.Machine{}, domain.ErrNotFound
	}
	return m, nil
}

// ContractOptions lists the durations a customer can pick.
type ContractOptions struct {
	Durations []domain.ContractDuration `json:"durations"`
	Default   domain.ContractDuration   `json:"default"`
}

func (s *Service) Contracts() ContractOptions {
	return ContractOptions{
		Durations: append([]domain.ContractDuration(nil), domain.Durations...),
		Default:   domain.DefaultDuration,
	}
}
