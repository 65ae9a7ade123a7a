// Package store persists the preparer profile and saved scenarios.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rgehrsitz/sgfin/internal/domain"
)

var (
	// ErrNotFound is returned when a scenario or profile does not exist.
	ErrNotFound = errors.New("not found")
)

// Store is implemented by the SQLite and in-memory backends. Scenarios are
// returned as copies; callers may modify them freely.
type Store interface {
	GetProfile(ctx context.Context) (domain.Preparer, error)
	SaveProfile(ctx context.Context, p domain.Preparer) error

	// SaveScenario inserts a scenario, assigning an ID when it has none, or
	// replaces the scenario with the same ID. It returns the stored copy.
	SaveScenario(ctx context.Context, s *domain.Scenario) (*domain.Scenario, error)
	GetScenario(ctx context.Context, id string) (*domain.Scenario, error)
	// ListScenarios returns all scenarios ordered by name.
	ListScenarios(ctx context.Context) ([]*domain.Scenario, error)
	DeleteScenario(ctx context.Context, id string) error

	Close() error
}

// CheckScenario rejects scenarios that cannot be saved.
func CheckScenario(s *domain.Scenario) error {
	if s == nil {
		return fmt.Errorf("scenario is required")
	}
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("scenario name is required")
	}
	for i, c := range s.Calculations {
		if !c.Calculator.Valid() {
			return fmt.Errorf("calculation %d: unknown calculator %q", i+1, c.Calculator)
		}
	}
	return nil
}
