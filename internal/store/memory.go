package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rgehrsitz/sgfin/internal/domain"
)

// Memory is an in-memory Store for tests and the TUI.
type Memory struct {
	mu        sync.RWMutex
	profile   *domain.Preparer
	scenarios map[string]*domain.Scenario
	now       func() time.Time
}

func NewMemory() *Memory {
	return &Memory{
		scenarios: make(map[string]*domain.Scenario),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (m *Memory) GetProfile(_ context.Context) (domain.Preparer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.profile == nil {
		return domain.Preparer{}, ErrNotFound
	}
	return *m.profile, nil
}

func (m *Memory) SaveProfile(_ context.Context, p domain.Preparer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profile = &p
	return nil
}

func (m *Memory) SaveScenario(_ context.Context, s *domain.Scenario) (*domain.Scenario, error) {
	if err := CheckScenario(s); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	stored := s.DeepCopy()
	now := m.now()
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	if existing, ok := m.scenarios[stored.ID]; ok {
		stored.CreatedAt = existing.CreatedAt
	} else {
		stored.CreatedAt = now
	}
	stored.UpdatedAt = now
	m.scenarios[stored.ID] = stored
	return stored.DeepCopy(), nil
}

func (m *Memory) GetScenario(_ context.Context, id string) (*domain.Scenario, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.scenarios[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s.DeepCopy(), nil
}

func (m *Memory) ListScenarios(_ context.Context) ([]*domain.Scenario, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.Scenario, 0, len(m.scenarios))
	for _, s := range m.scenarios {
		out = append(out, s.DeepCopy())
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *Memory) DeleteScenario(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.scenarios[id]; !ok {
		return ErrNotFound
	}
	delete(m.scenarios, id)
	return nil
}

func (m *Memory) Close() error { return nil }
