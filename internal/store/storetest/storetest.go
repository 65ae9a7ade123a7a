// Package storetest holds the behaviour every store.Store must share.
package storetest

import (
	"context"
	"testing"

	"github.com/rgehrsitz/sgfin/internal/domain"
	"github.com/rgehrsitz/sgfin/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Run exercises a fresh store returned by open.
func Run(t *testing.T, open func(t *testing.T) store.Store) {
	t.Run("profile", func(t *testing.T) { testProfile(t, open(t)) })
	t.Run("scenario lifecycle", func(t *testing.T) { testScenarioLifecycle(t, open(t)) })
	t.Run("scenario isolation", func(t *testing.T) { testScenarioIsolation(t, open(t)) })
	t.Run("rejects invalid scenarios", func(t *testing.T) { testInvalid(t, open(t)) })
}

func sampleScenario(name string) *domain.Scenario {
	return &domain.Scenario{
		Name:   name,
		Client: domain.Client{Name: "John Lim", Email: "john@example.com"},
		Calculations: []domain.CalculationRequest{
			{Calculator: domain.CalcBSD, Label: "Condo", Inputs: map[string]string{"propertyValue": "1000000"}},
			{Calculator: domain.CalcABSD, Inputs: map[string]string{"propertyValue": "1000000", "buyerCategory": "citizen_second"}},
		},
	}
}

func testProfile(t *testing.T, s store.Store) {
	ctx := context.Background()

	_, err := s.GetProfile(ctx)
	assert.ErrorIs(t, err, store.ErrNotFound)

	p := domain.Preparer{Name: "Jane Tan", CEANumber: "R012345A", Mobile: "+65 9123 4567", Email: "jane@example.com"}
	require.NoError(t, s.SaveProfile(ctx, p))
	got, err := s.GetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, p, got)

	p.Mobile = "+65 8000 0000"
	require.NoError(t, s.SaveProfile(ctx, p))
	got, err = s.GetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "+65 8000 0000", got.Mobile)
}

func testScenarioLifecycle(t *testing.T, s store.Store) {
	ctx := context.Background()

	saved, err := s.SaveScenario(ctx, sampleScenario("Second property"))
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)
	assert.False(t, saved.CreatedAt.IsZero())
	assert.Equal(t, saved.CreatedAt, saved.UpdatedAt)

	got, err := s.GetScenario(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Second property", got.Name)
	assert.Equal(t, "John Lim", got.Client.Name)
	assert.Nil(t, got.Preparer)
	require.Len(t, got.Calculations, 2)
	assert.Equal(t, "Condo", got.Calculations[0].Label)
	assert.Equal(t, "citizen_second", got.Calculations[1].Inputs["buyerCategory"])

	got.Name = "Second property (revised)"
	got.Preparer = &domain.Preparer{Name: "Jane Tan"}
	updated, err := s.SaveScenario(ctx, got)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, updated.ID)
	assert.Equal(t, saved.CreatedAt, updated.CreatedAt)
	assert.False(t, updated.UpdatedAt.Before(saved.UpdatedAt))
	require.NotNil(t, updated.Preparer)
	assert.Equal(t, "Jane Tan", updated.Preparer.Name)

	_, err = s.SaveScenario(ctx, sampleScenario("A first home"))
	require.NoError(t, err)

	list, err := s.ListScenarios(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "A first home", list[0].Name)
	assert.Equal(t, "Second property (revised)", list[1].Name)

	require.NoError(t, s.DeleteScenario(ctx, saved.ID))
	_, err = s.GetScenario(ctx, saved.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.ErrorIs(t, s.DeleteScenario(ctx, saved.ID), store.ErrNotFound)

	list, err = s.ListScenarios(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func testScenarioIsolation(t *testing.T, s store.Store) {
	ctx := context.Background()

	in := sampleScenario("Isolation")
	saved, err := s.SaveScenario(ctx, in)
	require.NoError(t, err)
	assert.Empty(t, in.ID, "caller's scenario must not be modified")

	in.Calculations[0].Inputs["propertyValue"] = "1"
	saved.Calculations[0].Inputs["propertyValue"] = "2"

	got, err := s.GetScenario(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "1000000", got.Calculations[0].Inputs["propertyValue"])
}

func testInvalid(t *testing.T, s store.Store) {
	ctx := context.Background()

	_, err := s.SaveScenario(ctx, nil)
	assert.Error(t, err)

	_, err = s.SaveScenario(ctx, &domain.Scenario{Name: "  "})
	assert.ErrorContains(t, err, "scenario name is required")

	bad := sampleScenario("Bad")
	bad.Calculations[0].Calculator = "lottery"
	_, err = s.SaveScenario(ctx, bad)
	assert.ErrorContains(t, err, `unknown calculator "lottery"`)

	_, err = s.GetScenario(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
