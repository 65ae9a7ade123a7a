package store_test

import (
	"testing"

	"github.com/rgehrsitz/sgfin/internal/store"
	"github.com/rgehrsitz/sgfin/internal/store/storetest"
)

func TestMemory(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.Store {
		return store.NewMemory()
	})
}
