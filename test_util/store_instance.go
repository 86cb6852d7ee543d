package test_util

import (
	"github.com/JanyW/sql-layer/storage/access"
)

// StoreInstance bundles the pieces a test execution needs: a fresh MemStore
// and a binding context to run cursors under.
type StoreInstance struct {
	store    *access.MemStore
	bindings *access.Bindings
}

func NewStoreInstance() *StoreInstance {
	return &StoreInstance{
		store:    access.NewMemStore(),
		bindings: access.NewBindings(1),
	}
}

func (si *StoreInstance) GetStore() *access.MemStore {
	return si.store
}

func (si *StoreInstance) GetBindings() *access.Bindings {
	return si.bindings
}
