package executors

import (
	"github.com/JanyW/sql-layer/storage/access"
)

// ExecutorContext stores all the context necessary to run an executor: the
// store adapter, the binding context mutations run under, and the
// instrumentation tap. One context serves one execution of a plan tree.
type ExecutorContext struct {
	adapter  access.StoreAdapter
	bindings *access.Bindings
	tap      Tap
}

func NewExecutorContext(adapter access.StoreAdapter, bindings *access.Bindings) *ExecutorContext {
	return &ExecutorContext{adapter: adapter, bindings: bindings, tap: NopTap{}}
}

func (e *ExecutorContext) GetAdapter() access.StoreAdapter {
	return e.adapter
}

func (e *ExecutorContext) GetBindings() *access.Bindings {
	return e.bindings
}

func (e *ExecutorContext) GetTap() Tap {
	return e.tap
}

// SetTap installs an instrumentation tap. Passing nil restores the no-op
// tap, so executors never have to nil-check.
func (e *ExecutorContext) SetTap(tap Tap) {
	if tap == nil {
		tap = NopTap{}
	}
	e.tap = tap
}
