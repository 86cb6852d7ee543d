package executors

import (
	"github.com/JanyW/sql-layer/storage/row"
)

type Done = bool

// Executor is the runtime cursor an operator produces for one execution.
//
// The lifecycle is a strict state machine. A cursor starts idle; Open moves
// it to active (or straight back to idle when no input has rows, so callers
// never observe an active-but-empty cursor). Next is legal while idle or
// active and reports done without a row on an idle cursor. Close is
// idempotent and returns the cursor to idle; Destroy retires it permanently,
// children included. Calling into a destroyed cursor is a programming error
// and fails an assertion rather than returning an error.
//
// Jump repositions the cursor at the first row ordering-equal-to-or-after
// target over the selector-masked fields. It requires a prior Open but not a
// prior successful Next, which is what makes skip-scan restarts possible.
type Executor interface {
	Open() error
	Next() (row.Row, Done, error)
	Jump(target row.Row, selector row.ColumnSelector) error
	Close()
	Destroy()

	IsIdle() bool
	IsActive() bool
	IsDestroyed() bool
}
