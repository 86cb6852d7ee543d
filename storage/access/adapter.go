package access

import (
	"errors"

	"github.com/JanyW/sql-layer/storage/row"
)

// Bindings is the per-execution binding context a cursor tree runs under.
// The real system hangs transaction state and bound parameters off it; here
// it carries just enough identity for the adapter to attribute mutations.
type Bindings struct {
	executionID int32
}

func NewBindings(executionID int32) *Bindings {
	return &Bindings{executionID: executionID}
}

func (b *Bindings) ExecutionID() int32 { return b.executionID }

var (
	ErrNoSuchIndex = errors.New("no such index")
	ErrNoSuchRow   = errors.New("row not present in store")
)

// OrderedIterator streams the rows of one index in its declared order.
// SeekGE is the physical half of a cursor jump: it repositions the iterator
// at the first row ordering-equal-to-or-after target over the selector-masked
// fields. A target field left null means "from the logical minimum".
type OrderedIterator interface {
	Next() (row.Row, bool, error)
	SeekGE(target row.Row, selector row.ColumnSelector) error
	Close()
}

// StoreAdapter is the storage boundary of the execution layer. Leaf cursors
// read through OpenIterator; the mutation pipeline commits single-row
// changes through UpdateRow. Errors cross this boundary unchanged, with no
// retry and no suppression on this side.
type StoreAdapter interface {
	OpenIterator(indexName string, b *Bindings) (OrderedIterator, error)
	UpdateRow(oldRow, newRow row.Row, b *Bindings) error
}
