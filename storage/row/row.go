package row

import "github.com/JanyW/sql-layer/types"

// Row is an ordered, fixed-arity sequence of typed values, immutable once
// produced. A row is owned by the cursor that produced it until a consumer
// explicitly shares it; the producer may reuse the underlying storage once
// the consumer advances, so anything kept past the next advance must be
// retained via Share and released on every exit path.
type Row interface {
	RowType() *RowType
	Value(position int) types.Value

	// Share/Release manage the reference count. IsShared reports whether
	// anyone besides the producer currently holds the row.
	Share()
	Release()
	IsShared() bool
}
