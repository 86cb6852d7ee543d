package row

// ColumnSelector masks which field positions participate in an operation.
// Jump uses it to scope the comparison of a reused skip row to the
// fixed-prefix-plus-ordering span, so stale trailing fields are ignored.
type ColumnSelector interface {
	IncludesColumn(position int) bool
}

type prefixSelector int

func (s prefixSelector) IncludesColumn(position int) bool {
	return position < int(s)
}

// PrefixSelector includes positions [0, n).
func PrefixSelector(n int) ColumnSelector {
	return prefixSelector(n)
}

type allColumns struct{}

func (allColumns) IncludesColumn(int) bool { return true }

// AllColumns includes every position.
func AllColumns() ColumnSelector {
	return allColumns{}
}
