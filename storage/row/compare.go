package row

import "github.com/JanyW/sql-layer/common"

// Compare orders a against b over the field range [start, start+n). The
// result is 0 when all n fields compare equal. Otherwise the sign is the
// natural ascending order of the first differing field and the magnitude is
// one plus that field's index within the range, so the caller can tell which
// ordering field decided the outcome without a second pass. Per-field
// descending directions are applied by the caller, not here.
func Compare(a, b Row, start, n int) int {
	common.Assert(a.RowType() == b.RowType(), "rows of different types are not comparable")
	for i := 0; i < n; i++ {
		c := a.Value(start + i).Compare(b.Value(start + i))
		if c < 0 {
			return -(i + 1)
		}
		if c > 0 {
			return i + 1
		}
	}
	return 0
}
