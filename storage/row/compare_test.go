package row

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/JanyW/sql-layer/types"
)

func testRowType() *RowType {
	return NewRowType("t", []types.TypeID{types.Varchar, types.Integer, types.Integer})
}

func makeRow(rt *RowType, name string, a, b int32) *ValuesRow {
	return NewValuesRowFromValues(rt, []types.Value{
		types.NewVarchar(name), types.NewInteger(a), types.NewInteger(b),
	})
}

func TestCompareTagsDifferingField(t *testing.T) {
	rt := testRowType()
	left := makeRow(rt, "A", 1, 9)
	right := makeRow(rt, "A", 2, 3)

	// field 1 decides; its index within range [1, 3) is 0
	require.Equal(t, -1, Compare(left, right, 1, 2))
	require.Equal(t, 1, Compare(right, left, 1, 2))

	// equal over field 1 only
	right2 := makeRow(rt, "B", 1, 3)
	require.Equal(t, 0, Compare(left, right2, 1, 1))

	// field 2 decides; its index within range [1, 3) is 1
	require.Equal(t, 2, Compare(left, right2, 1, 2))
	require.Equal(t, -2, Compare(right2, left, 1, 2))
}

func TestCompareZeroFieldsAlwaysEqual(t *testing.T) {
	rt := testRowType()
	require.Equal(t, 0, Compare(makeRow(rt, "A", 1, 1), makeRow(rt, "Z", 9, 9), 0, 0))
}

func TestCompareRejectsMixedRowTypes(t *testing.T) {
	other := NewRowType("other", []types.TypeID{types.Varchar, types.Integer, types.Integer})
	require.Panics(t, func() {
		Compare(makeRow(testRowType(), "A", 1, 1), makeRow(other, "A", 1, 1), 0, 3)
	})
}

func TestShareHolderReleasesPreviousRow(t *testing.T) {
	rt := testRowType()
	first := makeRow(rt, "A", 1, 1)
	second := makeRow(rt, "B", 2, 2)

	var holder ShareHolder
	require.True(t, holder.IsEmpty())

	holder.Hold(first)
	require.True(t, first.IsShared())
	require.Same(t, Row(first), holder.Get())

	holder.Hold(second)
	require.False(t, first.IsShared())
	require.True(t, second.IsShared())

	holder.Release()
	require.False(t, second.IsShared())
	require.True(t, holder.IsEmpty())

	// releasing an empty holder is a no-op
	holder.Release()
	require.True(t, holder.IsEmpty())
}

func TestPrefixSelector(t *testing.T) {
	sel := PrefixSelector(2)
	require.True(t, sel.IncludesColumn(0))
	require.True(t, sel.IncludesColumn(1))
	require.False(t, sel.IncludesColumn(2))

	require.True(t, AllColumns().IncludesColumn(17))
}
