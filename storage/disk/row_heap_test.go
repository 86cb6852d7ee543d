package disk

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/JanyW/sql-layer/storage/row"
	"github.com/JanyW/sql-layer/types"
)

func TestRowHeapRoundTrip(t *testing.T) {
	store := NewMemoryPageStore()
	defer store.ShutDown()
	rowType := row.NewRowType("t", []types.TypeID{types.Varchar, types.Integer})
	heap := NewRowHeap(store, rowType)

	first := row.NewValuesRowFromValues(rowType, []types.Value{types.NewVarchar("A"), types.NewInteger(1)})
	second := row.NewValuesRowFromValues(rowType, []types.Value{types.NewNull(types.Varchar), types.NewInteger(2)})

	rid1, err := heap.AppendRow(first)
	require.NoError(t, err)
	rid2, err := heap.AppendRow(second)
	require.NoError(t, err)
	require.NotEqual(t, rid1, rid2)

	got, err := heap.GetRow(rid1)
	require.NoError(t, err)
	require.Equal(t, 0, row.Compare(first, got, 0, rowType.NFields()))

	got, err = heap.GetRow(rid2)
	require.NoError(t, err)
	require.True(t, got.Value(0).IsNull())
	require.Equal(t, int32(2), got.Value(1).ToInteger())
}

func TestRowHeapSpillsToNewPages(t *testing.T) {
	store := NewMemoryPageStore()
	rowType := row.NewRowType("t", []types.TypeID{types.Varchar})
	heap := NewRowHeap(store, rowType)

	// each row encodes to ~1KB, so four of them cannot share one page
	rids := make([]RID, 0, 4)
	for i := 0; i < 4; i++ {
		wide := row.NewValuesRowFromValues(rowType, []types.Value{
			types.NewVarchar(strings.Repeat("x", 1000) + string(rune('a'+i))),
		})
		rid, err := heap.AppendRow(wide)
		require.NoError(t, err)
		rids = append(rids, rid)
	}
	require.NotEqual(t, rids[0].PageID, rids[3].PageID)

	for i, rid := range rids {
		got, err := heap.GetRow(rid)
		require.NoError(t, err)
		require.True(t, strings.HasSuffix(got.Value(0).ToVarchar(), string(rune('a'+i))))
	}
}

func TestRowTooLargeRejected(t *testing.T) {
	store := NewMemoryPageStore()
	rowType := row.NewRowType("t", []types.TypeID{types.Varchar})
	heap := NewRowHeap(store, rowType)

	huge := row.NewValuesRowFromValues(rowType, []types.Value{
		types.NewVarchar(strings.Repeat("x", 2*4096)),
	})
	_, err := heap.AppendRow(huge)
	require.ErrorIs(t, err, ErrRowTooLarge)
}
