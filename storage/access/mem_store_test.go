package access

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/JanyW/sql-layer/storage/row"
	"github.com/JanyW/sql-layer/types"
)

func indexRowType() *row.RowType {
	return row.NewRowType("idx", []types.TypeID{types.Varchar, types.Integer})
}

func makeRow(rt *row.RowType, name string, n int32) *row.ValuesRow {
	return row.NewValuesRowFromValues(rt, []types.Value{types.NewVarchar(name), types.NewInteger(n)})
}

func drain(t *testing.T, it OrderedIterator) []row.Row {
	t.Helper()
	rows := make([]row.Row, 0)
	for {
		r, done, err := it.Next()
		require.NoError(t, err)
		if done {
			break
		}
		rows = append(rows, r)
	}
	return rows
}

func TestIterationFollowsDeclaredOrder(t *testing.T) {
	store := NewMemStore()
	rt := indexRowType()
	_, err := store.CreateIndex("t", rt, 1, []bool{true})
	require.NoError(t, err)

	// inserted out of order on the ordering field
	for _, r := range []*row.ValuesRow{
		makeRow(rt, "B", 1), makeRow(rt, "A", 2), makeRow(rt, "A", 1),
	} {
		require.NoError(t, store.InsertRow("t", r))
	}

	it, err := store.OpenIterator("t", NewBindings(1))
	require.NoError(t, err)
	defer it.Close()

	rows := drain(t, it)
	require.Len(t, rows, 3)
	require.Equal(t, "A", rows[0].Value(0).ToVarchar())
	require.Equal(t, int32(1), rows[0].Value(1).ToInteger())
	require.Equal(t, int32(2), rows[1].Value(1).ToInteger())
	require.Equal(t, "B", rows[2].Value(0).ToVarchar())
}

func TestDescendingOrderingField(t *testing.T) {
	store := NewMemStore()
	rt := indexRowType()
	_, err := store.CreateIndex("t", rt, 1, []bool{false})
	require.NoError(t, err)

	for _, r := range []*row.ValuesRow{
		makeRow(rt, "A", 1), makeRow(rt, "A", 3), makeRow(rt, "A", 2),
	} {
		require.NoError(t, store.InsertRow("t", r))
	}

	it, err := store.OpenIterator("t", NewBindings(1))
	require.NoError(t, err)
	rows := drain(t, it)
	require.Equal(t, int32(3), rows[0].Value(1).ToInteger())
	require.Equal(t, int32(2), rows[1].Value(1).ToInteger())
	require.Equal(t, int32(1), rows[2].Value(1).ToInteger())
}

func TestSeekGEWithMaskAndNullMinimum(t *testing.T) {
	store := NewMemStore()
	rt := indexRowType()
	_, err := store.CreateIndex("t", rt, 1, []bool{true})
	require.NoError(t, err)
	for _, r := range []*row.ValuesRow{
		makeRow(rt, "A", 1), makeRow(rt, "A", 2), makeRow(rt, "B", 1), makeRow(rt, "B", 3),
	} {
		require.NoError(t, store.InsertRow("t", r))
	}

	it, err := store.OpenIterator("t", NewBindings(1))
	require.NoError(t, err)

	// seek on the fixed field only; ordering field null means "from the start of B"
	target := row.NewValuesRowFromValues(rt, []types.Value{types.NewVarchar("B"), types.NewNull(types.Integer)})
	require.NoError(t, it.SeekGE(target, row.PrefixSelector(2)))
	rows := drain(t, it)
	require.Len(t, rows, 2)
	require.Equal(t, int32(1), rows[0].Value(1).ToInteger())
	require.Equal(t, int32(3), rows[1].Value(1).ToInteger())

	// a key before the true minimum repositions to the start
	require.NoError(t, it.SeekGE(makeRow(rt, "0", 0), row.PrefixSelector(2)))
	rows = drain(t, it)
	require.Len(t, rows, 4)

	// nil target also means start
	require.NoError(t, it.SeekGE(nil, nil))
	require.Len(t, drain(t, it), 4)
}

func TestUpdateRowJournalsAndReorders(t *testing.T) {
	store := NewMemStore()
	rt := indexRowType()
	_, err := store.CreateIndex("t", rt, 1, []bool{true})
	require.NoError(t, err)
	require.NoError(t, store.InsertRow("t", makeRow(rt, "A", 1)))
	require.NoError(t, store.InsertRow("t", makeRow(rt, "A", 5)))

	b := NewBindings(1)
	oldRow := makeRow(rt, "A", 1)
	newRow := makeRow(rt, "A", 9)
	require.NoError(t, store.UpdateRow(oldRow, newRow, b))

	journal := store.Journal()
	require.Len(t, journal, 1)
	require.Equal(t, 0, row.Compare(journal[0].First, oldRow, 0, rt.NFields()))
	require.Equal(t, 0, row.Compare(journal[0].Second, newRow, 0, rt.NFields()))

	it, err := store.OpenIterator("t", b)
	require.NoError(t, err)
	rows := drain(t, it)
	require.Equal(t, int32(5), rows[0].Value(1).ToInteger())
	require.Equal(t, int32(9), rows[1].Value(1).ToInteger())
}

func TestUpdateUnknownRowFails(t *testing.T) {
	store := NewMemStore()
	rt := indexRowType()
	_, err := store.CreateIndex("t", rt, 1, []bool{true})
	require.NoError(t, err)
	require.NoError(t, store.InsertRow("t", makeRow(rt, "A", 1)))

	err = store.UpdateRow(makeRow(rt, "Z", 1), makeRow(rt, "Z", 2), NewBindings(1))
	require.ErrorIs(t, err, ErrNoSuchRow)
}

func TestInjectedFailures(t *testing.T) {
	store := NewMemStore()
	rt := indexRowType()
	_, err := store.CreateIndex("t", rt, 1, []bool{true})
	require.NoError(t, err)
	require.NoError(t, store.InsertRow("t", makeRow(rt, "A", 1)))

	boom := errors.New("boom")

	it, err := store.OpenIterator("t", NewBindings(1))
	require.NoError(t, err)
	store.FailNextSeek(boom)
	require.ErrorIs(t, it.SeekGE(nil, nil), boom)
	// the failure is one-shot
	require.NoError(t, it.SeekGE(nil, nil))

	store.FailNextUpdate(boom)
	err = store.UpdateRow(makeRow(rt, "A", 1), makeRow(rt, "A", 2), NewBindings(1))
	require.ErrorIs(t, err, boom)
}

func TestMissingIndex(t *testing.T) {
	store := NewMemStore()
	_, err := store.OpenIterator("nope", NewBindings(1))
	require.ErrorIs(t, err, ErrNoSuchIndex)
	err = store.InsertRow("nope", makeRow(indexRowType(), "A", 1))
	require.ErrorIs(t, err, ErrNoSuchIndex)
}
