package executors

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/JanyW/sql-layer/execution/plans"
	"github.com/JanyW/sql-layer/storage/row"
	"github.com/JanyW/sql-layer/test_util"
	testingpkg "github.com/JanyW/sql-layer/testing/testing_util"
	"github.com/JanyW/sql-layer/types"
)

func newScanExecutor(t *testing.T, rows [][]interface{}) (*IndexScanExecutor, *row.RowType) {
	t.Helper()
	si := test_util.NewStoreInstance()
	rowType := row.NewRowType("idx", []types.TypeID{types.Varchar, types.Integer})
	_, err := si.GetStore().CreateIndex("t", rowType, 2, []bool{true, true})
	require.NoError(t, err)
	for _, fields := range rows {
		require.NoError(t, si.GetStore().InsertRow("t", testingpkg.MakeRow(rowType, fields...)))
	}
	context := NewExecutorContext(si.GetStore(), si.GetBindings())
	return NewIndexScanExecutor(context, plans.NewIndexScanPlanNode(rowType, "t")), rowType
}

func TestScanStreamsInOrder(t *testing.T) {
	e, _ := newScanExecutor(t, [][]interface{}{{"B", 2}, {"A", 1}})
	require.NoError(t, e.Open())
	got := drainExecutor(t, e)
	requireRows(t, got, [2]interface{}{"A", 1}, [2]interface{}{"B", 2})
	require.True(t, e.IsIdle())
}

func TestEmptyScanSelfClosesOnOpen(t *testing.T) {
	e, _ := newScanExecutor(t, nil)
	require.NoError(t, e.Open())
	require.True(t, e.IsIdle())
}

func TestJumpReactivatesExhaustedScan(t *testing.T) {
	e, rowType := newScanExecutor(t, [][]interface{}{{"A", 1}, {"B", 2}})
	require.NoError(t, e.Open())
	drainExecutor(t, e)
	require.True(t, e.IsIdle())

	require.NoError(t, e.Jump(testingpkg.MakeRow(rowType, "B", nil), row.PrefixSelector(1)))
	require.True(t, e.IsActive())
	got := drainExecutor(t, e)
	requireRows(t, got, [2]interface{}{"B", 2})
}

func TestJumpBeforeOpenPanics(t *testing.T) {
	e, _ := newScanExecutor(t, [][]interface{}{{"A", 1}})
	require.Panics(t, func() { e.Jump(nil, nil) })
}
