package plans

import (
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/stretchr/testify/require"

	"github.com/JanyW/sql-layer/storage/row"
	"github.com/JanyW/sql-layer/types"
)

func scanRowType() *row.RowType {
	return row.NewRowType("idx", []types.TypeID{types.Varchar, types.Integer})
}

func TestUnionOrderedValidation(t *testing.T) {
	rt := scanRowType()
	left := NewIndexScanPlanNode(rt, "left")
	right := NewIndexScanPlanNode(rt, "right")

	_, err := NewUnionOrderedPlanNode(nil, right, rt, rt, 1, 1, []bool{true})
	require.Error(t, err)

	_, err = NewUnionOrderedPlanNode(left, right, rt, rt, 3, 3, []bool{true})
	require.Error(t, err, "ordering field count beyond arity")

	_, err = NewUnionOrderedPlanNode(left, right, rt, rt, -1, -1, nil)
	require.Error(t, err)

	_, err = NewUnionOrderedPlanNode(left, right, rt, rt, 1, 1, []bool{true, true})
	require.Error(t, err, "more direction flags than comparable fields")

	other := scanRowType()
	_, err = NewUnionOrderedPlanNode(left, right, rt, other, 1, 1, []bool{true})
	require.Error(t, err, "row types must be identical")

	_, err = NewUnionOrderedPlanNode(left, right, rt, rt, 2, 1, []bool{true})
	require.Error(t, err, "ordering field counts must match")

	p, err := NewUnionOrderedPlanNode(left, right, rt, rt, 1, 1, []bool{true})
	require.NoError(t, err)
	require.Equal(t, 1, p.FixedFields())
	require.Equal(t, UnionOrdered, p.GetType())
	require.Same(t, Plan(left), p.GetLeftPlan())
	require.Same(t, Plan(right), p.GetRightPlan())
}

func TestDirectionFlagsAreCopied(t *testing.T) {
	rt := scanRowType()
	flags := []bool{true}
	p, err := NewUnionOrderedPlanNode(
		NewIndexScanPlanNode(rt, "left"), NewIndexScanPlanNode(rt, "right"),
		rt, rt, 1, 1, flags)
	require.NoError(t, err)
	flags[0] = false
	require.True(t, p.Ascending()[0])
}

func TestDescribeTree(t *testing.T) {
	rt := scanRowType()
	p, err := NewUnionOrderedPlanNode(
		NewIndexScanPlanNode(rt, "left"), NewIndexScanPlanNode(rt, "right"),
		rt, rt, 1, 1, []bool{true})
	require.NoError(t, err)

	require.Equal(t,
		"union_ordered(skip 1, compare 1)\n"+
			"  index_scan(left)\n"+
			"  index_scan(right)\n",
		DescribeTree(p))
}

func TestFindDerivedTypes(t *testing.T) {
	rt := scanRowType()
	p, err := NewUnionOrderedPlanNode(
		NewIndexScanPlanNode(rt, "left"), NewIndexScanPlanNode(rt, "right"),
		rt, rt, 1, 1, []bool{true})
	require.NoError(t, err)

	derived := mapset.NewSet[*row.RowType]()
	p.FindDerivedTypes(derived)
	require.Equal(t, 1, derived.Cardinality())
	require.True(t, derived.Contains(rt))
}

func TestUpdatePlanRequiresFunc(t *testing.T) {
	rt := scanRowType()
	_, err := NewUpdatePlanNode(NewIndexScanPlanNode(rt, "t"), nil)
	require.Error(t, err)
}
