package plans

import (
	"errors"
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/JanyW/sql-layer/storage/row"
)

/**
 * UnionOrderedPlanNode combines rows from two input streams that are already
 * sorted over a shared suffix of ordering fields. The merged output stays
 * ordered compatibly with the inputs and keys present on both sides surface
 * once per coincidence. For now both inputs must share the same RowType and
 * ordering field count, a restriction to be dropped when the operator is
 * generalized to inputs from different indexes.
 */
type UnionOrderedPlanNode struct {
	*AbstractPlanNode
	fixedFields int
	ascending   []bool
}

// NewUnionOrderedPlanNode validates the configuration and builds the node.
// ascending carries one direction flag per compared field; its length may
// not exceed the smaller ordering field count.
func NewUnionOrderedPlanNode(left Plan, right Plan,
	leftRowType *row.RowType, rightRowType *row.RowType,
	leftOrderingFields int, rightOrderingFields int,
	ascending []bool) (*UnionOrderedPlanNode, error) {
	if left == nil || right == nil {
		return nil, errors.New("union requires two input plans")
	}
	if leftRowType == nil || rightRowType == nil {
		return nil, errors.New("union requires input row types")
	}
	if leftOrderingFields < 0 || leftOrderingFields > leftRowType.NFields() {
		return nil, fmt.Errorf("left ordering field count %d out of range for %s", leftOrderingFields, leftRowType)
	}
	if rightOrderingFields < 0 || rightOrderingFields > rightRowType.NFields() {
		return nil, fmt.Errorf("right ordering field count %d out of range for %s", rightOrderingFields, rightRowType)
	}
	if len(ascending) > min(leftOrderingFields, rightOrderingFields) {
		return nil, fmt.Errorf("%d direction flags exceed the %d comparable ordering fields",
			len(ascending), min(leftOrderingFields, rightOrderingFields))
	}
	if leftRowType != rightRowType {
		return nil, errors.New("union inputs must share a row type")
	}
	if leftOrderingFields != rightOrderingFields {
		return nil, errors.New("union inputs must share the ordering field count")
	}

	directions := make([]bool, len(ascending))
	copy(directions, ascending)
	return &UnionOrderedPlanNode{
		AbstractPlanNode: &AbstractPlanNode{leftRowType, []Plan{left, right}},
		fixedFields:      leftRowType.NFields() - leftOrderingFields,
		ascending:        directions,
	}, nil
}

func (p *UnionOrderedPlanNode) GetType() PlanType { return UnionOrdered }

func (p *UnionOrderedPlanNode) GetLeftPlan() Plan  { return p.GetChildAt(0) }
func (p *UnionOrderedPlanNode) GetRightPlan() Plan { return p.GetChildAt(1) }

// FixedFields is the count of leading fields excluded from merge comparison.
func (p *UnionOrderedPlanNode) FixedFields() int { return p.fixedFields }

// Ascending holds one direction flag per compared ordering field.
func (p *UnionOrderedPlanNode) Ascending() []bool { return p.ascending }

func (p *UnionOrderedPlanNode) GetDebugStr() string {
	return fmt.Sprintf("union_ordered(skip %d, compare %d)", p.fixedFields, len(p.ascending))
}

func (p *UnionOrderedPlanNode) FindDerivedTypes(derivedTypes mapset.Set[*row.RowType]) {
	p.GetRightPlan().FindDerivedTypes(derivedTypes)
	p.GetLeftPlan().FindDerivedTypes(derivedTypes)
	derivedTypes.Add(p.OutputRowType())
}
