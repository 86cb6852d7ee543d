package plans

import (
	"errors"
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/JanyW/sql-layer/storage/access"
	"github.com/JanyW/sql-layer/storage/row"
)

// UpdateFunc decides which rows an update touches and produces their
// replacements. Evaluate is called only for selected rows.
type UpdateFunc interface {
	RowIsSelected(r row.Row) bool
	Evaluate(oldRow row.Row, b *access.Bindings) (row.Row, error)
}

/**
 * UpdatePlanNode drives its child to completion and applies the update
 * function to every selected row, forwarding each (old, new) pair to the
 * store adapter.
 */
type UpdatePlanNode struct {
	*AbstractPlanNode
	updateFunc UpdateFunc
}

func NewUpdatePlanNode(child Plan, updateFunc UpdateFunc) (*UpdatePlanNode, error) {
	if updateFunc == nil {
		return nil, errors.New("update requires an update function")
	}
	return &UpdatePlanNode{&AbstractPlanNode{child.OutputRowType(), []Plan{child}}, updateFunc}, nil
}

func (p *UpdatePlanNode) GetType() PlanType { return Update }

func (p *UpdatePlanNode) GetChildPlan() Plan { return p.GetChildAt(0) }

func (p *UpdatePlanNode) GetUpdateFunc() UpdateFunc { return p.updateFunc }

func (p *UpdatePlanNode) GetDebugStr() string {
	return fmt.Sprintf("update(%s)", p.GetChildPlan().GetDebugStr())
}

func (p *UpdatePlanNode) FindDerivedTypes(derivedTypes mapset.Set[*row.RowType]) {
	p.GetChildPlan().FindDerivedTypes(derivedTypes)
}
