package executors

import (
	"fmt"

	"github.com/JanyW/sql-layer/common"
	"github.com/JanyW/sql-layer/execution/plans"
)

// UpdateResult reports how many rows an update pipeline saw and how many it
// actually modified.
type UpdateResult struct {
	Seen     int
	Modified int
}

func (r UpdateResult) String() string {
	return fmt.Sprintf("update(seen %d, modified %d)", r.Seen, r.Modified)
}

// UpdateDriver is the mutation pipeline: it drives the child cursor to
// completion and forwards each selected (old, new) row pair to the store
// adapter under the context's bindings. The first adapter or evaluation
// error aborts the run and propagates; the child cursor is closed on every
// exit path.
type UpdateDriver struct {
	plan *plans.UpdatePlanNode
}

func NewUpdateDriver(plan *plans.UpdatePlanNode) *UpdateDriver {
	return &UpdateDriver{plan: plan}
}

func (d *UpdateDriver) Run(context *ExecutorContext) (UpdateResult, error) {
	context.GetTap().In("update run")
	defer context.GetTap().Out("update run")

	engine := &ExecutionEngine{}
	input := engine.CreateExecutor(d.plan.GetChildPlan(), context)
	result := UpdateResult{}
	if err := input.Open(); err != nil {
		return result, err
	}
	defer input.Close()

	updateFunc := d.plan.GetUpdateFunc()
	for {
		oldRow, done, err := input.Next()
		if err != nil {
			return result, err
		}
		if done {
			break
		}
		result.Seen++
		if !updateFunc.RowIsSelected(oldRow) {
			continue
		}
		newRow, err := updateFunc.Evaluate(oldRow, context.GetBindings())
		if err != nil {
			return result, err
		}
		if err := context.GetAdapter().UpdateRow(oldRow, newRow, context.GetBindings()); err != nil {
			return result, err
		}
		result.Modified++
		common.Log.Debug().
			Str("old", fmt.Sprint(oldRow)).
			Str("new", fmt.Sprint(newRow)).
			Msg("update: applied")
	}
	return result, nil
}
