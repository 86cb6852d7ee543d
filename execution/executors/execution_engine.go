package executors

import (
	"github.com/JanyW/sql-layer/common"
	"github.com/JanyW/sql-layer/execution/plans"
	"github.com/JanyW/sql-layer/storage/row"
)

// ExecutionEngine turns plan trees into executor trees and drives them. The
// plan-to-executor mapping is a closed switch: every row-producing plan kind
// is matched here and nowhere else.
type ExecutionEngine struct {
}

// CreateExecutor builds the executor tree for plan, bottom-up.
func (e *ExecutionEngine) CreateExecutor(plan plans.Plan, context *ExecutorContext) Executor {
	switch p := plan.(type) {
	case *plans.IndexScanPlanNode:
		return NewIndexScanExecutor(context, p)
	case *plans.UnionOrderedPlanNode:
		left := e.CreateExecutor(p.GetLeftPlan(), context)
		right := e.CreateExecutor(p.GetRightPlan(), context)
		return NewUnionOrderedExecutor(context, p, left, right)
	}
	common.Assertf(false, "no executor for plan %q", plan.GetDebugStr())
	return nil
}

// Execute opens the tree, drains every row and closes it. The executor is
// closed on every exit path; rows already collected stay collected when an
// error aborts the scan.
func (e *ExecutionEngine) Execute(plan plans.Plan, context *ExecutorContext) ([]row.Row, error) {
	executor := e.CreateExecutor(plan, context)
	if err := executor.Open(); err != nil {
		return nil, err
	}
	defer executor.Close()

	results := make([]row.Row, 0)
	for {
		next, done, err := executor.Next()
		if err != nil {
			return results, err
		}
		if done {
			break
		}
		results = append(results, next)
	}
	return results, nil
}
