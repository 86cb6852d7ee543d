package plans

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/JanyW/sql-layer/storage/row"
)

type PlanType int

const (
	IndexScan PlanType = iota
	UnionOrdered
	Update
)

// Plan is an immutable description of a query computation, built once by the
// planner and reused across executions. The matching executor is produced by
// the execution engine, which switches on the concrete plan type.
type Plan interface {
	OutputRowType() *row.RowType
	GetChildAt(childIndex uint32) Plan
	GetChildren() []Plan
	GetType() PlanType
	// GetDebugStr is the one-line diagnostic form of this node.
	GetDebugStr() string
	// FindDerivedTypes accumulates every RowType this subtree can emit.
	FindDerivedTypes(derivedTypes mapset.Set[*row.RowType])
}

type AbstractPlanNode struct {
	outputRowType *row.RowType
	children      []Plan
}

func (p *AbstractPlanNode) OutputRowType() *row.RowType {
	return p.outputRowType
}

func (p *AbstractPlanNode) GetChildAt(childIndex uint32) Plan {
	return p.children[childIndex]
}

func (p *AbstractPlanNode) GetChildren() []Plan {
	return p.children
}
