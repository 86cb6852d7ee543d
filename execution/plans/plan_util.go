package plans

import (
	"strings"

	stack "github.com/golang-collections/collections/stack"
)

type describeFrame struct {
	plan   Plan
	indent int
}

// DescribeTree renders the plan tree as an indented multi-line string for
// diagnostics. The walk is iterative pre-order; children are pushed right
// first so the left input prints above the right one.
func DescribeTree(plan Plan) string {
	var sb strings.Builder
	pending := stack.New()
	pending.Push(describeFrame{plan: plan})
	for pending.Len() > 0 {
		frame := pending.Pop().(describeFrame)
		sb.WriteString(strings.Repeat(" ", frame.indent))
		sb.WriteString(frame.plan.GetDebugStr())
		sb.WriteString("\n")

		children := frame.plan.GetChildren()
		for i := len(children) - 1; i >= 0; i-- {
			pending.Push(describeFrame{plan: children[i], indent: frame.indent + 2})
		}
	}
	return sb.String()
}
