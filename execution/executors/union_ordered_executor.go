package executors

import (
	"fmt"

	"github.com/JanyW/sql-layer/common"
	"github.com/JanyW/sql-layer/execution/plans"
	"github.com/JanyW/sql-layer/storage/row"
	"github.com/JanyW/sql-layer/types"
)

/**
 * UnionOrderedExecutor merges two input streams that are each already sorted
 * over the shared trailing ordering fields. The output stays ordered
 * compatibly with the inputs; when both sides carry the same ordering key the
 * left row is emitted and both sides advance, so a cross-side coincidence
 * surfaces exactly once. Repeats of a key within a single side all survive.
 *
 * Jump repositions both inputs independently at a caller-supplied partial
 * key: each side keeps a lazily built skip row whose fixed prefix was copied
 * once from its last-seen row, overwrites the ordering suffix from the
 * target, and delegates the physical seek to the child. The next ordinary
 * Next call re-establishes merge behavior from wherever each side landed.
 *
 * Memory: one lookahead row per input, held under shared ownership so the
 * producer cannot reclaim it before the merge has emitted it.
 */
type UnionOrderedExecutor struct {
	context    *ExecutorContext
	plan       *plans.UnionOrderedPlanNode
	leftInput  Executor
	rightInput Executor

	leftRow  row.ShareHolder
	rightRow row.ShareHolder

	leftSkipRow           *row.ValuesRow
	rightSkipRow          *row.ValuesRow
	skipRowColumnSelector row.ColumnSelector

	closed bool
}

func NewUnionOrderedExecutor(context *ExecutorContext, plan *plans.UnionOrderedPlanNode,
	leftInput Executor, rightInput Executor) *UnionOrderedExecutor {
	skipRowColumns := plan.FixedFields() + len(plan.Ascending())
	return &UnionOrderedExecutor{
		context:               context,
		plan:                  plan,
		leftInput:             leftInput,
		rightInput:            rightInput,
		skipRowColumnSelector: row.PrefixSelector(skipRowColumns),
		closed:                true,
	}
}

func (e *UnionOrderedExecutor) Open() error {
	checkIdle(e)
	e.context.GetTap().In("union_ordered open")
	defer e.context.GetTap().Out("union_ordered open")

	if err := e.leftInput.Open(); err != nil {
		return err
	}
	if err := e.rightInput.Open(); err != nil {
		return err
	}
	e.closed = false
	if err := e.nextLeftRow(); err != nil {
		return err
	}
	if err := e.nextRightRow(); err != nil {
		return err
	}
	if e.leftRow.IsEmpty() && e.rightRow.IsEmpty() {
		e.Close()
	}
	return nil
}

func (e *UnionOrderedExecutor) Next() (row.Row, Done, error) {
	checkIdleOrActive(e)
	e.context.GetTap().In("union_ordered next")
	defer e.context.GetTap().Out("union_ordered next")

	if !e.IsActive() {
		return nil, true, nil
	}
	common.Assert(!(e.leftRow.IsEmpty() && e.rightRow.IsEmpty()),
		"active union cursor must have at least one lookahead row")

	var next row.Row
	var err error
	c := e.compareRows()
	if c < 0 {
		next = e.leftRow.Get()
		err = e.nextLeftRow()
	} else if c > 0 {
		next = e.rightRow.Get()
		err = e.nextRightRow()
	} else {
		// Left and right ordering keys match. Doesn't matter which row is
		// output; left by convention.
		next = e.leftRow.Get()
		if err = e.nextLeftRow(); err == nil {
			err = e.nextRightRow()
		}
	}
	if err != nil {
		return nil, true, err
	}
	if e.leftRow.IsEmpty() && e.rightRow.IsEmpty() {
		e.Close()
	}
	common.Log.Debug().Str("row", fmt.Sprint(next)).Msg("union_ordered: yield")
	return next, false, nil
}

// Jump repositions both inputs at the target's ordering key. The incoming
// selector is advisory; each child is seeked with this cursor's own
// fixed-prefix-plus-ordering selector so stale trailing fields of the reused
// skip rows never reach the storage seek.
func (e *UnionOrderedExecutor) Jump(target row.Row, selector row.ColumnSelector) error {
	checkIdleOrActive(e)
	if err := e.nextLeftRowSkip(target, e.plan.FixedFields()); err != nil {
		return err
	}
	if err := e.nextRightRowSkip(target, e.plan.FixedFields()); err != nil {
		return err
	}
	e.closed = false
	if e.leftRow.IsEmpty() && e.rightRow.IsEmpty() {
		e.Close()
	}
	return nil
}

func (e *UnionOrderedExecutor) Close() {
	checkIdleOrActive(e)
	if !e.closed {
		e.leftRow.Release()
		e.rightRow.Release()
		e.leftInput.Close()
		e.rightInput.Close()
		e.closed = true
	}
}

func (e *UnionOrderedExecutor) Destroy() {
	if e.IsDestroyed() {
		return
	}
	e.Close()
	e.leftInput.Destroy()
	e.rightInput.Destroy()
}

func (e *UnionOrderedExecutor) IsIdle() bool {
	return e.closed && !e.IsDestroyed()
}

func (e *UnionOrderedExecutor) IsActive() bool {
	return !e.closed && !e.IsDestroyed()
}

func (e *UnionOrderedExecutor) IsDestroyed() bool {
	common.Assert(e.leftInput.IsDestroyed() == e.rightInput.IsDestroyed(),
		"union inputs disagree on destroyed state")
	return e.leftInput.IsDestroyed()
}

// for use by this executor

func (e *UnionOrderedExecutor) nextLeftRow() error {
	next, done, err := e.leftInput.Next()
	if err != nil {
		return err
	}
	if done {
		next = nil
	}
	e.leftRow.Hold(next)
	common.Log.Debug().Str("row", fmt.Sprint(next)).Msg("union_ordered: left")
	return nil
}

func (e *UnionOrderedExecutor) nextRightRow() error {
	next, done, err := e.rightInput.Next()
	if err != nil {
		return err
	}
	if done {
		next = nil
	}
	e.rightRow.Hold(next)
	common.Log.Debug().Str("row", fmt.Sprint(next)).Msg("union_ordered: right")
	return nil
}

// compareRows orders the two lookahead rows over the ordering fields. An
// exhausted left side compares larger than everything and an exhausted right
// side smaller, so the surviving side always drains. The comparison encodes
// which field differed; the declared direction of that field decides whether
// the sign is flipped.
func (e *UnionOrderedExecutor) compareRows() int {
	common.Assert(!e.closed, "compare on closed cursor")
	common.Assert(!(e.leftRow.IsEmpty() && e.rightRow.IsEmpty()), "compare with both sides exhausted")
	if e.leftRow.IsEmpty() {
		return 1
	}
	if e.rightRow.IsEmpty() {
		return -1
	}
	ascending := e.plan.Ascending()
	c := row.Compare(e.leftRow.Get(), e.rightRow.Get(), e.plan.FixedFields(), len(ascending))
	if c != 0 {
		fieldThatDiffers := abs(c) - 1
		if !ascending[fieldThatDiffers] {
			c = -c
		}
	}
	return c
}

func (e *UnionOrderedExecutor) nextLeftRowSkip(suffixRow row.Row, suffixRowFixedFields int) error {
	skipRow := e.ensureLeftSkipRow()
	e.addSuffixToSkipRow(skipRow, e.plan.FixedFields(), suffixRow, suffixRowFixedFields)
	if err := e.leftInput.Jump(skipRow, e.skipRowColumnSelector); err != nil {
		return err
	}
	return e.nextLeftRow()
}

func (e *UnionOrderedExecutor) nextRightRowSkip(suffixRow row.Row, suffixRowFixedFields int) error {
	skipRow := e.ensureRightSkipRow()
	e.addSuffixToSkipRow(skipRow, e.plan.FixedFields(), suffixRow, suffixRowFixedFields)
	if err := e.rightInput.Jump(skipRow, e.skipRowColumnSelector); err != nil {
		return err
	}
	return e.nextRightRow()
}

// addSuffixToSkipRow overwrites the skip row's ordering suffix from the
// caller's row, or with nulls when no row is supplied, which seeks to the
// logical minimum.
func (e *UnionOrderedExecutor) addSuffixToSkipRow(skipRow *row.ValuesRow, skipRowFixedFields int,
	suffixRow row.Row, suffixRowFixedFields int) {
	orderingFields := len(e.plan.Ascending())
	rowType := e.plan.OutputRowType()
	if suffixRow == nil {
		for f := 0; f < orderingFields; f++ {
			skipRow.SetValue(skipRowFixedFields+f, types.NewNull(rowType.FieldType(skipRowFixedFields+f)))
		}
	} else {
		for f := 0; f < orderingFields; f++ {
			skipRow.SetValue(skipRowFixedFields+f, suffixRow.Value(suffixRowFixedFields+f))
		}
	}
}

// ensureLeftSkipRow materializes the reusable left skip row on first use.
// The fixed prefix is copied once from the last-seen left row; jump targets
// are assumed to share it.
func (e *UnionOrderedExecutor) ensureLeftSkipRow() *row.ValuesRow {
	if e.leftSkipRow == nil {
		common.Assert(e.leftRow.IsHolding(), "skip row needs a last-seen row for its fixed prefix")
		e.leftSkipRow = row.NewValuesRow(e.plan.OutputRowType())
		for f := 0; f < e.plan.FixedFields(); f++ {
			e.leftSkipRow.SetValue(f, e.leftRow.Get().Value(f))
		}
	}
	return e.leftSkipRow
}

func (e *UnionOrderedExecutor) ensureRightSkipRow() *row.ValuesRow {
	if e.rightSkipRow == nil {
		common.Assert(e.rightRow.IsHolding(), "skip row needs a last-seen row for its fixed prefix")
		e.rightSkipRow = row.NewValuesRow(e.plan.OutputRowType())
		for f := 0; f < e.plan.FixedFields(); f++ {
			e.rightSkipRow.SetValue(f, e.rightRow.Get().Value(f))
		}
	}
	return e.rightSkipRow
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
