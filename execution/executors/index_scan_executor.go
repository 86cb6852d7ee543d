package executors

import (
	"fmt"

	"github.com/JanyW/sql-layer/common"
	"github.com/JanyW/sql-layer/execution/plans"
	"github.com/JanyW/sql-layer/storage/access"
	"github.com/JanyW/sql-layer/storage/row"
)

/**
 * IndexScanExecutor streams one store index in its declared order. It is the
 * leaf cursor of a tree: rows come straight from the adapter's ordered
 * iterator and Jump maps onto the iterator's physical seek. One lookahead
 * row is kept under shared ownership so Open can already tell whether the
 * index has anything to produce; an empty scan self-closes immediately.
 */
type IndexScanExecutor struct {
	context   *ExecutorContext
	plan      *plans.IndexScanPlanNode
	it        access.OrderedIterator
	lookahead row.ShareHolder
	closed    bool
	destroyed bool
}

func NewIndexScanExecutor(context *ExecutorContext, plan *plans.IndexScanPlanNode) *IndexScanExecutor {
	return &IndexScanExecutor{context: context, plan: plan, closed: true}
}

func (e *IndexScanExecutor) Open() error {
	checkIdle(e)
	e.context.GetTap().In("index_scan open")
	defer e.context.GetTap().Out("index_scan open")

	it, err := e.context.GetAdapter().OpenIterator(e.plan.GetIndexName(), e.context.GetBindings())
	if err != nil {
		return err
	}
	e.it = it
	e.closed = false
	return e.refill()
}

func (e *IndexScanExecutor) Next() (row.Row, Done, error) {
	checkIdleOrActive(e)
	if !e.IsActive() {
		return nil, true, nil
	}
	common.Assert(e.lookahead.IsHolding(), "active scan must have a lookahead row")

	next := e.lookahead.Get()
	if err := e.refill(); err != nil {
		return nil, true, err
	}
	common.Log.Debug().
		Str("index", e.plan.GetIndexName()).
		Str("row", fmt.Sprint(next)).
		Msg("index_scan: yield")
	return next, false, nil
}

// Jump reactivates an exhausted scan: the cursor must have been opened, but
// a prior successful Next is not required.
func (e *IndexScanExecutor) Jump(target row.Row, selector row.ColumnSelector) error {
	checkIdleOrActive(e)
	common.Assert(e.it != nil, "jump requires an opened cursor")
	if err := e.it.SeekGE(target, selector); err != nil {
		return err
	}
	e.closed = false
	return e.refill()
}

func (e *IndexScanExecutor) Close() {
	checkIdleOrActive(e)
	if !e.closed {
		e.lookahead.Release()
		e.it.Close()
		e.closed = true
	}
}

func (e *IndexScanExecutor) Destroy() {
	if e.destroyed {
		return
	}
	e.Close()
	e.destroyed = true
}

func (e *IndexScanExecutor) IsIdle() bool { return e.closed && !e.destroyed }

func (e *IndexScanExecutor) IsActive() bool { return !e.closed && !e.destroyed }

func (e *IndexScanExecutor) IsDestroyed() bool { return e.destroyed }

// refill advances the lookahead, self-closing at end of stream.
func (e *IndexScanExecutor) refill() error {
	next, done, err := e.it.Next()
	if err != nil {
		return err
	}
	if done {
		e.lookahead.Hold(nil)
		e.Close()
		return nil
	}
	e.lookahead.Hold(next)
	return nil
}
