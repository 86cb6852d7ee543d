package executors

import "github.com/JanyW/sql-layer/common"

// checkIdle guards operations legal only before Open.
func checkIdle(e Executor) {
	common.Assert(e.IsIdle(), "cursor must be idle")
}

// checkIdleOrActive guards operations illegal after Destroy.
func checkIdleOrActive(e Executor) {
	common.Assert(!e.IsDestroyed(), "cursor has been destroyed")
}
