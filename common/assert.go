package common

import "fmt"

// Assert panics with msg when condition does not hold. It is reserved for
// protocol violations (programming errors), never for recoverable data errors.
func Assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

// Assertf is Assert with a formatted message.
func Assertf(condition bool, format string, a ...interface{}) {
	if !condition {
		panic(fmt.Sprintf(format, a...))
	}
}
