// Copyright 2026, the SpacemanDMM Authors.  All rights reserved.

package contract

import (
	"fmt"
)

const assertMsg = "An assertion has failed"

// Assert checks an invariant condition, and Fails if it is false.
func Assert(cond bool) {
	if !cond {
		failfast(assertMsg)
	}
}

// Assertf checks an invariant condition, and Failfs if it is false.
func Assertf(cond bool, msg string, args ...interface{}) {
	if !cond {
		failfast(fmt.Sprintf("%v: %v", assertMsg, fmt.Sprintf(msg, args...)))
	}
}
