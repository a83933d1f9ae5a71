// Copyright 2026, the SpacemanDMM Authors.  All rights reserved.

package contract

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/golang/glog"
)

// failfast logs and panics the process in a way that is friendly to debugging.
func failfast(msg string) {
	if v := flag.Lookup("logtostderr"); v != nil {
		if g, isgettable := v.Value.(flag.Getter); isgettable {
			if enabled, isbool := g.Get().(bool); isbool && enabled {
				// Print the stack to stderr anytime glog verbose logging is enabled, since glog won't.
				fmt.Fprintf(os.Stderr, "fatal: %v\n", msg)
				debug.PrintStack()
			}
		}
	}
	glog.Fatal(msg)
}
