// Copyright 2026, the SpacemanDMM Authors.  All rights reserved.

package cmdutil

import (
	"flag"
	"strconv"
)

// LogToStderr tracks whether logging was redirected to stderr by InitLogging.
var LogToStderr = false

// InitLogging ensures the glog library has been initialized with the given settings.
func InitLogging(logToStderr bool, verbose int) {
	// Ensure the glog library has been initialized, including calling flag.Parse beforehand.  Unfortunately,
	// this is the only way to control the way glog runs.  That includes poking around at flags below.
	flag.Parse()
	if logToStderr {
		err := flag.Lookup("logtostderr").Value.Set("true")
		assertNoError(err)
		LogToStderr = true
	}
	if verbose > 0 {
		err := flag.Lookup("v").Value.Set(strconv.Itoa(verbose))
		assertNoError(err)
	}
}

func assertNoError(err error) {
	if err != nil {
		panic(err)
	}
}
