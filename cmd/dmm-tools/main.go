// Copyright 2026, the SpacemanDMM Authors.  All rights reserved.

package main

import (
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/out-of-phaze/SpacemanDMM/pkg/util/cmdutil"
)

// NewDmmToolsCmd creates the root dmm-tools Cmd instance.
func NewDmmToolsCmd() *cobra.Command {
	var logToStderr bool
	var verbose int
	cmd := &cobra.Command{
		Use:   "dmm-tools",
		Short: "dmm-tools renders object-language maps into sprite-ready atom lists",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmdutil.InitLogging(logToStderr, verbose)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			glog.Flush()
		},
	}

	cmd.PersistentFlags().BoolVar(&logToStderr, "logtostderr", false, "Log to stderr instead of to files")
	cmd.PersistentFlags().IntVarP(
		&verbose, "verbose", "v", 0, "Enable verbose logging (e.g., v=3); anything >3 is very verbose")

	cmd.AddCommand(newPassesCmd())
	cmd.AddCommand(newRenderCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func main() {
	if err := NewDmmToolsCmd().Execute(); err != nil {
		cmdutil.Exit(err)
	}
	os.Exit(0)
}
