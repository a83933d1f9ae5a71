// Copyright 2026, the SpacemanDMM Authors.  All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/out-of-phaze/SpacemanDMM/pkg/util/cmdutil"
)

const version = "0.1.0"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the dmm-tools version number",
		Run: cmdutil.RunFunc(func(cmd *cobra.Command, args []string) error {
			fmt.Printf("dmm-tools version %v\n", version)
			return nil
		}),
	}
}
