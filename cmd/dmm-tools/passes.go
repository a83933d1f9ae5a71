// Copyright 2026, the SpacemanDMM Authors.  All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/out-of-phaze/SpacemanDMM/pkg/render"
	"github.com/out-of-phaze/SpacemanDMM/pkg/util/cmdutil"
)

func newPassesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "passes",
		Short: "List the registered render passes",
		Run: cmdutil.RunFunc(func(cmd *cobra.Command, args []string) error {
			for _, info := range render.Passes {
				def := " "
				if info.Default {
					def = "*"
				}
				fmt.Printf("%s %-16s %s\n", def, info.Name, info.Desc)
			}
			fmt.Println("\npasses marked * are enabled by default")
			return nil
		}),
	}
}
