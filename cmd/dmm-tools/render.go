// Copyright 2026, the SpacemanDMM Authors.  All rights reserved.

package main

import (
	"os"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/out-of-phaze/SpacemanDMM/pkg/render"
	"github.com/out-of-phaze/SpacemanDMM/pkg/scene"
	"github.com/out-of-phaze/SpacemanDMM/pkg/util/cmdutil"
)

// renderedOut is the YAML shape of one output atom.
type renderedOut struct {
	Path  string    `yaml:"path"`
	Loc   [3]uint32 `yaml:"loc,flow"`
	Icon  string    `yaml:"icon,omitempty"`
	State string    `yaml:"icon_state,omitempty"`
	Plane int       `yaml:"plane"`
	Layer int       `yaml:"layer"`
}

func newRenderCmd() *cobra.Command {
	var include string
	var exclude string
	cmd := &cobra.Command{
		Use:   "render <scene.yaml>",
		Short: "Render a scene into an ordered, sprite-annotated atom list",
		Args:  cobra.ExactArgs(1),
		Run: cmdutil.RunFunc(func(cmd *cobra.Command, args []string) error {
			passes, err := render.Configure(include, exclude)
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return errors.Wrapf(err, "opening %s", args[0])
			}
			defer f.Close()
			sc, err := scene.Load(f)
			if err != nil {
				return err
			}
			tree, cells, err := sc.Build()
			if err != nil {
				return err
			}
			glog.V(1).Infof("scene: %d types, %d cells", tree.Len(), len(cells))

			results := render.RenderCells(tree, cells, passes)
			var out [][]renderedOut
			for _, cell := range results {
				row := make([]renderedOut, 0, len(cell))
				for _, r := range cell {
					row = append(row, renderedOut{
						Path:  r.Atom.Path(),
						Loc:   [3]uint32{r.Atom.Loc.X, r.Atom.Loc.Y, r.Atom.Loc.Z},
						Icon:  r.Sprite.Icon,
						State: r.Sprite.IconState,
						Plane: r.Sprite.Plane,
						Layer: r.Sprite.Layer,
					})
				}
				out = append(out, row)
			}
			enc := yaml.NewEncoder(os.Stdout)
			defer enc.Close()
			return enc.Encode(out)
		}),
	}

	cmd.Flags().StringVar(&include, "include", "", "Comma-separated passes to enable; \"all\" enables every pass")
	cmd.Flags().StringVar(&exclude, "exclude", "", "Comma-separated passes to disable; \"all\" disables every non-included pass")
	return cmd
}
