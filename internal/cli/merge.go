package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/sbgnedit/pkg/errors"
	"github.com/matzehuels/sbgnedit/pkg/geom"
	"github.com/matzehuels/sbgnedit/pkg/merge"
)

type mergeOpts struct {
	moving []string
	dx, dy float64
	name   string
	output string
}

// mergeCommand replays a drag-and-drop: the moving nodes shift by the
// offset and the first qualifying pair is merged.
func (c *CLI) mergeCommand() *cobra.Command {
	var opts mergeOpts

	cmd := &cobra.Command{
		Use:   "merge <snapshot.json>",
		Short: "Move nodes and merge them into what they land on",
		Long: `Move the given nodes by (--dx, --dy) and merge a moved node into the
stationary node it lands on.

A node without edges hands its type and features to the node it lands on.
A node with edges hands its edges over instead. Nothing changes when no
moved node lands on a compatible node.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(opts.moving) == 0 {
				return errors.New(errors.ErrCodeInvalidInput, "--moving is required")
			}
			if err := validateIDs(opts.moving...); err != nil {
				return err
			}
			d, err := loadSnapshot(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			moving := nodeIDs(opts.moving)
			first, ok := d.Node(moving[0])
			if !ok {
				return errors.New(errors.ErrCodeNodeNotFound, "node %s not found", moving[0])
			}
			offset := geom.Point{X: opts.dx, Y: opts.dy}
			q := merge.MergeQuery{
				MovingNodes: moving,
				Offset:      offset,
				Focus:       first.Layout.Center().Add(offset),
			}
			var dropOpts merge.DropOptions
			if cmd.Flags().Changed("name") {
				dropOpts.LabelText = &opts.name
			}

			pair, merged, err := merge.New(c.manager()).Drop(cmd.Context(), d, q, dropOpts)
			if err != nil {
				return err
			}
			w := statusOut(cmd, opts.output)
			if !merged {
				printWarning(w, "no node to merge into; nothing changed")
				return nil
			}
			printSuccess(w, "merged %s into %s", pair.Moving, pair.Stationary)
			return saveSnapshot(cmd.Context(), cmd.OutOrStdout(), d, args[0], opts.output)
		},
	}

	cmd.Flags().StringSliceVar(&opts.moving, "moving", nil, "nodes to move (comma-separated)")
	cmd.Flags().Float64Var(&opts.dx, "dx", 0, "horizontal offset")
	cmd.Flags().Float64Var(&opts.dy, "dy", 0, "vertical offset")
	cmd.Flags().StringVar(&opts.name, "name", "", "rename the node merged into (edge-free drops only)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: overwrite input, - for stdout)")
	return cmd
}
