package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/sbgnedit/pkg/command"
	"github.com/matzehuels/sbgnedit/pkg/diagram"
	"github.com/matzehuels/sbgnedit/pkg/errors"
)

// cycleCommand steps a node through its conversion types, as a keyboard
// shortcut would.
func (c *CLI) cycleCommand() *cobra.Command {
	var (
		node   string
		steps  int
		output string
	)

	cmd := &cobra.Command{
		Use:   "cycle <snapshot.json>",
		Short: "Step a node to its next conversion type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateIDs(node); err != nil {
				return err
			}
			if steps < 1 {
				return errors.New(errors.ErrCodeInvalidInput, "--steps must be at least 1")
			}
			d, err := loadSnapshot(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			cycler := command.NewCycler(c.manager())
			w := statusOut(cmd, output)
			for i := range steps {
				t, err := cycler.Next(cmd.Context(), d, diagram.NodeID(node))
				if err != nil {
					return err
				}
				printInfo(w, "step %d: %s", i+1, t)
			}
			return saveSnapshot(cmd.Context(), cmd.OutOrStdout(), d, args[0], output)
		},
	}

	cmd.Flags().StringVar(&node, "node", "", "node to cycle (required)")
	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "number of steps")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: overwrite input, - for stdout)")
	_ = cmd.MarkFlagRequired("node")
	return cmd
}
