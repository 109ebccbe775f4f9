package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/sbgnedit/pkg/command"
)

func (c *CLI) clonesCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "clones <snapshot.json>",
		Short: "Mark every duplicated entity as a clone",
		Long: `Set the clone marker on every entity that appears more than once in the
same container with the same type, name, state variables and units of
information, and clear it on every entity that no longer has a twin.
Complex members are left alone.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadSnapshot(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			marked, err := command.AutoAssignCloneMarkers(cmd.Context(), d)
			if err != nil {
				return err
			}
			printSuccess(statusOut(cmd, output), "%d nodes marked as clones", marked)
			return saveSnapshot(cmd.Context(), cmd.OutOrStdout(), d, args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: overwrite input, - for stdout)")
	return cmd
}
