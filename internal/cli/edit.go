package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sbgnedit/pkg/command"
	"github.com/matzehuels/sbgnedit/pkg/diagram"
	"github.com/matzehuels/sbgnedit/pkg/sbgn"
)

// editCommand groups the small node edits.
func (c *CLI) editCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Toggle markers, add auxiliary units and move nodes between groups",
	}
	cmd.PersistentFlags().StringP("output", "o", "", "output file (default: overwrite input, - for stdout)")

	cmd.AddCommand(c.toggleCommand("multimer", "Toggle the multimer form of entities", command.ToggleMultimer))
	cmd.AddCommand(c.toggleCommand("clone", "Toggle the clone marker of entities", command.ToggleCloneMarker))
	cmd.AddCommand(c.toggleCommand("lock", "Lock or unlock complexes", command.ToggleComplexLock))
	cmd.AddCommand(c.auxCommand())
	cmd.AddCommand(c.reparentCommand())
	return cmd
}

// editNodes loads a snapshot, runs edit on it and saves the result.
func editNodes(cmd *cobra.Command, input string, edit func(ctx context.Context, d *diagram.Diagram) error) error {
	ctx := cmd.Context()
	d, err := loadSnapshot(ctx, input)
	if err != nil {
		return err
	}
	if err := edit(ctx, d); err != nil {
		return err
	}
	output, _ := cmd.Flags().GetString("output")
	return saveSnapshot(ctx, cmd.OutOrStdout(), d, input, output)
}

// editStatus returns the status writer for the edit subcommand cmd.
func editStatus(cmd *cobra.Command) io.Writer {
	output, _ := cmd.Flags().GetString("output")
	return statusOut(cmd, output)
}

type toggleFunc func(ctx context.Context, d *diagram.Diagram, nodes ...diagram.NodeID) error

func (c *CLI) toggleCommand(name, short string, toggle toggleFunc) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <snapshot.json> <node>...",
		Short: short,
		Long: short + `.

Nodes the toggle does not apply to are skipped. The edit is refused when
it applies to none of them, and an unknown node aborts it.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateIDs(args[1:]...); err != nil {
				return err
			}
			return editNodes(cmd, args[0], func(ctx context.Context, d *diagram.Diagram) error {
				if err := toggle(ctx, d, nodeIDs(args[1:])...); err != nil {
					return err
				}
				printSuccess(editStatus(cmd), "toggled %s on %d nodes", name, len(args)-1)
				return nil
			})
		},
	}
}

func (c *CLI) auxCommand() *cobra.Command {
	var typ, text string

	cmd := &cobra.Command{
		Use:   "aux <snapshot.json> <node>",
		Short: "Add a state variable or unit of information",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateIDs(args[1]); err != nil {
				return err
			}
			t, err := sbgn.ParseType(typ)
			if err != nil {
				return err
			}
			return editNodes(cmd, args[0], func(ctx context.Context, d *diagram.Diagram) error {
				id, err := command.AddAuxiliaryUnit(ctx, c.manager(), d, diagram.NodeID(args[1]), t, text)
				if err != nil {
					return err
				}
				printSuccess(editStatus(cmd), "added %s %s to %s", t, id, args[1])
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&typ, "type", "t", sbgn.StateVariable.String(), "STATE_VARIABLE or UNIT_OF_INFORMATION")
	cmd.Flags().StringVar(&text, "text", "", "label text (e.g. P@S15, mt:prot)")
	return cmd
}

func (c *CLI) reparentCommand() *cobra.Command {
	var group string

	cmd := &cobra.Command{
		Use:   "reparent <snapshot.json> <node>",
		Short: "Move a node into a compartment or complex",
		Long: `Move a node into a compartment or complex, or to the top level when --group
is omitted. Compartments never nest, and complexes only take members without
incoming edges.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := args[1:]
			if group != "" {
				ids = append(ids, group)
			}
			if err := validateIDs(ids...); err != nil {
				return err
			}
			return editNodes(cmd, args[0], func(ctx context.Context, d *diagram.Diagram) error {
				if err := command.Reparent(ctx, c.manager(), d, diagram.NodeID(args[1]), diagram.NodeID(group)); err != nil {
					return err
				}
				where := group
				if where == "" {
					where = "the top level"
				}
				printSuccess(editStatus(cmd), "moved %s into %s", args[1], where)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&group, "group", "g", "", "compartment or complex to move into (default: top level)")
	return cmd
}
