package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/sbgnedit/pkg/command"
	"github.com/matzehuels/sbgnedit/pkg/constraint"
	"github.com/matzehuels/sbgnedit/pkg/diagram"
	"github.com/matzehuels/sbgnedit/pkg/errors"
	"github.com/matzehuels/sbgnedit/pkg/sbgn"
)

type convertOpts struct {
	node     string
	edge     string
	typ      string
	reversed bool
	pick     bool
	output   string
}

// convertCommand retypes a node or an edge.
func (c *CLI) convertCommand() *cobra.Command {
	var opts convertOpts

	cmd := &cobra.Command{
		Use:   "convert <snapshot.json>",
		Short: "Change the type of a node or an edge",
		Long: `Change the type of a node or an edge.

A node keeps its edges, so only types listed by 'sbgnedit hints --node' are
accepted. Use --pick to choose one interactively. An edge may be reversed
with --reversed when the new type runs the other way.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if (opts.node == "") == (opts.edge == "") {
				return errors.New(errors.ErrCodeInvalidInput, "exactly one of --node and --edge is required")
			}
			d, err := loadSnapshot(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if opts.edge != "" {
				err = c.convertEdge(cmd, d, opts)
			} else {
				err = c.convertNode(cmd, d, opts)
			}
			if err != nil {
				return err
			}
			return saveSnapshot(cmd.Context(), cmd.OutOrStdout(), d, args[0], opts.output)
		},
	}

	cmd.Flags().StringVar(&opts.node, "node", "", "node to convert")
	cmd.Flags().StringVar(&opts.edge, "edge", "", "edge to convert")
	cmd.Flags().StringVarP(&opts.typ, "type", "t", "", "new type (e.g. MACROMOLECULE, INHIBITION)")
	cmd.Flags().BoolVar(&opts.reversed, "reversed", false, "swap the edge's ends")
	cmd.Flags().BoolVar(&opts.pick, "pick", false, "choose the node type interactively")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: overwrite input, - for stdout)")
	return cmd
}

func (c *CLI) convertNode(cmd *cobra.Command, d *diagram.Diagram, opts convertOpts) error {
	id := diagram.NodeID(opts.node)
	if err := validateIDs(opts.node); err != nil {
		return err
	}
	n, ok := d.Node(id)
	if !ok {
		return errors.New(errors.ErrCodeNodeNotFound, "node %s not found", id)
	}
	m := c.manager()

	var t sbgn.Type
	switch {
	case opts.pick:
		if !stdinIsTerminal() {
			return errors.New(errors.ErrCodeInvalidInput, "--pick needs a terminal")
		}
		picked, ok, err := pickType(opts.node, n.Type, m.NodeConversionTypes(d, id))
		if err != nil {
			return err
		}
		if !ok {
			printInfo(statusOut(cmd, opts.output), "nothing picked")
			return nil
		}
		t = picked
	case opts.typ != "":
		parsed, err := sbgn.ParseType(opts.typ)
		if err != nil {
			return err
		}
		t = parsed
	default:
		return errors.New(errors.ErrCodeInvalidInput, "--type or --pick is required")
	}

	prev := n.Type
	if err := command.ConvertNode(cmd.Context(), m, d, id, t); err != nil {
		return err
	}
	printSuccess(statusOut(cmd, opts.output), "%s: %s %s %s", id, prev, iconArrow, t)
	return nil
}

func (c *CLI) convertEdge(cmd *cobra.Command, d *diagram.Diagram, opts convertOpts) error {
	if err := validateIDs(opts.edge); err != nil {
		return err
	}
	if opts.typ == "" {
		return errors.New(errors.ErrCodeInvalidInput, "--type is required")
	}
	t, err := sbgn.ParseType(opts.typ)
	if err != nil {
		return err
	}
	id := diagram.EdgeID(opts.edge)
	h := constraint.Hint{Type: t, Reversed: opts.reversed}
	if err := command.ConvertEdge(cmd.Context(), c.manager(), d, id, h); err != nil {
		return err
	}
	printSuccess(statusOut(cmd, opts.output), "%s: %s", id, h)
	return nil
}
