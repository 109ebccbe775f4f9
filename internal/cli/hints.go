package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sbgnedit/pkg/constraint"
	"github.com/matzehuels/sbgnedit/pkg/diagram"
	"github.com/matzehuels/sbgnedit/pkg/errors"
	"github.com/matzehuels/sbgnedit/pkg/sbgn"
)

type hintsOpts struct {
	node string
	port string
	edge string
}

// hintsCommand lists what the rules allow at a node, a port or an edge.
func (c *CLI) hintsCommand() *cobra.Command {
	var opts hintsOpts

	cmd := &cobra.Command{
		Use:   "hints <snapshot.json>",
		Short: "List legal edge types and conversions",
		Long: `List what the SBGN rules allow.

With --node, lists the edges that may start or end at the node (or at one of
its ports with --port), the preferred type of the node at the other end, and
the types the node may be converted to. With --edge, lists the types the edge
may be converted to.`,
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
				return c.edgeHints(cmd, d, diagram.EdgeID(opts.edge))
			}
			return c.nodeHints(cmd, d, diagram.NodeID(opts.node), diagram.PortID(opts.port))
		},
	}

	cmd.Flags().StringVar(&opts.node, "node", "", "node to list creation hints for")
	cmd.Flags().StringVar(&opts.port, "port", "", "port of --node the edge would attach to")
	cmd.Flags().StringVar(&opts.edge, "edge", "", "edge to list conversion hints for")
	return cmd
}

func (c *CLI) nodeHints(cmd *cobra.Command, d *diagram.Diagram, node diagram.NodeID, port diagram.PortID) error {
	n, ok := d.Node(node)
	if !ok {
		return errors.New(errors.ErrCodeNodeNotFound, "node %s not found", node)
	}
	if port != "" && d.PortOwner(port) != node {
		return errors.New(errors.ErrCodeInvalidInput, "port %s does not belong to %s", port, node)
	}

	m := c.manager()
	hints := m.EdgeCreationHints(d, node, port)
	rows := make([]hintRow, len(hints))
	for i, h := range hints {
		rows[i] = hintRow{hint: h, other: preferredOther(m, d, node, port, h)}
	}

	w := cmd.OutOrStdout()
	printKeyValue(w, "node", fmt.Sprintf("%s (%s)", node, n.Type))
	printKeyValue(w, "converts to", typeList(m.NodeConversionTypes(d, node)))
	if len(rows) == 0 {
		printInfo(w, "no edge may attach here")
		return nil
	}
	fmt.Fprintln(w, hintTable(rows, false))
	return nil
}

func preferredOther(m *constraint.Manager, d *diagram.Diagram, node diagram.NodeID, port diagram.PortID, h constraint.Hint) sbgn.Type {
	if h.Reversed {
		return m.PreferredSourceType(d, node, port, h.Type)
	}
	return m.PreferredTargetType(d, node, port, h.Type)
}

func (c *CLI) edgeHints(cmd *cobra.Command, d *diagram.Diagram, edge diagram.EdgeID) error {
	e, ok := d.Edge(edge)
	if !ok {
		return errors.New(errors.ErrCodeEdgeNotFound, "edge %s not found", edge)
	}
	hints := c.manager().EdgeConversionHints(d, edge)
	rows := make([]hintRow, len(hints))
	for i, h := range hints {
		rows[i] = hintRow{hint: h}
	}

	w := cmd.OutOrStdout()
	printKeyValue(w, "edge", fmt.Sprintf("%s (%s, %s %s %s)", edge, e.Type, d.SourceNode(e), iconArrow, d.TargetNode(e)))
	if len(rows) == 0 {
		printInfo(w, "no conversion keeps the edge legal")
		return nil
	}
	fmt.Fprintln(w, hintTable(rows, true))
	return nil
}
