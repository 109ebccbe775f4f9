package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sbgnedit/pkg/constraint"
	"github.com/matzehuels/sbgnedit/pkg/errors"
	"github.com/matzehuels/sbgnedit/pkg/observability"
)

// checkCommand audits a snapshot. It fails when any violation is an error,
// or any violation at all with --warnings-as-errors.
func (c *CLI) checkCommand() *cobra.Command {
	var warningsAsErrors bool

	cmd := &cobra.Command{
		Use:   "check <snapshot.json>",
		Short: "Audit a diagram against the SBGN rules",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			d, err := loadSnapshot(ctx, args[0])
			if err != nil {
				return err
			}

			m := c.manager()
			start := time.Now()
			vs := m.Audit(d)
			observability.Audit().OnAuditComplete(ctx, d.NodeCount(), d.EdgeCount(), len(vs), time.Since(start))

			w := cmd.OutOrStdout()
			if len(vs) == 0 {
				printSuccess(w, "%s passes the %s rules (%d nodes, %d edges)", args[0], m.Level, d.NodeCount(), d.EdgeCount())
				return nil
			}

			fmt.Fprintln(w, violationTable(vs))
			sum := constraint.Summary(vs)
			printInfo(w, "%d errors, %d warnings, %d notes", sum.Error, sum.Warning, sum.Info)
			if sum.Error > 0 || (warningsAsErrors && sum.Warning > 0) {
				return errors.New(errors.ErrCodeInvalidInput, "%s violates %d rules", args[0], len(vs))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&warningsAsErrors, "warnings-as-errors", false, "fail on warnings too")
	return cmd
}
