// Command hccraf is a thin CLI wrapper over the scoring pipeline's
// three orchestrator entry points (spec.md §4.8). It is not part of
// the core: it parses flags, builds a tables.Options, calls into
// internal/raf, and prints the RAFResult as JSON on stdout.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "hccraf: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "hccraf",
		Short: "CMS HCC risk-adjustment scoring engine",
	}

	score := &cobra.Command{
		Use:   "score",
		Short: "Score a beneficiary under a CMS risk-adjustment model",
	}
	score.AddCommand(newScoreClaimsCmd())
	score.AddCommand(newScoreRecordsCmd())
	score.AddCommand(newScoreDxCmd())

	root.AddCommand(score)
	return root
}
