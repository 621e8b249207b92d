package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/cmshealth/hccraf/internal/raf"
	"github.com/cmshealth/hccraf/internal/tables"
)

func newScoreDxCmd() *cobra.Command {
	var tf tableFlags
	var df demographicsFlags
	var dxs []string

	cmd := &cobra.Command{
		Use:   "dx",
		Short: "Score a bare diagnosis-code set (orchestrator entry point 3)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(dxs) == 0 {
				return fmt.Errorf("at least one --dx is required")
			}

			requestID := newRequestID()
			fmt.Fprintf(os.Stderr, "[%s] scoring %d diagnosis code(s) under %s\n", requestID, len(dxs), tf.variant)

			start := time.Now()
			result, err := raf.CalculateFromDiagnosis(dxs, df.toDemographics(), tables.ModelVariant(tf.variant), tf.toOptions())
			if err != nil {
				return err
			}
			return emitResult(requestID, result, time.Since(start))
		},
	}

	registerTableFlags(cmd, &tf)
	registerDemographicsFlags(cmd, &df)
	cmd.Flags().StringArrayVar(&dxs, "dx", nil, "a diagnosis code (repeatable)")

	return cmd
}
