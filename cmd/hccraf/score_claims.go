package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/cmshealth/hccraf/internal/raf"
	"github.com/cmshealth/hccraf/internal/tables"
)

func newScoreClaimsCmd() *cobra.Command {
	var tf tableFlags
	var df demographicsFlags
	var x12Files []string
	var fhirFiles []string

	cmd := &cobra.Command{
		Use:   "claims",
		Short: "Score raw X12 837 envelopes and/or FHIR EOB documents (orchestrator entry point 1)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(x12Files) == 0 && len(fhirFiles) == 0 {
				return fmt.Errorf("at least one --x12-file or --fhir-file is required")
			}

			var inputs []raf.RawInput
			for _, path := range x12Files {
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("read %s: %w", path, err)
				}
				inputs = append(inputs, raf.RawInput{Kind: raf.KindX12, Data: data})
			}
			for _, path := range fhirFiles {
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("read %s: %w", path, err)
				}
				inputs = append(inputs, raf.RawInput{Kind: raf.KindFHIR, Data: data})
			}

			requestID := newRequestID()
			fmt.Fprintf(os.Stderr, "[%s] scoring %d raw claim input(s) under %s\n", requestID, len(inputs), tf.variant)

			start := time.Now()
			result, err := raf.Run(inputs, df.toDemographics(), tables.ModelVariant(tf.variant), tf.toOptions())
			if err != nil {
				return err
			}
			return emitResult(requestID, result, time.Since(start))
		},
	}

	registerTableFlags(cmd, &tf)
	registerDemographicsFlags(cmd, &df)
	cmd.Flags().StringArrayVar(&x12Files, "x12-file", nil, "path to a raw X12 837 envelope file (repeatable)")
	cmd.Flags().StringArrayVar(&fhirFiles, "fhir-file", nil, "path to a raw FHIR ExplanationOfBenefit JSON file (repeatable)")

	return cmd
}
