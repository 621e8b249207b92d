package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/cmshealth/hccraf/internal/raf"
	"github.com/cmshealth/hccraf/internal/servicerecord"
	"github.com/cmshealth/hccraf/internal/tables"
)

func newScoreRecordsCmd() *cobra.Command {
	var tf tableFlags
	var df demographicsFlags
	var recordsFile string

	cmd := &cobra.Command{
		Use:   "records",
		Short: "Score normalized service records from a JSON file (orchestrator entry point 2)",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(recordsFile)
			if err != nil {
				return fmt.Errorf("read records file: %w", err)
			}

			var records []servicerecord.Record
			if err := json.Unmarshal(raw, &records); err != nil {
				return fmt.Errorf("decode records file: %w", err)
			}

			requestID := newRequestID()
			fmt.Fprintf(os.Stderr, "[%s] scoring %d service record(s) under %s\n", requestID, len(records), tf.variant)

			start := time.Now()
			result, err := raf.RunFromServiceRecords(records, df.toDemographics(), tables.ModelVariant(tf.variant), tf.toOptions())
			if err != nil {
				return err
			}
			return emitResult(requestID, result, time.Since(start))
		},
	}

	registerTableFlags(cmd, &tf)
	registerDemographicsFlags(cmd, &df)
	cmd.Flags().StringVar(&recordsFile, "records-file", "", "path to a JSON file containing an array of service records")
	cmd.MarkFlagRequired("records-file")

	return cmd
}
