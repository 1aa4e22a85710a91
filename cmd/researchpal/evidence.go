package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

func evidenceCMD() *cobra.Command {
	var cfgPath string
	var reportPath string
	var cmd = &cobra.Command{
		Use:   "evidence",
		Short: "Collect supporting evidence for an existing report",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cfgPath)
			if err != nil {
				return err
			}
			defer a.Telemetry.Shutdown(cmd.Context())

			data, err := os.ReadFile(reportPath)
			if err != nil {
				return fmt.Errorf("reading report: %w", err)
			}

			a.Logger.Printf("collecting evidence for %s", reportPath)
			evidence, err := a.Evidence(cmd.Context(), string(data))
			if err != nil {
				return err
			}

			name := strings.TrimSuffix(filepath.Base(reportPath), filepath.Ext(reportPath))
			name = strings.TrimPrefix(name, "research_result_")
			path, err := a.WriteOutput("supporting_evidence", strings.ReplaceAll(name, "_", " "), evidence)
			if err != nil {
				return err
			}
			fmt.Printf("Evidence written to %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVar(&reportPath, "report", "", "path to the report to support")
	_ = cmd.MarkFlagRequired("report")
	cmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "config file (default is .)")
	return cmd
}
