package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/drbombe/researchpal/models"
)

func annotateCMD() *cobra.Command {
	var cfgPath string
	var cmd = &cobra.Command{
		Use:   "annotate",
		Short: "Rebuild and annotate the report from a previous run's dumps",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cfgPath)
			if err != nil {
				return err
			}
			defer a.Telemetry.Shutdown(cmd.Context())

			sess, err := a.LoadSession()
			if err != nil {
				return err
			}
			a.Logger.Printf("resumed session: %d messages, %d sources", len(sess.Messages), len(sess.Results))

			final, err := a.BuildReport(cmd.Context(), sess)
			if err != nil {
				return err
			}
			path, err := a.WriteOutput("research_result", firstUserContent(sess.Messages), final)
			if err != nil {
				return err
			}
			fmt.Printf("Report written to %s\n", path)
			return nil
		},
	}
	cmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "config file (default is .)")
	return cmd
}

func firstUserContent(messages []models.Message) string {
	for _, m := range messages {
		if m.Role == models.RoleUser {
			return m.Content
		}
	}
	return "research"
}
