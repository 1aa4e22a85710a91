package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func sourcesCMD() *cobra.Command {
	var cfgPath string
	var sessionID string
	var limit int
	var cmd = &cobra.Command{
		Use:   "sources [query]",
		Short: "Search the crawled sources of a stored session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cfgPath)
			if err != nil {
				return err
			}
			defer a.Telemetry.Shutdown(cmd.Context())

			sess, err := a.Store.GetSession(sessionID)
			if err != nil {
				return fmt.Errorf("loading session: %w", err)
			}
			if sess == nil {
				return fmt.Errorf("session %s not found or expired", sessionID)
			}

			hits, err := sess.Search(args[0], limit)
			if err != nil {
				return fmt.Errorf("searching sources: %w", err)
			}
			if len(hits) == 0 {
				fmt.Println("no matching sources")
				return nil
			}
			for i, hit := range hits {
				fmt.Printf("%d. %s\n%s\n\n", i+1, hit.URL, hit.Summary)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&sessionID, "session", "", "session ID from a previous research run")
	_ = cmd.MarkFlagRequired("session")
	cmd.Flags().IntVar(&limit, "limit", 5, "maximum hits to print")
	cmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "config file (default is .)")
	return cmd
}
