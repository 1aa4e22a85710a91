package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/drbombe/researchpal/models"
)

func researchCMD() *cobra.Command {
	var cfgPath string
	var question string
	var cmd = &cobra.Command{
		Use:   "research",
		Short: "Run a research session and write the annotated report",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cfgPath)
			if err != nil {
				return err
			}
			defer a.Telemetry.Shutdown(cmd.Context())
			ctx := cmd.Context()

			reader := bufio.NewReader(os.Stdin)
			if question == "" {
				fmt.Print("What would you like to research? ")
				question, err = readLine(reader)
				if err != nil {
					return err
				}
			}
			if strings.TrimSpace(question) == "" {
				return fmt.Errorf("research question is empty")
			}

			conversation := []models.Message{
				{Role: models.RoleUser, Content: question},
			}
			followups, err := a.Engine.Followups(ctx, conversation, a.Cfg.Research.MaxFollowupQuestions)
			if err != nil {
				return fmt.Errorf("generating follow-up questions: %w", err)
			}
			fmt.Printf("\n%s\n\nYour answers (single line, empty to skip): ", followups)
			answers, err := readLine(reader)
			if err != nil {
				return err
			}
			conversation = append(conversation,
				models.Message{Role: models.RoleAssistant, Content: followups},
				models.Message{Role: models.RoleUser, Content: answers},
			)

			a.Logger.Printf("starting research, depth %d", a.Cfg.Research.Depth)
			sess, storedID, err := a.Research(ctx, conversation)
			if err != nil {
				return fmt.Errorf("research failed: %w", err)
			}
			a.Logger.Printf("research done: %d sources, session %s", len(sess.Results), storedID)

			final, err := a.BuildReport(ctx, sess)
			if err != nil {
				return err
			}
			path, err := a.WriteOutput("research_result", question, final)
			if err != nil {
				return err
			}
			fmt.Printf("\nReport written to %s (session %s)\n", path, storedID)
			return nil
		},
	}
	cmd.Flags().StringVar(&question, "question", "", "research question (prompted for when empty)")
	cmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "config file (default is .)")
	return cmd
}

func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
