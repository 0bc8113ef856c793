package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/aether/internal/insights"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Show the insights applied to your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		data, err := insights.NewService(s.SnapshotRepo()).Current(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if asJSON {
			return writeJSON(out, data)
		}
		if data.Insights == nil {
			fmt.Fprintln(out, "No insights applied yet. Finish the quiz and press a on the results screen.")
			return nil
		}

		in := data.Insights
		fmt.Fprintf(out, "Applied:      %s (attempt %s)\n", in.AppliedAt.Local().Format("2006-01-02 15:04"), in.AttemptID)
		printResult(out, in.Result)

		if c := data.Coaching; c != nil {
			fmt.Fprintln(out)
			fmt.Fprintln(out, strings.Repeat("─", 60))
			fmt.Fprintf(out, "%s\n\n%s\n", c.Headline, c.Summary)
			for i, step := range c.NextSteps {
				fmt.Fprintf(out, "  %d. %s\n", i+1, step)
			}
			if len(c.FocusTopics) > 0 {
				fmt.Fprintf(out, "Focus: %s\n", strings.Join(c.FocusTopics, ", "))
			}
			fmt.Fprintf(out, "(%s, %s)\n", c.Model, c.GeneratedAt.Local().Format("2006-01-02 15:04"))
		}
		return nil
	},
}

func init() {
	insightsCmd.Flags().Bool("json", false, "Print the profile as JSON")
}
