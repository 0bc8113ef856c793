package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/aether/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past quiz attempts",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		asJSON, _ := cmd.Flags().GetBool("json")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		attempts, err := s.AttemptRepo().List(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("list attempts: %w", err)
		}

		out := cmd.OutOrStdout()
		if asJSON {
			return writeJSON(out, attemptRecords(attempts))
		}
		if len(attempts) == 0 {
			fmt.Fprintln(out, "No quiz attempts yet.")
			return nil
		}

		fmt.Fprintf(out, "%-36s  %-16s  %-10s  %-8s  %s\n", "Attempt", "Taken", "Answers", "Answered", "Career path")
		fmt.Fprintln(out, strings.Repeat("─", 110))
		for _, a := range attempts {
			fmt.Fprintf(out, "%-36s  %-16s  %-10s  %4d/10   %s\n",
				a.AttemptID,
				a.Timestamp.Local().Format("2006-01-02 15:04"),
				a.Answers.String(),
				a.Answers.Answered(),
				a.Result.CareerPath,
			)
		}
		return nil
	},
}

// attemptRecord is the JSON shape of an attempt.
type attemptRecord struct {
	AttemptID string `json:"attempt_id"`
	Sequence  int64  `json:"sequence"`
	Timestamp string `json:"timestamp"`
	Answers   string `json:"answers"`
	TieBreak  string `json:"tie_break"`
	Normalize string `json:"normalize"`
	Result    any    `json:"result"`
}

func attemptRecords(attempts []store.Attempt) []attemptRecord {
	out := make([]attemptRecord, 0, len(attempts))
	for _, a := range attempts {
		out = append(out, attemptRecord{
			AttemptID: a.AttemptID,
			Sequence:  a.Sequence,
			Timestamp: a.Timestamp.UTC().Format("2006-01-02T15:04:05Z"),
			Answers:   a.Answers.String(),
			TieBreak:  string(a.Config.TieBreak),
			Normalize: string(a.Config.Normalization),
			Result:    a.Result,
		})
	}
	return out
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of attempts to show (0 for all)")
	historyCmd.Flags().Bool("json", false, "Print attempts as JSON")
}
