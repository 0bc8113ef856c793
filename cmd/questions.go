package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/aether/internal/careerquiz"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the quiz questions with their options and scoring tags",
	RunE: func(cmd *cobra.Command, args []string) error {
		dim, _ := cmd.Flags().GetString("dimension")
		out := cmd.OutOrStdout()

		shown := 0
		for _, q := range careerquiz.Questions() {
			if dim != "" && !strings.EqualFold(dim, q.Dimension.Key()) {
				continue
			}
			shown++
			fmt.Fprintf(out, "%2d. [%s] %s\n", q.Index+1, q.Dimension.Key(), q.Text)
			for j, o := range q.Options {
				fmt.Fprintf(out, "      %c) %-58s  %-16s  %s\n", 'A'+j, o.Text, o.Tag, o.Fragment)
			}
			fmt.Fprintln(out, strings.Repeat("─", 100))
		}
		if shown == 0 {
			var keys []string
			for _, d := range careerquiz.AllDimensions() {
				keys = append(keys, d.Key())
			}
			return fmt.Errorf("no dimension %q (want one of %s)", dim, strings.Join(keys, ", "))
		}
		return nil
	},
}

func init() {
	questionsCmd.Flags().String("dimension", "", "Only show the question for this dimension key, e.g. techFocus")
}
