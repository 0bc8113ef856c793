package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/aether/internal/careerquiz"
	"github.com/abhisek/aether/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize quiz attempts by career path",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		attempts, err := s.AttemptRepo().List(cmd.Context(), store.QueryOpts{})
		if err != nil {
			return fmt.Errorf("list attempts: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(attempts) == 0 {
			fmt.Fprintln(out, "No quiz attempts yet.")
			return nil
		}

		st := summarize(attempts)
		fmt.Fprintf(out, "%d attempts, %d with at least one answer\n\n", st.total, st.answered)

		fmt.Fprintln(out, "Career paths")
		fmt.Fprintln(out, strings.Repeat("─", 50))
		for _, pc := range st.paths {
			fmt.Fprintf(out, "%-38s  %5d\n", pc.path, pc.count)
		}

		if st.answered > 0 {
			m := st.avgMix
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Average leadership mix")
			fmt.Fprintln(out, strings.Repeat("─", 50))
			fmt.Fprintf(out, "transformational %d%%, servant %d%%, situational %d%%, directive %d%%\n",
				m[0], m[1], m[2], m[3])
		}
		return nil
	},
}

type pathCount struct {
	path  careerquiz.CareerPath
	count int
}

type attemptStats struct {
	total    int
	answered int
	paths    []pathCount
	avgMix   [4]int
}

// summarize counts attempts per path, most frequent first, and averages the
// leadership mix over answered attempts.
func summarize(attempts []store.Attempt) attemptStats {
	st := attemptStats{total: len(attempts)}
	counts := make(map[careerquiz.CareerPath]int)
	var sum [4]int
	for _, a := range attempts {
		if a.Result.CareerPath == careerquiz.PathNone {
			continue
		}
		st.answered++
		counts[a.Result.CareerPath]++
		for i, v := range a.Result.LeadershipStyle.Values() {
			sum[i] += v
		}
	}
	for p, n := range counts {
		st.paths = append(st.paths, pathCount{path: p, count: n})
	}
	sort.Slice(st.paths, func(i, j int) bool {
		if st.paths[i].count != st.paths[j].count {
			return st.paths[i].count > st.paths[j].count
		}
		return st.paths[i].path < st.paths[j].path
	})
	if st.answered > 0 {
		for i := range sum {
			st.avgMix[i] = sum[i] / st.answered
		}
	}
	return st
}
