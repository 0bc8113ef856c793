package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/aether/internal/careerquiz"
	"github.com/abhisek/aether/internal/store"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Take the career quiz in plain text (no TUI)",
	Long: `Ask the ten questions one at a time on stdin.

Answer with a letter (A-D) or a number (1-4). An empty line skips the
question. The result is printed when the last question is answered.`,
	RunE: runQuiz,
}

func init() {
	quizCmd.Flags().Bool("save", true, "Store the attempt in the database")
	quizCmd.Flags().Bool("json", false, "Print the result as JSON instead of a summary")
}

func runQuiz(cmd *cobra.Command, args []string) error {
	save, _ := cmd.Flags().GetBool("save")
	asJSON, _ := cmd.Flags().GetBool("json")

	out := cmd.OutOrStdout()
	answers, err := askQuestions(cmd.InOrStdin(), out)
	if err != nil {
		return err
	}

	cfg := careerquiz.DefaultConfig()
	result := careerquiz.NewEngine(cfg).Score(answers)

	if save && !answers.Empty() {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		attempt := &store.Attempt{Answers: answers, Config: cfg, Result: result}
		if err := st.AttemptRepo().Save(cmd.Context(), attempt); err != nil {
			return fmt.Errorf("save attempt: %w", err)
		}
		fmt.Fprintln(os.Stderr, "Saved attempt", attempt.AttemptID)
	}

	if asJSON {
		return writeJSON(out, result)
	}
	printResult(out, result)
	return nil
}

// askQuestions prompts for every question and reads one line per answer.
// Invalid input repeats the question. Closed input leaves the remaining
// questions unanswered.
func askQuestions(in io.Reader, out io.Writer) (careerquiz.Answers, error) {
	var answers careerquiz.Answers
	scanner := bufio.NewScanner(in)

	for i, q := range careerquiz.Questions() {
		for {
			fmt.Fprintf(out, "── Question %d/%d · %s ──\n", i+1, careerquiz.NumQuestions, q.Dimension)
			fmt.Fprintln(out, q.Text)
			for j, o := range q.Options {
				fmt.Fprintf(out, "  %c) %s\n", 'A'+j, o.Text)
			}
			fmt.Fprint(out, "\nYour answer: ")

			if !scanner.Scan() {
				if err := scanner.Err(); err != nil {
					return answers, fmt.Errorf("read answer: %w", err)
				}
				fmt.Fprintln(out, "\n(input closed)")
				return answers, nil
			}
			c, err := careerquiz.ParseChoice(scanner.Text())
			if err != nil {
				fmt.Fprintf(out, "%v\n\n", err)
				continue
			}
			answers[i] = c
			if c == careerquiz.NoChoice {
				fmt.Fprintln(out, "(skipped)")
			}
			fmt.Fprintln(out)
			break
		}
	}
	return answers, nil
}

func printResult(w io.Writer, r careerquiz.Result) {
	if r.CareerPath == careerquiz.PathNone {
		fmt.Fprintln(w, "No questions answered.")
		return
	}
	m := r.LeadershipStyle
	p := r.CareerPriorities
	fmt.Fprintf(w, "Career path:  %s\n", r.CareerPath)
	fmt.Fprintf(w, "Leadership:   transformational %d%%, servant %d%%, situational %d%%, directive %d%%\n",
		m.Transformational, m.Servant, m.Situational, m.Directive)
	fmt.Fprintf(w, "Priorities:   intellectual %d, cultural %d, financial %d, authority %d\n",
		p.Intellectual, p.Cultural, p.Financial, p.Authority)
	printList(w, "Strengths", r.Strengths)
	printList(w, "Development", r.DevelopmentAreas)
	printList(w, "Topics", r.RecommendedTopics)
}

func printList(w io.Writer, label string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(w, "%-13s %s\n", label+":", strings.Join(items, "; "))
}
