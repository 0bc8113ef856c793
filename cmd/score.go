package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/aether/internal/careerquiz"
	"github.com/abhisek/aether/internal/store"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a set of quiz answers and print the result as JSON",
	Long: `Score answers without the TUI.

Answers are given either as option text, one --answer per question in order
(text is matched against the option keywords, so "Servant" picks the servant
option), or as a --choices list of letters such as A,B,,D where an empty
entry leaves that question unanswered.`,
	Example: `  aether score --choices A,A,B,C,A,D,B,A,C,A
  aether score --answer "Transformational" --answer "Financial rewards" --save`,
	RunE: func(cmd *cobra.Command, args []string) error {
		texts, _ := cmd.Flags().GetStringArray("answer")
		choices, _ := cmd.Flags().GetString("choices")
		tieBreak, _ := cmd.Flags().GetString("tie-break")
		normalize, _ := cmd.Flags().GetString("normalize")
		save, _ := cmd.Flags().GetBool("save")
		analysis, _ := cmd.Flags().GetBool("analysis")

		answers, err := collectAnswers(texts, choices)
		if err != nil {
			return err
		}
		cfg, err := scoringConfig(tieBreak, normalize)
		if err != nil {
			return err
		}

		engine := careerquiz.NewEngine(cfg)
		a := engine.Analyze(answers)

		if save {
			st, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer st.Close()

			attempt := &store.Attempt{Answers: answers, Config: cfg, Result: a.Result}
			if err := st.AttemptRepo().Save(cmd.Context(), attempt); err != nil {
				return fmt.Errorf("save attempt: %w", err)
			}
			fmt.Fprintln(os.Stderr, "Saved attempt", attempt.AttemptID)
		}

		if analysis {
			return writeJSON(cmd.OutOrStdout(), a)
		}
		return writeJSON(cmd.OutOrStdout(), a.Result)
	},
}

var errAnswerSources = errors.New("use --answer or --choices, not both")

// collectAnswers builds the answer set from either free text or a choice list.
func collectAnswers(texts []string, choices string) (careerquiz.Answers, error) {
	switch {
	case len(texts) > 0 && choices != "":
		return careerquiz.Answers{}, errAnswerSources
	case len(texts) > careerquiz.NumQuestions:
		return careerquiz.Answers{}, fmt.Errorf("got %d answers, want at most %d", len(texts), careerquiz.NumQuestions)
	case len(texts) > 0:
		return careerquiz.ParseAnswers(texts), nil
	}
	answers, err := careerquiz.ParseChoiceList(choices)
	if err != nil {
		return answers, fmt.Errorf("parse --choices: %w", err)
	}
	return answers, nil
}

func scoringConfig(tieBreak, normalize string) (careerquiz.Config, error) {
	tb, err := careerquiz.ParseTieBreak(tieBreak)
	if err != nil {
		return careerquiz.Config{}, err
	}
	n, err := careerquiz.ParseNormalization(normalize)
	if err != nil {
		return careerquiz.Config{}, err
	}
	return careerquiz.Config{TieBreak: tb, Normalization: n}, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func init() {
	scoreCmd.Flags().StringArrayP("answer", "a", nil, "Answer text for the next question (repeatable)")
	scoreCmd.Flags().StringP("choices", "c", "", "Comma separated choices, e.g. A,B,,D")
	scoreCmd.Flags().String("tie-break", string(careerquiz.FirstWins), "Tie-break policy: first or last")
	scoreCmd.Flags().String("normalize", string(careerquiz.AbsorbIntoFirst), "Percentage normalization: absorb or largest-remainder")
	scoreCmd.Flags().Bool("save", false, "Store the attempt in the database")
	scoreCmd.Flags().Bool("analysis", false, "Print counters and dominant categories along with the result")
}
