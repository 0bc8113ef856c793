package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/aether/internal/app"
	"github.com/abhisek/aether/internal/careerquiz"
	"github.com/abhisek/aether/internal/coach"
	"github.com/abhisek/aether/internal/experience"
	"github.com/abhisek/aether/internal/finance"
	"github.com/abhisek/aether/internal/insights"
	"github.com/abhisek/aether/internal/llm"
	"github.com/abhisek/aether/internal/locations"
	"github.com/abhisek/aether/internal/screens/home"
	"github.com/abhisek/aether/internal/screens/quiz"
	"github.com/abhisek/aether/internal/selfupdate"
)

// updateCheckTimeout bounds the release check done before the TUI starts.
const updateCheckTimeout = 1500 * time.Millisecond

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	log, err := newLogger(cmd)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = log.Sync() }()

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	deps := home.Deps{
		Quiz: quiz.Deps{
			Engine:   careerquiz.NewEngine(careerquiz.DefaultConfig()),
			Attempts: st.AttemptRepo(),
			Insights: insights.NewService(st.SnapshotRepo()),
			Log:      log,
		},
		Ledger:  finance.Sample(),
		Profile: experience.Sample(),
		Atlas:   locations.Sample(),
	}

	provider, err := llm.NewProviderFromEnv(ctx, llm.Deps{Recorder: eventRepo, Log: log})
	switch {
	case err != nil:
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Coaching briefs will be unavailable.")
	case provider != nil:
		deps.Quiz.Coach = coach.NewService(provider, coach.DefaultConfig(), log)
		log.Info("llm provider ready", zap.String("model", provider.ModelID()))
	default:
		log.Info("no llm provider configured")
	}

	deps.LatestVersion = latestRelease(ctx, log)

	return app.Run(deps)
}

// latestRelease returns the newer release tag, or "" when there is none or
// the check fails.
func latestRelease(ctx context.Context, log *zap.Logger) string {
	if version == devVersion {
		return ""
	}
	ctx, cancel := context.WithTimeout(ctx, updateCheckTimeout)
	defer cancel()

	res, err := selfupdate.NewChecker(selfupdate.WithTimeout(updateCheckTimeout)).
		Check(ctx, &selfupdate.CheckInput{Version: version})
	if err != nil {
		log.Debug("update check failed", zap.Error(err))
		return ""
	}
	if !res.UpdateAvailable {
		return ""
	}
	return res.LatestVersion
}
