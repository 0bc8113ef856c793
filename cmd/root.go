package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/aether/internal/logging"
	"github.com/abhisek/aether/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "aether",
	Short: "Career assistant for the terminal",
	Long: `Aether is a terminal career assistant. A ten question quiz profiles your
leadership style and priorities and recommends a career path; the app also
keeps your financial ledger and professional experience at hand.

LLM coaching briefs need one of AETHER_GEMINI_API_KEY, AETHER_ANTHROPIC_API_KEY,
AETHER_OPENAI_API_KEY or AETHER_OPENROUTER_API_KEY. Variables may also be set
in a .env file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("env-file")
		return loadEnv(path)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides AETHER_DB env var)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error (overrides AETHER_LOG_LEVEL)")
	rootCmd.PersistentFlags().String("log-file", "", "Log file (default aether.log in the data directory)")
	rootCmd.PersistentFlags().String("env-file", ".env", "Environment file to load when present")

	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(insightsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadEnv reads path into the environment. Variables that are already set
// win, and a missing file is not an error.
func loadEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then AETHER_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the database selected by resolveDBPath.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// newLogger builds the file logger. The TUI owns the terminal, so logs never
// go to stdout or stderr.
func newLogger(cmd *cobra.Command) (*zap.Logger, error) {
	level, _ := cmd.Flags().GetString("log-level")
	if level == "" {
		level = os.Getenv("AETHER_LOG_LEVEL")
	}
	path, _ := cmd.Flags().GetString("log-file")
	if path == "" {
		dir, err := store.DataDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, logging.DefaultFile)
	}
	return logging.New(logging.Options{Level: level, Path: path})
}
