package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/agenthands/kamsam/internal/config"
	"github.com/agenthands/kamsam/internal/core"
	"github.com/agenthands/kamsam/internal/logging"
	"github.com/agenthands/kamsam/internal/tui"
)

var (
	configPath string
	policyFlag string
	langFlag   string
	logFile    string
)

var rootCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the duplicate word game in the terminal",
	Long: `Enter words one at a time. When a word repeats an earlier one the
game asks whether to continue (dropping the repeat) or start a new game
(recording the round in history).

Press tab to switch between exact and partial matching.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultPath, "path to the TOML config file")
	rootCmd.Flags().StringVarP(&policyFlag, "policy", "p", "", "matching policy: exact|partial (easy|hard)")
	rootCmd.Flags().StringVarP(&langFlag, "language", "l", "", "segmenter language tag, e.g. th or en")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file instead of discarding them")
}

func run(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return err
	}
	if policyFlag != "" {
		cfg.Game.Policy = policyFlag
	}
	if langFlag != "" {
		cfg.Segmenter.Language = langFlag
	}

	// The terminal belongs to the UI, so logs go to a file or nowhere.
	logger := zap.NewNop()
	if logFile != "" {
		cfg.Logging.Output = logFile
		if logger, err = logging.New(cfg.Logging); err != nil {
			return err
		}
	}
	defer func() { _ = logger.Sync() }()

	game, err := core.Build(cfg, logger)
	if err != nil {
		return err
	}

	if _, err := tea.NewProgram(tui.New(game), tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
