// Command zoneremap reconciles messy pasted contract/zone remap tables into
// canonical tab-separated rows. It can read from stdin or a file
// (reconcile), open an interactive paste surface (ui), or self-test the
// detection cascade (check).
package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"zoneremap/internal/check"
	"zoneremap/internal/config"
	"zoneremap/internal/engine"
	"zoneremap/internal/logging"
	"zoneremap/internal/ui"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0-dev"
	commit  = "unknown"
)

var (
	cfg        config.Config
	logger     *zap.Logger
	configPath string

	flagColor   string
	flagLevel   string
	flagLogFile string
	flagDelim   string
	flagExplain bool
	outputPath  string
)

var rootCmd = &cobra.Command{
	Use:   "zoneremap",
	Short: "Reconcile pasted contract/zone remap tables into canonical rows",
	Long: `zoneremap turns messy, human-pasted contract-to-zone remap tables into
canonical CONTRACT<TAB>ZONE_OLD<TAB>ZONE_NEW rows.

Input may be aligned rows, rows split across lines, or three independent
vertical columns pasted from a spreadsheet; invisible marks and inconsistent
zero padding are repaired along the way.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		cfg = config.Default()
		if configPath != "" {
			if err := config.Load(configPath, &cfg); err != nil {
				return err
			}
		}
		// Flags win over the config file; empty means unset.
		if flagColor != "" {
			cfg.ColorMode = config.ColorMode(flagColor)
		}
		if flagLevel != "" {
			cfg.LogLevel = config.LogLevel(flagLevel)
		}
		if flagLogFile != "" {
			cfg.LogFile = flagLogFile
		}
		if flagDelim != "" {
			cfg.Delimiter = flagDelim
		}
		cfg.Explain = flagExplain
		if err := cfg.Validate(); err != nil {
			return err
		}

		var err error
		logger, err = logging.New(&cfg)
		return err
	},
	PersistentPostRun: func(*cobra.Command, []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var reconcileCmd = &cobra.Command{
	Use:   "reconcile [file]",
	Short: "Reconcile pasted text from a file or stdin",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runReconcile,
}

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Open the interactive paste surface",
	Args:  cobra.NoArgs,
	RunE: func(*cobra.Command, []string) error {
		model := ui.New(&engine.Engine{Delimiter: cfg.Delimiter})
		_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
		return err
	},
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the detection cascade against built-in shape fixtures",
	Args:  cobra.NoArgs,
	RunE: func(*cobra.Command, []string) error {
		return check.Run(logger)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(*cobra.Command, []string) {
		fmt.Printf("zoneremap v%s (%s)\n", version, commit)
	},
}

func runReconcile(cmd *cobra.Command, args []string) error {
	raw, err := readInput(args)
	if err != nil {
		return err
	}

	eng := &engine.Engine{
		Delimiter: cfg.Delimiter,
		Sink:      logging.WarnSink{Log: logger},
	}
	res, err := eng.Run(raw)
	if err != nil {
		logger.Error("reconciliation failed", zap.Error(err))
		return err
	}
	if cfg.Explain {
		logger.Info("input recognized",
			zap.String("strategy", res.Strategy), zap.Int("rows", len(res.Rows)))
	}

	out := eng.Format(res.Rows) + "\n"
	if outputPath != "" {
		return os.WriteFile(outputPath, []byte(out), 0o644)
	}
	_, err = io.WriteString(cmd.OutOrStdout(), out)
	return err
}

// readInput reads the whole paste from the positional file argument, or
// stdin when none is given.
func readInput(args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

func main() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "path to YAML config file")
	pf.StringVar(&flagColor, "color", "", "color mode: auto|always|never")
	pf.StringVar(&flagLevel, "level", "", "log level: debug|info|warn|error")
	pf.StringVar(&flagLogFile, "log-file", "", "mirror logs to this file")
	pf.StringVar(&flagDelim, "delimiter", "", "output column delimiter (default tab)")

	reconcileCmd.Flags().StringVarP(&outputPath, "output", "o", "", "write result to file instead of stdout")
	reconcileCmd.Flags().BoolVar(&flagExplain, "explain", false, "log the winning detection strategy")

	rootCmd.AddCommand(reconcileCmd, uiCmd, checkCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "zoneremap: %v\n", err)
		os.Exit(1)
	}
}
