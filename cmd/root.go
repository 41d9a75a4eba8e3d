package cmd

import (
	"context"
	"fmt"
	"os"

	config "github.com/inference-gateway/keychord/config"
	logger "github.com/inference-gateway/keychord/internal/logger"
	cobra "github.com/spf13/cobra"
	zap "go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "keychord",
	Short: "Scoped keybindings and multi-key chords",
	Long: `keychord resolves key presses against prioritized scopes of bindings,
including multi-step chords such as "Ctrl+K Ctrl+S". Use it to check
combo descriptors, inspect and validate a keymap, replay recorded key
sessions or watch the engine react to a live terminal.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "Use 'keychord watch' to try the keymap interactively or --help to see available commands.")
	},
}

func Execute() {
	defer logger.Close()

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		logger.Error("command failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", fmt.Sprintf("config file (default is %s)", config.DefaultConfigPath))
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	verbose, _ := rootCmd.PersistentFlags().GetBool("verbose")

	cfg, err := getConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config from %s: %v\n", getConfigPath(), err)
		os.Exit(1)
	}

	logger.Init(verbose, cfg)
	logger.Debug("config loaded", "path", getConfigPath(), "scopes", len(cfg.Keybindings.Scopes))
}

func getConfigPath() string {
	path, _ := rootCmd.PersistentFlags().GetString("config")
	if path == "" {
		return config.DefaultConfigPath
	}
	return path
}

func getConfig() (*config.Config, error) {
	return config.Load(getConfigPath())
}

// commandContext returns the command's context carrying the process logger
func commandContext(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return logger.ContextWithLogger(ctx, zap.L())
}
