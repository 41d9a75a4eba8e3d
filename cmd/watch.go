package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	fsnotify "github.com/fsnotify/fsnotify"
	config "github.com/inference-gateway/keychord/config"
	logger "github.com/inference-gateway/keychord/internal/logger"
	watch "github.com/inference-gateway/keychord/internal/ui/watch"
	cobra "github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the keymap react to terminal key presses",
	Long: `Start an interactive view that feeds every key press through the engine
and shows the actions that fired. Press tab to focus a text input and see
how bindings behave while typing. Press ctrl+c to quit.

The keymap is reloaded whenever the configuration file changes.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := getConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx := commandContext(cmd)
	keymap, recorder, err := newKeymap(cmd, cfg)
	if err != nil {
		return fmt.Errorf("invalid keybindings: %w", err)
	}

	program := tea.NewProgram(
		watch.New(ctx, keymap, recorder),
		tea.WithContext(ctx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)

	watchConfigFile(program)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("watch failed: %w", err)
	}
	return nil
}

// watchConfigFile forwards config file changes to the program. Reloads are
// applied inside the program's update loop, never on the watcher goroutine.
func watchConfigFile(program *tea.Program) {
	path := getConfigPath()
	if _, err := os.Stat(path); err != nil {
		return
	}

	v := config.NewViper(path)
	if err := v.ReadInConfig(); err != nil {
		logger.Warn("not watching config", "path", path, "error", err)
		return
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		cfg, err := config.FromViper(v)
		program.Send(watch.ReloadMsg{Config: cfg, Err: err})
	})
	v.WatchConfig()
	logger.Debug("watching config", "path", path)
}
