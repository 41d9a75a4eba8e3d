package cmd

import (
	"fmt"
	"strings"

	logger "github.com/inference-gateway/keychord/internal/logger"
	services "github.com/inference-gateway/keychord/internal/services"
	icons "github.com/inference-gateway/keychord/internal/ui/styles/icons"
	cobra "github.com/spf13/cobra"
)

var replayCmd = &cobra.Command{
	Use:   "replay <script>",
	Short: "Replay a scripted key session against the keymap",
	Long: `Play a YAML script of key presses, waits and scope changes against an
engine built from the configuration, using a simulated clock, and print what
each press did.

Example script:
  steps:
    - press: ctrl+k
    - wait_ms: 200
    - press: ctrl+s
    - press: g
      target: {tag: textarea}`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().Int("timeout-ms", 0, "override keybindings.sequence_timeout_ms")
	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	cfg, err := getConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if timeout, _ := cmd.Flags().GetInt("timeout-ms"); timeout > 0 {
		cfg.Keybindings.SequenceTimeoutMs = timeout
	}

	script, err := services.LoadReplayScript(args[0])
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	svc, err := services.NewReplayService(ctx, cfg.Keybindings)
	if err != nil {
		return fmt.Errorf("invalid keybindings: %w", err)
	}

	records, err := svc.Run(ctx, script)
	printReplay(cmd, records)
	logger.Info("replay finished", "script", args[0], "presses", len(records))
	return err
}

func printReplay(cmd *cobra.Command, records []services.ReplayRecord) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%-5s %-16s %-8s %-9s %-8s %s\n", "STEP", "COMBO", "HANDLED", "CONSUMED", "PENDING", "ACTIONS")
	for _, r := range records {
		actions := "-"
		if len(r.Actions) > 0 {
			actions = strings.Join(r.Actions, ", ")
		}
		pending := ""
		if r.Pending {
			pending = icons.StyledPending()
		}
		fmt.Fprintf(out, "%-5d %-16s %-8s %-9s %-8s %s\n",
			r.Step, r.Combo, yesNo(r.Handled), yesNo(r.Consumed), pending, actions)
	}
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
