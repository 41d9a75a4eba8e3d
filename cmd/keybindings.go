package cmd

import (
	"fmt"

	config "github.com/inference-gateway/keychord/config"
	keybinding "github.com/inference-gateway/keychord/internal/keybinding"
	services "github.com/inference-gateway/keychord/internal/services"
	styles "github.com/inference-gateway/keychord/internal/ui/styles"
	icons "github.com/inference-gateway/keychord/internal/ui/styles/icons"
	cobra "github.com/spf13/cobra"
	zap "go.uber.org/zap"
)

var keybindingsCmd = &cobra.Command{
	Use:   "keybindings",
	Short: "Inspect keybinding configuration",
	Long:  `Inspect, validate and reset the scopes and bindings loaded into the engine.`,
}

var keybindingsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List scopes and their bindings",
	Long:  `Display every configured scope in resolution order with the bindings it owns.`,
	RunE:  listKeybindings,
}

var keybindingsValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate keybinding configuration",
	Long:  `Validate scope ids and parse every configured key with the combo grammar.`,
	RunE:  validateKeybindings,
}

var keybindingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset keybindings to defaults",
	Long:  `Replace the configured scopes with the default keymap and save the configuration file.`,
	RunE:  resetKeybindings,
}

func init() {
	keybindingsCmd.AddCommand(keybindingsListCmd)
	keybindingsCmd.AddCommand(keybindingsValidateCmd)
	keybindingsCmd.AddCommand(keybindingsResetCmd)

	rootCmd.AddCommand(keybindingsCmd)
}

// newKeymap builds an engine for cfg with every action recorded
func newKeymap(cmd *cobra.Command, cfg *config.Config) (*services.KeymapService, *services.ActionRecorder, error) {
	recorder := services.NewActionRecorder()
	engine := keybinding.New(
		keybinding.WithSequenceTimeout(cfg.Keybindings.SequenceTimeout()),
		keybinding.WithLogger(zap.L().Named("engine")),
	)

	keymap := services.NewKeymapService(engine, recorder)
	err := keymap.Apply(commandContext(cmd), cfg.Keybindings)
	return keymap, recorder, err
}

func listKeybindings(cmd *cobra.Command, args []string) error {
	cfg, err := getConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	keymap, _, err := newKeymap(cmd, cfg)
	if err != nil {
		return fmt.Errorf("invalid keybindings: %w", err)
	}
	engine := keymap.Engine()

	out := cmd.OutOrStdout()
	s := styles.NewCommonStyles()
	scopes := engine.Scopes()

	if len(scopes) == 0 {
		fmt.Fprintln(out, "No keybindings found.")
		return nil
	}

	fmt.Fprintf(out, "SCOPES (%d, resolution order)\n", len(scopes))
	fmt.Fprintf(out, "══════════════════════\n\n")

	for _, scope := range scopes {
		fmt.Fprintf(out, "%s %s  priority %d\n", icons.Status(scope.Active), s.Scope.Render(scope.ID), scope.Priority)
		fmt.Fprintf(out, "──────────────────\n")

		for _, b := range engine.Bindings(scope.ID) {
			flags := ""
			if b.AllowWhenTyping {
				flags = " (while typing)"
			}
			fmt.Fprintf(out, "  %-20s %s%s\n", b.Keys, b.Action, flags)
			if b.Description != "" {
				fmt.Fprintf(out, "     %s\n", b.Description)
			}
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "sequence timeout: %s\n", cfg.Keybindings.SequenceTimeout())
	fmt.Fprintf(out, "%s = active, %s = inactive\n",
		icons.CheckMarkStyle.Render(icons.CheckMark),
		icons.CrossMarkStyle.Render(icons.CrossMark))

	return nil
}

func validateKeybindings(cmd *cobra.Command, args []string) error {
	cfg, err := getConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	out := cmd.OutOrStdout()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(out, "%s Keybinding configuration is invalid\n", icons.StyledCrossMark())
		return err
	}

	bindings := 0
	for _, scope := range cfg.Keybindings.Scopes {
		for _, entry := range scope.Bindings {
			bindings += len(entry.Keys)
		}
	}

	fmt.Fprintf(out, "%s Keybinding configuration is valid (%d scopes, %d keys)\n",
		icons.StyledCheckMark(), len(cfg.Keybindings.Scopes), bindings)
	return nil
}

func resetKeybindings(cmd *cobra.Command, args []string) error {
	cfg, err := getConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cfg.Keybindings.Scopes = config.DefaultScopes()
	cfg.Keybindings.SequenceTimeoutMs = config.DefaultSequenceTimeoutMs

	path := getConfigPath()
	if err := cfg.Save(path); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s Keybindings reset to defaults\n", icons.StyledCheckMark())
	fmt.Fprintf(out, "Configuration saved to %s\n", path)
	return nil
}
