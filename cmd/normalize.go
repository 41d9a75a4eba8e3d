package cmd

import (
	"fmt"
	"strings"

	combo "github.com/inference-gateway/keychord/internal/keybinding/combo"
	icons "github.com/inference-gateway/keychord/internal/ui/styles/icons"
	cobra "github.com/spf13/cobra"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize <combo-or-sequence>...",
	Short: "Print the canonical form of combo descriptors",
	Long: `Parse each argument with the combo grammar and print its canonical form.
Quote sequences so the shell passes them as one argument.

Example:
  keychord normalize cmd+shift+p "ctrl+k ctrl+s" esc`,
	Args: cobra.MinimumNArgs(1),
	RunE: runNormalize,
}

func init() {
	rootCmd.AddCommand(normalizeCmd)
}

func runNormalize(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	invalid := 0

	for _, arg := range args {
		steps, err := combo.NormalizeSequence(arg)
		if err != nil {
			invalid++
			fmt.Fprintf(out, "%s %-24q %v\n", icons.StyledCrossMark(), arg, err)
			continue
		}
		fmt.Fprintf(out, "%s %-24q %s\n", icons.StyledCheckMark(), arg, strings.Join(steps, " "))
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d descriptors are invalid", invalid, len(args))
	}
	return nil
}
