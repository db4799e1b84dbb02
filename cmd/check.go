package cmd

import (
	"fmt"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/cardrename/internal/config"
	"github.com/arcanaland/cardrename/internal/deck"
	"github.com/arcanaland/cardrename/internal/validator"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [path]",
	Short: "Check a folder of renamed card images for completeness",
	Long: `Check verifies that a folder holds the full 52-card deck under canonical names.
Missing suit cards are errors. Missing backs, jokers or the blank card, leftover
_dupN copies and files that still need renaming are reported as warnings.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deckPath := args[0]

		exts := config.ParseExtensions(settings.Extensions...)
		d, err := deck.LoadDeck(deckPath, exts)
		if err != nil {
			return err
		}

		results := validator.NewValidator(d).Validate()
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, "Check Results:")
		fmt.Fprintln(out, "--------------")

		if len(results.Errors) == 0 {
			fmt.Fprintf(out, "%s Deck '%s' is complete (%d cards).\n",
				colorize.GreenString("✅"), deckPath, len(d.Cards))
		} else {
			fmt.Fprintf(out, "%s Deck '%s' has %d errors:\n",
				colorize.RedString("❌"), deckPath, len(results.Errors))
			for i, e := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, e)
			}
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, colorize.YellowString(warn))
			}
		}

		if len(results.Errors) > 0 {
			return fmt.Errorf("check failed")
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(checkCmd)
}
