package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/cardrename/internal/config"
	"github.com/arcanaland/cardrename/internal/deck"
	"github.com/arcanaland/cardrename/internal/pack"
)

var packTag string

// packCmd represents the pack command
var packCmd = &cobra.Command{
	Use:   "pack [path] [layout]",
	Short: "Pack a folder of renamed card images into an OCI image layout",
	Long: `Pack stores every canonically named card image of a folder as one layer of an
OCI artifact (type application/vnd.card-deck) inside a local OCI image layout.
The layout can be copied to any registry with standard OCI tooling.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		deckPath, layoutDir := args[0], args[1]

		d, err := deck.LoadDeck(deckPath, config.ParseExtensions(settings.Extensions...))
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		desc, err := pack.SaveLayout(ctx, d, layoutDir, packTag, log)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Packed %d cards from %s into %s:%s (%s)\n",
			len(d.Cards), deckPath, layoutDir, packTag, desc.Digest)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(packCmd)

	packCmd.Flags().StringVarP(&packTag, "tag", "t", "latest", "Tag for the packed manifest")
}
