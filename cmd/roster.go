package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/faceattend/internal/config"
	"github.com/example/faceattend/internal/store"
)

var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "List enrolled identities",
	RunE:  runRoster,
}

func init() {
	rootCmd.AddCommand(rosterCmd)
}

func runRoster(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	roster := store.NewRoster(cfg.Paths.RosterPath)
	if !roster.Exists() {
		return fmt.Errorf("roster %s not found; enroll someone first", roster.Path())
	}
	identities, err := roster.Load()
	if err != nil {
		return err
	}

	fmt.Printf("%-8s %s\n", "Id", "Name")
	for _, ident := range identities {
		fmt.Printf("%-8d %s\n", ident.ID, ident.Name)
	}
	fmt.Printf("\n%d identities enrolled\n", len(identities))
	return nil
}
