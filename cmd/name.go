package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"palabritas/internal/progress"
)

var nameCmd = &cobra.Command{
	Use:   "name [new name]",
	Short: "Show or change the player name",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := progress.NewStore(resolveDataDir(cmd), zap.NewNop())
		if err != nil {
			return fmt.Errorf("open progress store: %w", err)
		}

		if len(args) == 0 {
			fmt.Println(store.PlayerName())
			return nil
		}

		name := strings.TrimSpace(strings.Join(args, " "))
		if name == "" {
			return fmt.Errorf("name cannot be empty")
		}
		if err := store.SetPlayerName(name); err != nil {
			return fmt.Errorf("save player name: %w", err)
		}
		fmt.Printf("¡Hola, %s!\n", name)
		return nil
	},
}
