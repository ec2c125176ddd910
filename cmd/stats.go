package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"palabritas/internal/game"
	"palabritas/internal/progress"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print progress and statistics without starting the game",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := progress.NewStore(resolveDataDir(cmd), zap.NewNop())
		if err != nil {
			return fmt.Errorf("open progress store: %w", err)
		}

		p := store.Load()
		st := store.LoadStats()

		fmt.Printf("Jugador: %s\n", store.PlayerName())
		fmt.Printf("Puntos: %d (nivel %d)\n", p.Score, p.Level)
		fmt.Printf("Partidas: %d · Palabras aprendidas: %d\n", p.GamesPlayed, p.WordsLearned)

		if st.TotalGames > 0 {
			fmt.Printf("Aciertos: %d de %d (%s)\n",
				st.TotalCorrect, st.TotalQuestions, progress.FormatAccuracy(st.Accuracy()))
			for mode, bucket := range st.Games {
				fmt.Printf("  %-12s %d partidas, %d/%d aciertos\n",
					game.Mode(mode).DisplayName(), bucket.Played, bucket.Correct, bucket.Questions)
			}
		}

		if achievements := store.Achievements(); len(achievements) > 0 {
			fmt.Println("Logros:")
			for _, a := range achievements {
				fmt.Printf("  ★ %s\n", a)
			}
		}
		return nil
	},
}
