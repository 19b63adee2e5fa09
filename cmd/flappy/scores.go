package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top high scores.

Examples:
  flappy scores
  flappy scores --limit 25
  flappy scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores")
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	bestStyle   = cellStyle.Foreground(lipgloss.Color("11"))
	faintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func runScores(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		n, err := store.ClearScores(ctx, flappy.GameID)
		if err != nil {
			return err
		}
		fmt.Printf("Cleared %d scores.\n", n)
		return nil
	}

	scores, err := store.TopScores(ctx, flappy.GameID, flagLimit)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render("High Scores - Flappy"))
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'flappy play' to set the first high score!")
		return nil
	}

	fmt.Println(scoreTable(scores))

	stats, err := store.GetGameStats(ctx, flappy.GameID)
	if err != nil {
		return err
	}
	fmt.Println(faintStyle.Render(fmt.Sprintf(
		"%d games, best %d, average %.1f, last played %s",
		stats.GamesCount, stats.HighScore, stats.AvgScore, stats.LastPlayed.Format("2006-01-02 15:04"),
	)))
	return nil
}

// scoreTable renders scores best first, highlighting the top entry.
func scoreTable(scores []storage.ScoreEntry) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(faintStyle).
		Headers("Rank", "Player", "Score", "Frames", "Date").
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch row {
			case table.HeaderRow:
				return headerStyle
			case 0:
				return bestStyle
			}
			return cellStyle
		})

	for i, e := range scores {
		player := e.Player
		if player == "" {
			player = "-"
		}
		t.Row(
			strconv.Itoa(i+1),
			player,
			strconv.Itoa(e.Score),
			strconv.Itoa(e.Frames),
			e.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	return t.String()
}
