package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/justestif/go-movie-mood-recommender/internal/emotion"
	"github.com/justestif/go-movie-mood-recommender/internal/recommend"
)

var moodsCmd = &cobra.Command{
	Use:   "moods",
	Short: "List known moods, feelings and emotion categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Current moods:    %s\n", strings.Join(recommend.Moods(), ", "))
		fmt.Fprintf(w, "Desired feelings: %s\n", strings.Join(recommend.Feelings(), ", "))
		fmt.Fprintln(w, "\nEmotions:")
		for _, info := range emotion.Categories() {
			fmt.Fprintf(w, "  %s %-26s %s\n", info.Emoji, info.ID, info.Description)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(moodsCmd)
}
