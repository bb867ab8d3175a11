package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/justestif/go-movie-mood-recommender/internal/emotion"
	"github.com/justestif/go-movie-mood-recommender/internal/recommend"
)

var (
	recommendMood         string
	recommendFeel         string
	recommendEmotions     []string
	recommendMinIntensity float64
	recommendMaxIntensity float64
	recommendMinComfort   float64
	recommendCount        int
	recommendJSON         bool
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend movies for a mood or a set of emotions",
	Long: `Recommend movies from the catalog.

Either give your current mood and the feeling you want (--mood, --feel), or
ask for explicit emotions with optional intensity and comfort bounds
(--emotion pure_joy --emotion cozy_comfort --max-intensity 5).`,
	Example: `  moodreel recommend --mood stressed --feel feel-good
  moodreel recommend --emotion awe_wonder --min-comfort 4 -n 10`,
	RunE: runRecommend,
}

func init() {
	rootCmd.AddCommand(recommendCmd)

	recommendCmd.Flags().StringVarP(&recommendMood, "mood", "m", "", "Current mood, e.g. stressed (see 'moodreel moods')")
	recommendCmd.Flags().StringVarP(&recommendFeel, "feel", "f", "", "Desired feeling, e.g. feel-good")
	recommendCmd.Flags().StringSliceVarP(&recommendEmotions, "emotion", "e", nil, "Target emotion category (repeatable)")
	recommendCmd.Flags().Float64Var(&recommendMinIntensity, "min-intensity", 0, "Minimum intensity (0-10)")
	recommendCmd.Flags().Float64Var(&recommendMaxIntensity, "max-intensity", 10, "Maximum intensity (0-10)")
	recommendCmd.Flags().Float64Var(&recommendMinComfort, "min-comfort", 0, "Minimum comfort (0-10)")
	recommendCmd.Flags().IntVarP(&recommendCount, "count", "n", 5, "Number of recommendations")
	recommendCmd.Flags().BoolVar(&recommendJSON, "json", false, "Print JSON instead of text")

	recommendCmd.MarkFlagsMutuallyExclusive("mood", "emotion")
	recommendCmd.MarkFlagsMutuallyExclusive("feel", "emotion")
}

func runRecommend(cmd *cobra.Command, args []string) error {
	movies, err := loadCatalog(cmd)
	if err != nil {
		return err
	}

	var recs []recommend.Recommendation
	if len(recommendEmotions) > 0 {
		q, err := emotionQuery()
		if err != nil {
			return err
		}
		recs, err = recommend.RankByEmotions(movies, q, recommendCount)
		if err != nil {
			return err
		}
	} else {
		if recommendMood == "" || recommendFeel == "" {
			return errors.New("either --mood and --feel, or --emotion, is required")
		}
		recs, err = recommend.RankByMood(movies, recommendMood, recommendFeel, recommendCount)
		if err != nil {
			return err
		}
	}

	if recommendJSON {
		return writeJSON(cmd.OutOrStdout(), recs)
	}
	printRecommendations(cmd.OutOrStdout(), recs)
	return nil
}

func emotionQuery() (recommend.EmotionQuery, error) {
	targets := make([]emotion.Category, 0, len(recommendEmotions))
	for _, raw := range recommendEmotions {
		c, err := emotion.ParseCategory(raw)
		if err != nil {
			return recommend.EmotionQuery{}, err
		}
		targets = append(targets, c)
	}

	q := recommend.DefaultEmotionQuery(targets...)
	q.MinIntensity = recommendMinIntensity
	q.MaxIntensity = recommendMaxIntensity
	q.MinComfort = recommendMinComfort
	if q.MinIntensity > q.MaxIntensity {
		return q, fmt.Errorf("--min-intensity %.1f exceeds --max-intensity %.1f", q.MinIntensity, q.MaxIntensity)
	}
	return q, nil
}

func loadCatalog(cmd *cobra.Command) ([]recommend.Movie, error) {
	source, database, err := openCatalog(cmd.Context())
	if err != nil {
		return nil, err
	}
	if database != nil {
		defer database.Close()
	}
	return source.Movies(cmd.Context())
}

// printRecommendations writes a numbered, human-readable list.
func printRecommendations(w io.Writer, recs []recommend.Recommendation) {
	if len(recs) == 0 {
		fmt.Fprintln(w, "No matching movies found.")
		return
	}

	for i, r := range recs {
		header := fmt.Sprintf("%d. %s (match %.2f)", i+1, r.Title, r.MatchScore)
		if r.Phase != "" {
			header = fmt.Sprintf("%d. [%s] %s (match %.2f)", i+1, r.Phase, r.Title, r.MatchScore)
		}
		fmt.Fprintln(w, header)

		details := []string{
			fmt.Sprintf("intensity %.1f", r.IntensityScore),
			fmt.Sprintf("comfort %.1f", r.ComfortScore),
		}
		if len(r.Genres) > 0 {
			details = append([]string{strings.Join(r.Genres, ", ")}, details...)
		}
		fmt.Fprintf(w, "   %s\n", strings.Join(details, " | "))
		if r.Explanation != "" {
			fmt.Fprintf(w, "   %s\n", r.Explanation)
		}
	}
}
