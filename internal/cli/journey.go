package cli

import (
	"github.com/spf13/cobra"

	"github.com/justestif/go-movie-mood-recommender/internal/recommend"
)

var (
	journeyFrom  string
	journeyTo    string
	journeyCount int
	journeyJSON  bool
)

var journeyCmd = &cobra.Command{
	Use:   "journey",
	Short: "Plan a sequence of movies from one mood to another",
	Long: `Plan a mood journey: the first movie meets you where you are, the middle
picks bridge toward where you want to be and the last one lands there.`,
	Example: `  moodreel journey --from sad --to feel-good -n 4`,
	RunE:    runJourney,
}

func init() {
	rootCmd.AddCommand(journeyCmd)

	journeyCmd.Flags().StringVar(&journeyFrom, "from", "", "Starting mood")
	journeyCmd.Flags().StringVar(&journeyTo, "to", "", "Feeling to end on")
	journeyCmd.Flags().IntVarP(&journeyCount, "count", "n", 3, "Number of movies in the journey")
	journeyCmd.Flags().BoolVar(&journeyJSON, "json", false, "Print JSON instead of text")

	_ = journeyCmd.MarkFlagRequired("from")
	_ = journeyCmd.MarkFlagRequired("to")
}

func runJourney(cmd *cobra.Command, args []string) error {
	movies, err := loadCatalog(cmd)
	if err != nil {
		return err
	}

	recs, err := recommend.PlanJourney(movies, journeyFrom, journeyTo, journeyCount)
	if err != nil {
		return err
	}

	if journeyJSON {
		return writeJSON(cmd.OutOrStdout(), recs)
	}
	printRecommendations(cmd.OutOrStdout(), recs)
	return nil
}
