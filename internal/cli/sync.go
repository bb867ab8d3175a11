package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/justestif/go-movie-mood-recommender/internal/profiles"
	moviesync "github.com/justestif/go-movie-mood-recommender/internal/sync"
	"github.com/justestif/go-movie-mood-recommender/internal/tmdb"
)

var (
	syncPages   int
	syncMax     int
	syncProfile bool
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Import popular and top rated movies from TMDB",
	Long: `Import movies from TMDB's popular and top rated listings into the
database. Requires TMDB credentials (TMDB_API_KEY or TMDB_READ_TOKEN) and
DATABASE_URL. With --profile, newly imported movies are profiled right away.`,
	RunE: runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)

	syncCmd.Flags().IntVar(&syncPages, "pages", moviesync.DefaultPages, "Listing pages to fetch per source")
	syncCmd.Flags().IntVar(&syncMax, "max", 0, "Maximum movies to import (0 = no limit)")
	syncCmd.Flags().BoolVar(&syncProfile, "profile", false, "Profile pending movies after importing")
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	client, err := tmdb.NewClient(cfg.TMDB)
	if err != nil {
		return fmt.Errorf("creating TMDB client: %w", err)
	}

	database, err := openDB(ctx)
	if err != nil {
		return err
	}
	defer database.Close()

	service := moviesync.New(client, database.Movies(), moviesync.WithMaxMovies(syncMax))
	result, err := service.SyncListings(ctx, syncPages)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Discovered %d movies, imported %d, failed %d\n",
		result.Discovered, result.Imported, result.Failed)

	if !syncProfile {
		return nil
	}

	synth, err := newSynthesizer()
	if err != nil {
		return err
	}
	runner := profiles.NewRunner(database.Movies(), profiles.NewService(synth, profiles.WithConcurrency(cfg.Profile.Concurrency)))
	processed, err := runner.ProcessPending(ctx, cfg.Profile.BatchSize)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Profiled %d movies\n", processed)
	return nil
}
