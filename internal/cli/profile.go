package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/justestif/go-movie-mood-recommender/internal/catalog"
	"github.com/justestif/go-movie-mood-recommender/internal/logging"
	"github.com/justestif/go-movie-mood-recommender/internal/profiles"
	"github.com/justestif/go-movie-mood-recommender/internal/recommend"
)

var (
	profileIn    string
	profileOut   string
	profileDB    bool
	profileForce bool
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Synthesize emotion profiles for a catalog",
	Long: `Synthesize emotion profiles from each movie's overview and genres.

By default reads a JSON catalog file, profiles the movies that have no profile
yet and writes the result back. With --db, profiles every stored movie that is
still pending instead.`,
	RunE: runProfile,
}

func init() {
	rootCmd.AddCommand(profileCmd)

	profileCmd.Flags().StringVarP(&profileIn, "in", "i", "", "Catalog file to read (default: catalog.path)")
	profileCmd.Flags().StringVarP(&profileOut, "out", "o", "", "Catalog file to write (default: same as --in)")
	profileCmd.Flags().BoolVar(&profileDB, "db", false, "Profile pending movies in the database")
	profileCmd.Flags().BoolVar(&profileForce, "force", false, "Re-profile movies that already have a profile (file mode)")
}

func runProfile(cmd *cobra.Command, args []string) error {
	synth, err := newSynthesizer()
	if err != nil {
		return err
	}
	service := profiles.NewService(synth, profiles.WithConcurrency(cfg.Profile.Concurrency))

	if profileDB {
		return profileDatabase(cmd, service)
	}
	return profileFile(cmd, service)
}

func profileDatabase(cmd *cobra.Command, service *profiles.Service) error {
	ctx := cmd.Context()

	database, err := openDB(ctx)
	if err != nil {
		return err
	}
	defer database.Close()

	runner := profiles.NewRunner(database.Movies(), service)
	processed, err := runner.ProcessPending(ctx, cfg.Profile.BatchSize)
	if err != nil {
		return err
	}

	total, profiled, err := database.Movies().Count(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Profiled %d movies (%d of %d stored movies have profiles)\n", processed, profiled, total)
	return nil
}

func profileFile(cmd *cobra.Command, service *profiles.Service) error {
	in := profileIn
	if in == "" {
		in = cfg.Catalog.Path
	}
	out := profileOut
	if out == "" {
		out = in
	}

	movies, err := catalog.LoadFile(in)
	if err != nil {
		return err
	}

	// Only movies without a profile, unless forced
	var inputs []profiles.Input
	for i, m := range movies {
		if !profileForce && hasProfile(m) {
			continue
		}
		inputs = append(inputs, profiles.Input{Key: strconv.Itoa(i), Text: m.Overview, Genres: m.Genres})
	}

	results, err := service.ProfileMovies(cmd.Context(), inputs)
	if err != nil {
		return fmt.Errorf("profiling movies: %w", err)
	}

	profiled := 0
	for _, res := range results {
		if res.Error != nil {
			logging.Warn().Err(res.Error).Str("key", res.Key).Msg("movie not profiled")
			continue
		}
		i, err := strconv.Atoi(res.Key)
		if err != nil {
			return fmt.Errorf("result key %q: %w", res.Key, err)
		}
		movies[i].Profile = res.Profile
		profiled++
	}

	if err := catalog.SaveFile(out, movies); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Profiled %d of %d movies, wrote %s\n", profiled, len(movies), out)
	return nil
}

// hasProfile reports whether m already carries a synthesized profile.
// Synthesis always sets a positive confidence, even when no emotion clears
// the materiality threshold.
func hasProfile(m recommend.Movie) bool {
	return m.Profile.Confidence > 0
}
