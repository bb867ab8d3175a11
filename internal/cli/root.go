// Package cli implements the moodreel command tree.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/justestif/go-movie-mood-recommender/internal/config"
	"github.com/justestif/go-movie-mood-recommender/internal/logging"
)

var (
	configPath string
	logLevel   string

	// cfg is loaded before any subcommand runs.
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "moodreel",
	Short: "Recommend movies that match how you feel",
	Long: `moodreel builds emotion profiles for movies from their overviews and
genres, then recommends titles that fit a current mood and the feeling you
want to end up with. It can serve a JSON API, profile catalogs, import
listings from TMDB and group the catalog into mood collections.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if logLevel != "" {
			loaded.Log.Level = logLevel
		}
		cfg = loaded
		logging.Init(cfg.Log.Logging())
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", fmt.Sprintf("Config file (default: $%s or ./moodreel.yaml)", config.PathEnvVar))
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override the configured log level")
}

// Execute runs the command tree with ctx as the base context.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
