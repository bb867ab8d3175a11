package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/justestif/go-movie-mood-recommender/internal/catalog"
	"github.com/justestif/go-movie-mood-recommender/internal/collections"
	"github.com/justestif/go-movie-mood-recommender/internal/web"
)

var (
	serveHost string
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the recommendation API",
	Long: `Serve the JSON recommendation API. Movies are read from the configured
catalog source and cached for catalog.refresh between reloads.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveHost, "host", "", "Listen host (default from config)")
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Listen port (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if serveHost != "" {
		cfg.Server.Host = serveHost
	}
	if servePort != 0 {
		cfg.Server.Port = servePort
	}

	source, database, err := openCatalog(ctx)
	if err != nil {
		return err
	}
	if database != nil {
		defer database.Close()
	}

	snapshot := catalog.NewSnapshot(source, cfg.Catalog.Refresh)
	deps := web.Deps{
		Catalog: snapshot,
		Finder:  snapshot,
	}

	var store collections.Store
	if database != nil {
		store = database.Collections()
		deps.Finder = catalog.NewDBFinder(database.Movies())
	}
	deps.Collections = collections.New(store, snapshot, cfg.Clustering)

	// Fail fast on an unreadable catalog
	movies, err := snapshot.Movies(ctx)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Loaded %d movies from %s catalog\n", len(movies), cfg.Catalog.Source)

	server, err := web.NewServer(web.ServerConfig{
		Addr:            cfg.Server.Addr(),
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		RateLimit:       cfg.Server.RateLimit,
	}, deps)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	return server.Run(ctx)
}
