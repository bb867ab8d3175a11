package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/justestif/go-movie-mood-recommender/internal/clustering"
	"github.com/justestif/go-movie-mood-recommender/internal/collections"
)

var (
	collectionsPersist  bool
	collectionsClusters int
)

var collectionsCmd = &cobra.Command{
	Use:   "collections",
	Short: "Group the catalog into mood collections",
	Long: `Cluster profiled movies by their emotion profiles and print the mood
collections found. With --persist the collections replace the stored ones in
the database.`,
	RunE: runCollections,
}

func init() {
	rootCmd.AddCommand(collectionsCmd)

	collectionsCmd.Flags().BoolVar(&collectionsPersist, "persist", false, "Store the collections in the database")
	collectionsCmd.Flags().IntVarP(&collectionsClusters, "clusters", "k", 0, "Number of clusters (default from config)")
}

func runCollections(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	clusterCfg := cfg.Clustering
	if collectionsClusters > 0 {
		clusterCfg.NumClusters = collectionsClusters
	}

	source, database, err := openCatalog(ctx)
	if err != nil {
		return err
	}

	var store collections.Store
	if collectionsPersist {
		if database == nil {
			if database, err = openDB(ctx); err != nil {
				return err
			}
		}
		store = database.Collections()
	}
	if database != nil {
		defer database.Close()
	}

	service := collections.New(store, source, clusterCfg)

	var result *collections.DetectResult
	if collectionsPersist {
		result, err = service.DetectAndPersist(ctx)
	} else {
		result, err = service.Detect(ctx)
	}
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), clustering.FormatCollectionSummary(result.Collections, result.Outliers))
	if collectionsPersist {
		fmt.Fprintf(cmd.OutOrStdout(), "\nStored %d collections\n", len(result.Stored))
	}
	return nil
}
