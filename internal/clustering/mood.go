package clustering

import (
	"cmp"
	"slices"

	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"

	"github.com/justestif/go-movie-mood-recommender/internal/emotion"
	"github.com/justestif/go-movie-mood-recommender/internal/logging"
	"github.com/justestif/go-movie-mood-recommender/internal/recommend"
)

// Config holds mood collection clustering parameters.
type Config struct {
	NumClusters    int `koanf:"num_clusters"`     // Number of clusters to create (default: 8)
	MinClusterSize int `koanf:"min_cluster_size"` // Smaller clusters become outliers
}

// DefaultConfig returns the recommended default configuration.
func DefaultConfig() Config {
	return Config{
		NumClusters:    8,
		MinClusterSize: 3,
	}
}

// Collection is a cluster of emotionally similar movies.
type Collection struct {
	Name        string             // "Pure Joy & Cozy Comfort & Romantic Warmth"
	TopEmotions []emotion.Category // Up to 3 strongest centroid categories
	Movies      []recommend.Movie  // Most popular first
	Centroid    emotion.Scores     // Average category scores
	Intensity   float64            // Average intensity, 0-10
	Comfort     float64            // Average comfort, 0-10
}

// DetectCollections groups movies by profile similarity using k-means.
// Returns collections and outlier movies that don't fit into any of them.
// Movies without emotion scores are treated as outliers.
func DetectCollections(movies []recommend.Movie, cfg Config) ([]Collection, []recommend.Movie) {
	if len(movies) == 0 {
		return nil, nil
	}

	// Apply defaults
	if cfg.NumClusters <= 0 {
		cfg.NumClusters = DefaultConfig().NumClusters
	}

	// Separate movies with and without a profile
	var valid []*recommend.Movie
	var unprofiled []recommend.Movie
	for i := range movies {
		m := &movies[i]
		if hasProfile(m) {
			valid = append(valid, m)
		} else {
			unprofiled = append(unprofiled, *m)
		}
	}

	allOutliers := func() []recommend.Movie {
		var outliers []recommend.Movie
		for _, m := range valid {
			outliers = append(outliers, *m)
		}
		return append(outliers, unprofiled...)
	}

	// If fewer valid movies than clusters, everything is an outlier
	if len(valid) < cfg.NumClusters {
		return nil, allOutliers()
	}

	// Build observations for k-means
	var obs clusters.Observations
	for _, m := range valid {
		obs = append(obs, movieObservation{movie: m, coords: profileVector(m.Profile)})
	}

	km := kmeans.New()
	result, err := km.Partition(obs, cfg.NumClusters)
	if err != nil {
		logging.Warn().Err(err).Int("movies", len(valid)).Msg("k-means clustering failed")
		return nil, allOutliers()
	}

	var collections []Collection
	var outliers []recommend.Movie

	for _, cluster := range result {
		var members []recommend.Movie
		for _, o := range cluster.Observations {
			if mo, ok := o.(movieObservation); ok {
				members = append(members, *mo.movie)
			}
		}

		// Check minimum size
		if len(members) == 0 || len(members) < cfg.MinClusterSize {
			outliers = append(outliers, members...)
			continue
		}

		slices.SortStableFunc(members, func(a, b recommend.Movie) int {
			if c := cmp.Compare(b.Popularity, a.Popularity); c != 0 {
				return c
			}
			return cmp.Compare(a.Title, b.Title)
		})

		centroid, intensity, comfort := splitCentroid(cluster.Center)
		top := topEmotions(centroid, 3)
		collections = append(collections, Collection{
			Name:        collectionName(top),
			TopEmotions: top,
			Movies:      members,
			Centroid:    centroid,
			Intensity:   intensity,
			Comfort:     comfort,
		})
	}

	outliers = append(outliers, unprofiled...)

	// Largest first, then by name for a stable listing
	slices.SortStableFunc(collections, func(a, b Collection) int {
		if c := cmp.Compare(len(b.Movies), len(a.Movies)); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})

	return collections, outliers
}

// splitCentroid maps a centroid vector back to category scores and 0-10 levels.
func splitCentroid(center clusters.Coordinates) (emotion.Scores, float64, float64) {
	cats := emotion.All()
	scores := make(emotion.Scores, len(cats))
	for i, c := range cats {
		if i < len(center) {
			scores[c] = center[i]
		}
	}
	var intensity, comfort float64
	if len(center) == dimensions {
		intensity = center[len(cats)] * 10
		comfort = center[len(cats)+1] * 10
	}
	return scores, intensity, comfort
}

// topEmotions returns the n strongest positive categories, ties in taxonomy order.
func topEmotions(scores emotion.Scores, n int) []emotion.Category {
	cats := emotion.All()
	slices.SortStableFunc(cats, func(a, b emotion.Category) int {
		return cmp.Compare(scores[b], scores[a])
	})

	result := make([]emotion.Category, 0, n)
	for _, c := range cats {
		if len(result) == n {
			break
		}
		if scores[c] > 0 {
			result = append(result, c)
		}
	}
	return result
}
