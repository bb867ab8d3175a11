package clustering

import (
	"fmt"
	"strings"

	"github.com/justestif/go-movie-mood-recommender/internal/recommend"
)

const sampleMovieCount = 3

// FormatCollectionSummary returns a human-readable summary of detected
// collections. Shows size, description and the first 3 movies of each.
// Outliers are summarized by count only.
func FormatCollectionSummary(collections []Collection, outliers []recommend.Movie) string {
	var sb strings.Builder

	totalMovies := len(outliers)
	for _, c := range collections {
		totalMovies += len(c.Movies)
	}

	// Header
	if len(collections) == 0 {
		sb.WriteString(fmt.Sprintf("No mood collections found from %d movies", totalMovies))
		if len(outliers) > 0 {
			sb.WriteString(fmt.Sprintf(" (%d outliers skipped)", len(outliers)))
		}
		sb.WriteString("\n")
		return sb.String()
	}

	word := "collection"
	if len(collections) > 1 {
		word = "collections"
	}

	sb.WriteString(fmt.Sprintf("Found %d mood %s from %d movies", len(collections), word, totalMovies))
	if len(outliers) > 0 {
		sb.WriteString(fmt.Sprintf(" (%d outliers skipped)", len(outliers)))
	}
	sb.WriteString("\n")

	for i, c := range collections {
		sb.WriteString("\n")
		sb.WriteString(formatCollection(i+1, c))
	}

	return sb.String()
}

// formatCollection formats a single collection with its sample movies.
func formatCollection(num int, c Collection) string {
	var sb strings.Builder

	movieWord := "movie"
	if len(c.Movies) > 1 {
		movieWord = "movies"
	}

	sb.WriteString(fmt.Sprintf("Collection %d: %s (%d %s)\n", num, c.Name, len(c.Movies), movieWord))
	sb.WriteString(fmt.Sprintf("  %s\n", Describe(c)))

	sampleCount := min(sampleMovieCount, len(c.Movies))
	for i := 0; i < sampleCount; i++ {
		m := c.Movies[i]
		sb.WriteString(fmt.Sprintf("  • %s (intensity %.1f, comfort %.1f)\n",
			m.Title, m.Profile.Intensity, m.Profile.Comfort))
	}

	// Show "and N more" if needed
	if remaining := len(c.Movies) - sampleMovieCount; remaining > 0 {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", remaining))
	}

	return sb.String()
}
