package clustering

import (
	"slices"
	"testing"

	"github.com/justestif/go-movie-mood-recommender/internal/emotion"
	"github.com/justestif/go-movie-mood-recommender/internal/recommend"
)

func TestDetectCollections_Empty(t *testing.T) {
	collections, outliers := DetectCollections(nil, DefaultConfig())
	if collections != nil {
		t.Errorf("expected nil collections, got %v", collections)
	}
	if outliers != nil {
		t.Errorf("expected nil outliers, got %v", outliers)
	}
}

func TestDetectCollections_Unprofiled(t *testing.T) {
	movies := []recommend.Movie{
		{ID: "1", Title: "Movie 1"},
		{ID: "2", Title: "Movie 2"},
	}

	collections, outliers := DetectCollections(movies, Config{NumClusters: 1, MinClusterSize: 1})

	if len(collections) != 0 {
		t.Errorf("expected 0 collections, got %d", len(collections))
	}
	if len(outliers) != 2 {
		t.Errorf("expected 2 outliers, got %d", len(outliers))
	}
}

func TestDetectCollections_FewerMoviesThanClusters(t *testing.T) {
	movies := []recommend.Movie{
		makeMovie("Up", 50, 3, 8, emotion.Scores{emotion.PureJoy: 0.5}),
		makeMovie("Coco", 40, 3, 8, emotion.Scores{emotion.PureJoy: 0.5}),
	}

	collections, outliers := DetectCollections(movies, Config{NumClusters: 3, MinClusterSize: 1})
	if len(collections) != 0 || len(outliers) != 2 {
		t.Errorf("got %d collections and %d outliers, want 0 and 2", len(collections), len(outliers))
	}
}

func TestDetectCollections_SingleCluster(t *testing.T) {
	movies := []recommend.Movie{
		makeMovie("Paddington 2", 30, 2, 9, emotion.Scores{emotion.PureJoy: 0.6, emotion.CozyComfort: 0.5, emotion.RomanticWarmth: 0.1}),
		makeMovie("Amelie", 50, 2, 8, emotion.Scores{emotion.PureJoy: 0.5, emotion.CozyComfort: 0.4, emotion.RomanticWarmth: 0.3}),
		{ID: "u", Title: "Unprofiled"},
	}

	collections, outliers := DetectCollections(movies, Config{NumClusters: 1, MinClusterSize: 1})

	if len(collections) != 1 {
		t.Fatalf("expected 1 collection, got %d", len(collections))
	}
	if len(outliers) != 1 || outliers[0].Title != "Unprofiled" {
		t.Errorf("expected the unprofiled movie as outlier, got %v", outliers)
	}

	c := collections[0]
	if c.Name != "Pure Joy & Cozy Comfort & Romantic Warmth" {
		t.Errorf("Name = %q", c.Name)
	}
	if !slices.Equal(c.TopEmotions, []emotion.Category{emotion.PureJoy, emotion.CozyComfort, emotion.RomanticWarmth}) {
		t.Errorf("TopEmotions = %v", c.TopEmotions)
	}
	// Most popular first
	if c.Movies[0].Title != "Amelie" {
		t.Errorf("first movie = %s, want Amelie", c.Movies[0].Title)
	}
	if !approx(c.Intensity, 2) || !approx(c.Comfort, 8.5) {
		t.Errorf("levels = %v, %v, want 2, 8.5", c.Intensity, c.Comfort)
	}
	if !approx(c.Centroid[emotion.PureJoy], 0.55) {
		t.Errorf("centroid pure_joy = %v, want 0.55", c.Centroid[emotion.PureJoy])
	}
}

func TestDetectCollections_GroupsByProfile(t *testing.T) {
	joy := emotion.Scores{emotion.PureJoy: 0.9, emotion.CozyComfort: 0.8}
	fear := emotion.Scores{emotion.ControlledFear: 0.9, emotion.ThrillingTension: 0.8}

	movies := []recommend.Movie{
		makeMovie("Paddington", 10, 1, 9, joy),
		makeMovie("Up", 20, 1, 9, joy),
		makeMovie("Coco", 30, 1, 9, joy),
		makeMovie("The Ring", 10, 9, 1, fear),
		makeMovie("Hereditary", 20, 9, 1, fear),
		makeMovie("It", 30, 9, 1, fear),
		makeMovie("Alien", 40, 9, 1, fear),
	}

	collections, outliers := DetectCollections(movies, Config{NumClusters: 2, MinClusterSize: 3})

	if len(collections) != 2 {
		t.Fatalf("expected 2 collections, got %d", len(collections))
	}
	if len(outliers) != 0 {
		t.Errorf("expected 0 outliers, got %d", len(outliers))
	}

	// Larger collection first
	if len(collections[0].Movies) != 4 || collections[0].TopEmotions[0] != emotion.ControlledFear {
		t.Errorf("first collection = %s with %d movies", collections[0].Name, len(collections[0].Movies))
	}
	if collections[0].Name != "Controlled Fear & Thrilling Tension" {
		t.Errorf("fear collection name = %q", collections[0].Name)
	}
	if collections[1].Name != "Pure Joy & Cozy Comfort" {
		t.Errorf("joy collection name = %q", collections[1].Name)
	}
	if collections[0].Movies[0].Title != "Alien" {
		t.Errorf("fear collection should start with the most popular movie, got %s", collections[0].Movies[0].Title)
	}
}

func TestDetectCollections_MinClusterSize(t *testing.T) {
	joy := emotion.Scores{emotion.PureJoy: 0.9}
	fear := emotion.Scores{emotion.ControlledFear: 0.9}

	movies := []recommend.Movie{
		makeMovie("A", 1, 1, 9, joy),
		makeMovie("B", 2, 1, 9, joy),
		makeMovie("C", 3, 1, 9, joy),
		makeMovie("Lonely Horror", 4, 9, 1, fear),
	}

	collections, outliers := DetectCollections(movies, Config{NumClusters: 2, MinClusterSize: 2})

	if len(collections) != 1 {
		t.Fatalf("expected 1 collection, got %d", len(collections))
	}
	if len(outliers) != 1 || outliers[0].Title != "Lonely Horror" {
		t.Errorf("expected Lonely Horror as outlier, got %v", outliers)
	}
}

func TestTopEmotions(t *testing.T) {
	tests := []struct {
		name   string
		scores emotion.Scores
		want   []emotion.Category
	}{
		{name: "empty", scores: emotion.Scores{}, want: []emotion.Category{}},
		{
			name:   "ties keep taxonomy order",
			scores: emotion.Scores{emotion.AweWonder: 0.5, emotion.CatharticSadness: 0.5, emotion.PureJoy: 0.2},
			want:   []emotion.Category{emotion.CatharticSadness, emotion.AweWonder, emotion.PureJoy},
		},
		{
			name: "limited to n",
			scores: emotion.Scores{
				emotion.PureJoy: 0.9, emotion.CozyComfort: 0.8, emotion.AweWonder: 0.7, emotion.MindBlown: 0.6,
			},
			want: []emotion.Category{emotion.PureJoy, emotion.CozyComfort, emotion.AweWonder},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := topEmotions(tt.scores, 3); !slices.Equal(got, tt.want) {
				t.Errorf("topEmotions() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCollectionNameAndDescribe(t *testing.T) {
	if got := collectionName(nil); got != "Mixed Feelings" {
		t.Errorf("collectionName(nil) = %q", got)
	}
	if got := collectionName([]emotion.Category{emotion.AweWonder}); got != "Awe & Wonder" {
		t.Errorf("collectionName(awe) = %q", got)
	}

	tests := []struct {
		intensity, comfort float64
		want               string
	}{
		{8, 8, "Rousing"},
		{8, 2, "Gripping"},
		{2, 8, "Gentle"},
		{2, 2, "Quiet"},
		{5, 5, "Quiet"},
	}
	for _, tt := range tests {
		got := Describe(Collection{Intensity: tt.intensity, Comfort: tt.comfort})
		if len(got) < len(tt.want) || got[:len(tt.want)] != tt.want {
			t.Errorf("Describe(%v, %v) = %q, want prefix %q", tt.intensity, tt.comfort, got, tt.want)
		}
	}
}

func approx(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
