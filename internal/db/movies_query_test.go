package db

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Heat", want: "Heat"},
		{in: "100%", want: `100\%`},
		{in: "snake_case", want: `snake\_case`},
		{in: `AC\DC`, want: `AC\\DC`},
		{in: `%_\`, want: `\%\_\\`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := escapeLike(tt.in); got != tt.want {
				t.Errorf("escapeLike(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestUpsertBatchLeavesCallerIDs(t *testing.T) {
	existing := uuid.New()
	movies := []Movie{
		{TMDBID: 1, Title: "New"},
		{ID: existing, TMDBID: 2, Title: "Known", Genres: []string{"Drama"}},
	}

	batch := upsertBatch(movies)

	if len(batch.QueuedQueries) != len(movies) {
		t.Fatalf("queued %d queries, want %d", len(batch.QueuedQueries), len(movies))
	}
	for i, q := range batch.QueuedQueries {
		if !strings.Contains(q.SQL, "RETURNING id") {
			t.Errorf("query %d does not return the stored id", i)
		}
	}

	// A candidate id is bound for new rows without touching the caller's slice
	if movies[0].ID != uuid.Nil {
		t.Errorf("movies[0].ID = %s, want it left unset until the row is stored", movies[0].ID)
	}
	if id, ok := batch.QueuedQueries[0].Arguments[0].(uuid.UUID); !ok || id == uuid.Nil {
		t.Errorf("candidate id = %v, want a generated UUID", batch.QueuedQueries[0].Arguments[0])
	}
	if id := batch.QueuedQueries[1].Arguments[0]; id != existing {
		t.Errorf("existing id argument = %v, want %s", id, existing)
	}
	if genres, ok := batch.QueuedQueries[0].Arguments[4].([]string); !ok || genres == nil {
		t.Errorf("nil genres bound as %#v, want empty slice", batch.QueuedQueries[0].Arguments[4])
	}
}
