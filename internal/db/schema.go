package db

import (
	"context"
	"fmt"
)

const schema = `
CREATE TABLE IF NOT EXISTS movies (
	id              UUID PRIMARY KEY,
	tmdb_id         INTEGER NOT NULL UNIQUE,
	title           TEXT NOT NULL,
	overview        TEXT NOT NULL DEFAULT '',
	genres          TEXT[] NOT NULL DEFAULT '{}',
	poster_url      TEXT NOT NULL DEFAULT '',
	release_date    TEXT NOT NULL DEFAULT '',
	popularity      DOUBLE PRECISION NOT NULL DEFAULT 0,
	vote_average    DOUBLE PRECISION NOT NULL DEFAULT 0,
	profile         JSONB,
	intensity_score DOUBLE PRECISION,
	catharsis_score DOUBLE PRECISION,
	comfort_score   DOUBLE PRECISION,
	profiled_at     TIMESTAMPTZ,
	created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS movies_unprofiled_idx ON movies (popularity DESC) WHERE profile IS NULL;
CREATE INDEX IF NOT EXISTS movies_title_lower_idx ON movies (lower(title));

CREATE TABLE IF NOT EXISTS mood_collections (
	id           UUID PRIMARY KEY,
	name         TEXT NOT NULL,
	top_emotions TEXT[] NOT NULL DEFAULT '{}',
	created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS mood_collection_movies (
	collection_id UUID NOT NULL REFERENCES mood_collections(id) ON DELETE CASCADE,
	movie_id      UUID NOT NULL REFERENCES movies(id) ON DELETE CASCADE,
	PRIMARY KEY (collection_id, movie_id)
);
`

// EnsureSchema creates the tables if they do not exist.
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
