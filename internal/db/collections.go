package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CollectionRepository handles mood collection database operations.
type CollectionRepository struct {
	pool *pgxpool.Pool
}

// Replace swaps the stored collections for a freshly detected set in one
// transaction.
func (r *CollectionRepository) Replace(ctx context.Context, collections []NewCollection) ([]MoodCollection, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM mood_collections`); err != nil {
		return nil, fmt.Errorf("clearing collections: %w", err)
	}

	insertQuery := `
		INSERT INTO mood_collections (id, name, top_emotions, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING created_at
	`
	membersQuery := `
		INSERT INTO mood_collection_movies (collection_id, movie_id)
		SELECT $1, unnest($2::uuid[])
		ON CONFLICT DO NOTHING
	`

	stored := make([]MoodCollection, 0, len(collections))
	for _, c := range collections {
		mc := MoodCollection{
			ID:          uuid.New(),
			Name:        c.Name,
			TopEmotions: c.TopEmotions,
			MovieCount:  len(c.MovieIDs),
		}
		if mc.TopEmotions == nil {
			mc.TopEmotions = []string{}
		}
		if err := tx.QueryRow(ctx, insertQuery, mc.ID, mc.Name, mc.TopEmotions).Scan(&mc.CreatedAt); err != nil {
			return nil, fmt.Errorf("inserting collection %q: %w", c.Name, err)
		}

		// Insert collection members
		if len(c.MovieIDs) > 0 {
			if _, err := tx.Exec(ctx, membersQuery, mc.ID, c.MovieIDs); err != nil {
				return nil, fmt.Errorf("inserting collection movies: %w", err)
			}
		}
		stored = append(stored, mc)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("committing transaction: %w", err)
	}
	return stored, nil
}

// List returns all collections, largest first.
func (r *CollectionRepository) List(ctx context.Context) ([]MoodCollection, error) {
	query := `
		SELECT c.id, c.name, c.top_emotions, c.created_at, COUNT(m.movie_id)
		FROM mood_collections c
		LEFT JOIN mood_collection_movies m ON m.collection_id = c.id
		GROUP BY c.id
		ORDER BY COUNT(m.movie_id) DESC, c.name
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying collections: %w", err)
	}
	defer rows.Close()

	var collections []MoodCollection
	for rows.Next() {
		var c MoodCollection
		if err := rows.Scan(&c.ID, &c.Name, &c.TopEmotions, &c.CreatedAt, &c.MovieCount); err != nil {
			return nil, fmt.Errorf("scanning collection: %w", err)
		}
		collections = append(collections, c)
	}
	return collections, rows.Err()
}

// GetMovies returns the movies of a collection, most popular first.
func (r *CollectionRepository) GetMovies(ctx context.Context, collectionID uuid.UUID) ([]Movie, error) {
	query := `
		SELECT m.id, m.tmdb_id, m.title, m.overview, m.genres, m.poster_url, m.release_date,
			m.popularity, m.vote_average, m.profile, m.profiled_at, m.created_at, m.updated_at
		FROM movies m
		JOIN mood_collection_movies cm ON cm.movie_id = m.id
		WHERE cm.collection_id = $1
		ORDER BY m.popularity DESC, m.title
	`
	movies, err := (&MovieRepository{pool: r.pool}).queryMovies(ctx, query, collectionID)
	if err != nil {
		return nil, fmt.Errorf("querying collection movies: %w", err)
	}
	return movies, nil
}
