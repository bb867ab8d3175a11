package db

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/justestif/go-movie-mood-recommender/internal/emotion"
)

// MovieRepository handles movie database operations.
type MovieRepository struct {
	pool *pgxpool.Pool
}

const movieColumns = `id, tmdb_id, title, overview, genres, poster_url, release_date,
	popularity, vote_average, profile, profiled_at, created_at, updated_at`

// UpsertBatch inserts or updates movies keyed by TMDB ID. A stored profile is
// cleared when the overview or genres change so it gets recomputed. On return
// each movies[i].ID holds the ID of its stored row.
func (r *MovieRepository) UpsertBatch(ctx context.Context, movies []Movie) error {
	if len(movies) == 0 {
		return nil
	}

	br := r.pool.SendBatch(ctx, upsertBatch(movies))
	defer br.Close()
	for i := range movies {
		if err := br.QueryRow().Scan(&movies[i].ID); err != nil {
			return fmt.Errorf("upserting movie %d: %w", movies[i].TMDBID, err)
		}
	}
	return nil
}

const upsertMovieQuery = `
	INSERT INTO movies (id, tmdb_id, title, overview, genres, poster_url, release_date, popularity, vote_average)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	ON CONFLICT (tmdb_id) DO UPDATE SET
		title = EXCLUDED.title,
		overview = EXCLUDED.overview,
		genres = EXCLUDED.genres,
		poster_url = EXCLUDED.poster_url,
		release_date = EXCLUDED.release_date,
		popularity = EXCLUDED.popularity,
		vote_average = EXCLUDED.vote_average,
		profile = CASE
			WHEN movies.overview IS DISTINCT FROM EXCLUDED.overview
				OR movies.genres IS DISTINCT FROM EXCLUDED.genres THEN NULL
			ELSE movies.profile END,
		profiled_at = CASE
			WHEN movies.overview IS DISTINCT FROM EXCLUDED.overview
				OR movies.genres IS DISTINCT FROM EXCLUDED.genres THEN NULL
			ELSE movies.profiled_at END,
		updated_at = NOW()
	RETURNING id
`

// upsertBatch queues one upsert per movie. Movies without an ID get a fresh
// candidate ID, which the stored row keeps only when it is new.
func upsertBatch(movies []Movie) *pgx.Batch {
	batch := &pgx.Batch{}
	for _, m := range movies {
		id := m.ID
		if id == uuid.Nil {
			id = uuid.New()
		}
		genres := m.Genres
		if genres == nil {
			genres = []string{}
		}
		batch.Queue(upsertMovieQuery, id, m.TMDBID, m.Title, m.Overview, genres, m.PosterURL, m.ReleaseDate, m.Popularity, m.VoteAverage)
	}
	return batch
}

// ListProfiled returns every movie with a profile, most popular first.
func (r *MovieRepository) ListProfiled(ctx context.Context) ([]Movie, error) {
	query := `SELECT ` + movieColumns + `
		FROM movies
		WHERE profile IS NOT NULL
		ORDER BY popularity DESC, title, tmdb_id`
	return r.queryMovies(ctx, query)
}

// ListUnprofiled returns up to limit movies still waiting for a profile.
func (r *MovieRepository) ListUnprofiled(ctx context.Context, limit int) ([]Movie, error) {
	query := `SELECT ` + movieColumns + `
		FROM movies
		WHERE profile IS NULL
		ORDER BY popularity DESC, tmdb_id
		LIMIT $1`
	return r.queryMovies(ctx, query, limit)
}

// UpdateProfiles stores synthesized profiles.
func (r *MovieRepository) UpdateProfiles(ctx context.Context, updates []ProfileUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	query := `
		UPDATE movies SET
			profile = $2::jsonb,
			intensity_score = $3,
			catharsis_score = $4,
			comfort_score = $5,
			profiled_at = $6,
			updated_at = NOW()
		WHERE id = $1
	`

	now := time.Now()
	batch := &pgx.Batch{}
	for _, u := range updates {
		raw, err := encodeProfile(u.Profile)
		if err != nil {
			return fmt.Errorf("encoding profile for %s: %w", u.MovieID, err)
		}
		batch.Queue(query, u.MovieID, raw, u.Profile.Intensity, u.Profile.Catharsis, u.Profile.Comfort, now)
	}

	br := r.pool.SendBatch(ctx, batch)
	defer br.Close()
	for _, u := range updates {
		tag, err := br.Exec()
		if err != nil {
			return fmt.Errorf("updating profile for %s: %w", u.MovieID, err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("updating profile for %s: %w", u.MovieID, ErrNotFound)
		}
	}
	return nil
}

// FindByTitle returns the best title match: exact (case-insensitive) first,
// then substring matches by popularity.
func (r *MovieRepository) FindByTitle(ctx context.Context, title string) (*Movie, error) {
	query := `SELECT ` + movieColumns + `
		FROM movies
		WHERE title ILIKE '%' || $1 || '%' ESCAPE '\'
		ORDER BY lower(title) = lower($2) DESC, popularity DESC
		LIMIT 1`
	movies, err := r.queryMovies(ctx, query, escapeLike(title), title)
	if err != nil {
		return nil, err
	}
	if len(movies) == 0 {
		return nil, ErrNotFound
	}
	return &movies[0], nil
}

// likeEscaper makes LIKE wildcards in user input match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// Count returns the total and profiled movie counts.
func (r *MovieRepository) Count(ctx context.Context) (total, profiled int, err error) {
	query := `SELECT COUNT(*), COUNT(profile) FROM movies`
	if err := r.pool.QueryRow(ctx, query).Scan(&total, &profiled); err != nil {
		return 0, 0, fmt.Errorf("counting movies: %w", err)
	}
	return total, profiled, nil
}

func (r *MovieRepository) queryMovies(ctx context.Context, query string, args ...any) ([]Movie, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying movies: %w", err)
	}
	defer rows.Close()

	var movies []Movie
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}
		movies = append(movies, m)
	}
	return movies, rows.Err()
}

func scanMovie(row pgx.Row) (Movie, error) {
	var m Movie
	var rawProfile []byte
	err := row.Scan(
		&m.ID,
		&m.TMDBID,
		&m.Title,
		&m.Overview,
		&m.Genres,
		&m.PosterURL,
		&m.ReleaseDate,
		&m.Popularity,
		&m.VoteAverage,
		&rawProfile,
		&m.ProfiledAt,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Movie{}, ErrNotFound
	}
	if err != nil {
		return Movie{}, fmt.Errorf("scanning movie: %w", err)
	}
	if m.Profile, err = decodeProfile(rawProfile); err != nil {
		return Movie{}, fmt.Errorf("decoding profile for movie %d: %w", m.TMDBID, err)
	}
	return m, nil
}

func encodeProfile(p emotion.Profile) ([]byte, error) {
	if p.Emotions == nil {
		p.Emotions = emotion.Scores{}
	}
	if p.Dominant == nil {
		p.Dominant = []emotion.Category{}
	}
	return json.Marshal(p)
}

// decodeProfile returns nil for a NULL column.
func decodeProfile(raw []byte) (*emotion.Profile, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var p emotion.Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
