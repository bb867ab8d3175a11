package web

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/justestif/go-movie-mood-recommender/internal/catalog"
	"github.com/justestif/go-movie-mood-recommender/internal/collections"
	"github.com/justestif/go-movie-mood-recommender/internal/db"
	"github.com/justestif/go-movie-mood-recommender/internal/emotion"
	"github.com/justestif/go-movie-mood-recommender/internal/intent"
	"github.com/justestif/go-movie-mood-recommender/internal/logging"
	"github.com/justestif/go-movie-mood-recommender/internal/recommend"
)

// Version is reported by the health endpoint.
const Version = "1.0.0"

const (
	defaultRecommendations = 5
	defaultJourneyLength   = 3
	chatRecommendations    = 5
	maxBodyBytes           = 1 << 20
)

// MovieFinder resolves a title to a single movie.
type MovieFinder interface {
	FindMovie(ctx context.Context, title string) (recommend.Movie, error)
}

// CollectionService lists mood collections.
type CollectionService interface {
	Summaries(ctx context.Context) ([]collections.Summary, error)
	Movies(ctx context.Context, collectionID string) ([]db.Movie, error)
}

// Deps are the services the handlers read from. Finder defaults to a title
// search over Catalog; a nil Collections disables the collection routes.
type Deps struct {
	Catalog     catalog.Source
	Finder      MovieFinder
	Collections CollectionService
}

// Handlers contains HTTP handlers for the API.
type Handlers struct {
	catalog     catalog.Source
	finder      MovieFinder
	collections CollectionService
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(deps Deps) *Handlers {
	finder := deps.Finder
	if finder == nil {
		finder = sourceFinder{deps.Catalog}
	}
	return &Handlers{
		catalog:     deps.Catalog,
		finder:      finder,
		collections: deps.Collections,
	}
}

// Health handles GET /.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"message": "Movie Mood Recommender API",
		"version": Version,
	})
}

type moodsResponse struct {
	CurrentMoods    []string               `json:"current_moods"`
	DesiredFeelings []string               `json:"desired_feelings"`
	Emotions        []emotion.CategoryInfo `json:"emotions"`
}

// Moods handles GET /moods.
func (h *Handlers) Moods(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, moodsResponse{
		CurrentMoods:    recommend.Moods(),
		DesiredFeelings: recommend.Feelings(),
		Emotions:        emotion.Categories(),
	})
}

type moodRequest struct {
	CurrentMood      string `json:"current_mood"`
	DesiredFeeling   string `json:"desired_feeling"`
	NRecommendations *int   `json:"n_recommendations" validate:"omitempty,min=0,max=50"`
}

// RecommendMood handles POST /recommend/mood. Unknown or empty moods and
// feelings fall back to the defaults of the ranking engine.
func (h *Handlers) RecommendMood(w http.ResponseWriter, r *http.Request) {
	var req moodRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	movies, ok := h.loadCatalog(w, r)
	if !ok {
		return
	}

	recs, err := recommend.RankByMood(movies, req.CurrentMood, req.DesiredFeeling, intOr(req.NRecommendations, defaultRecommendations))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, nonNil(recs))
}

type emotionsRequest struct {
	TargetEmotions   []string `json:"target_emotions" validate:"dive,emotion"`
	MinIntensity     *float64 `json:"min_intensity" validate:"omitempty,gte=0,lte=10"`
	MaxIntensity     *float64 `json:"max_intensity" validate:"omitempty,gte=0,lte=10"`
	MinComfort       *float64 `json:"min_comfort" validate:"omitempty,gte=0,lte=10"`
	NRecommendations *int     `json:"n_recommendations" validate:"omitempty,min=0,max=50"`
}

func (req emotionsRequest) query() recommend.EmotionQuery {
	targets := make([]emotion.Category, len(req.TargetEmotions))
	for i, t := range req.TargetEmotions {
		targets[i] = emotion.Category(t)
	}
	q := recommend.DefaultEmotionQuery(targets...)
	q.MinIntensity = floatOr(req.MinIntensity, q.MinIntensity)
	q.MaxIntensity = floatOr(req.MaxIntensity, q.MaxIntensity)
	q.MinComfort = floatOr(req.MinComfort, q.MinComfort)
	return q
}

// RecommendEmotions handles POST /recommend/emotions.
func (h *Handlers) RecommendEmotions(w http.ResponseWriter, r *http.Request) {
	var req emotionsRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	q := req.query()
	if q.MinIntensity > q.MaxIntensity {
		writeError(w, http.StatusBadRequest, "validation_error", "min_intensity must not exceed max_intensity")
		return
	}

	movies, ok := h.loadCatalog(w, r)
	if !ok {
		return
	}

	recs, err := recommend.RankByEmotions(movies, q, intOr(req.NRecommendations, defaultRecommendations))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, nonNil(recs))
}

type journeyRequest struct {
	StartMood string `json:"start_mood"`
	EndMood   string `json:"end_mood"`
	NMovies   *int   `json:"n_movies" validate:"omitempty,min=1,max=10"`
}

// RecommendJourney handles POST /recommend/journey.
func (h *Handlers) RecommendJourney(w http.ResponseWriter, r *http.Request) {
	var req journeyRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	movies, ok := h.loadCatalog(w, r)
	if !ok {
		return
	}

	recs, err := recommend.PlanJourney(movies, req.StartMood, req.EndMood, intOr(req.NMovies, defaultJourneyLength))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, nonNil(recs))
}

type movieResponse struct {
	Title            string             `json:"title"`
	Overview         string             `json:"overview"`
	Genres           []string           `json:"genres"`
	PosterURL        string             `json:"poster_url"`
	ReleaseDate      string             `json:"release_date,omitempty"`
	EmotionProfile   emotion.Scores     `json:"emotion_profile"`
	DominantEmotions []emotion.Category `json:"dominant_emotions"`
	IntensityScore   float64            `json:"intensity_score"`
	ComfortScore     float64            `json:"comfort_score"`
	CatharsisScore   float64            `json:"catharsis_score"`
}

func toMovieResponse(m recommend.Movie) movieResponse {
	return movieResponse{
		Title:            m.Title,
		Overview:         m.Overview,
		Genres:           nonNil(m.Genres),
		PosterURL:        m.PosterURL,
		ReleaseDate:      m.ReleaseDate,
		EmotionProfile:   m.Profile.Emotions,
		DominantEmotions: nonNil(m.Profile.Dominant),
		IntensityScore:   m.Profile.Intensity,
		ComfortScore:     m.Profile.Comfort,
		CatharsisScore:   m.Profile.Catharsis,
	}
}

// Movie handles GET /movies/{title}.
func (h *Handlers) Movie(w http.ResponseWriter, r *http.Request) {
	title := strings.TrimSpace(chi.URLParam(r, "title"))
	if title == "" {
		writeError(w, http.StatusBadRequest, "validation_error", "title is required")
		return
	}

	m, err := h.finder.FindMovie(r.Context(), title)
	if errors.Is(err, catalog.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found", "Movie not found")
		return
	}
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Str("title", title).Msg("movie lookup failed")
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to look up movie")
		return
	}
	writeJSON(w, http.StatusOK, toMovieResponse(m))
}

type chatRequest struct {
	Message string `json:"message" validate:"required,max=2000"`
}

type chatResponse struct {
	Response        string                     `json:"response"`
	DetectedMood    string                     `json:"detected_mood,omitempty"`
	DetectedFeeling string                     `json:"detected_feeling,omitempty"`
	Movies          []recommend.Recommendation `json:"movies"`
}

// Chat handles POST /chat. Failures past request validation answer with the
// fallback reply and no movies rather than an error status.
func (h *Handlers) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	in := intent.Detect(req.Message)

	movies, err := h.catalog.Movies(r.Context())
	if err == nil {
		var recs []recommend.Recommendation
		recs, err = recommend.RankByMood(movies, in.CurrentMood, in.DesiredFeeling, chatRecommendations)
		if err == nil {
			writeJSON(w, http.StatusOK, chatResponse{
				Response:        intent.Reply(in.DesiredFeeling),
				DetectedMood:    in.CurrentMood,
				DetectedFeeling: in.DesiredFeeling,
				Movies:          nonNil(recs),
			})
			return
		}
	}

	logging.Ctx(r.Context()).Warn().Err(err).Msg("chat recommendation failed")
	writeJSON(w, http.StatusOK, chatResponse{
		Response: intent.FallbackReply,
		Movies:   []recommend.Recommendation{},
	})
}

// Collections handles GET /collections.
func (h *Handlers) Collections(w http.ResponseWriter, r *http.Request) {
	if h.collections == nil {
		writeError(w, http.StatusServiceUnavailable, "unavailable", "Collections are not enabled")
		return
	}

	summaries, err := h.collections.Summaries(r.Context())
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("listing collections failed")
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to list collections")
		return
	}
	writeJSON(w, http.StatusOK, nonNil(summaries))
}

// CollectionMovies handles GET /collections/{id}/movies.
func (h *Handlers) CollectionMovies(w http.ResponseWriter, r *http.Request) {
	if h.collections == nil {
		writeError(w, http.StatusServiceUnavailable, "unavailable", "Collections are not enabled")
		return
	}

	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", "id must be a UUID")
		return
	}

	stored, err := h.collections.Movies(r.Context(), id)
	if errors.Is(err, db.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found", "Collection not found")
		return
	}
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Str("collection_id", id).Msg("listing collection movies failed")
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to list collection movies")
		return
	}

	out := make([]movieResponse, len(stored))
	for i, m := range stored {
		out[i] = toMovieResponse(catalog.FromDB(m))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) loadCatalog(w http.ResponseWriter, r *http.Request) ([]recommend.Movie, bool) {
	movies, err := h.catalog.Movies(r.Context())
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("loading catalog failed")
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to load movie catalog")
		return nil, false
	}
	return movies, true
}

// sourceFinder searches a catalog source by title.
type sourceFinder struct {
	source catalog.Source
}

func (f sourceFinder) FindMovie(ctx context.Context, title string) (recommend.Movie, error) {
	movies, err := f.source.Movies(ctx)
	if err != nil {
		return recommend.Movie{}, err
	}
	m, ok := catalog.FindByTitle(movies, title)
	if !ok {
		return recommend.Movie{}, catalog.ErrNotFound
	}
	return m, nil
}

type errorResponse struct {
	Error  string       `json:"error"`
	Code   string       `json:"code"`
	Fields []FieldError `json:"fields,omitempty"`
}

// decodeRequest reads and validates a JSON body, writing a 400 on failure.
func decodeRequest(w http.ResponseWriter, r *http.Request, req any) bool {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "Request body must be valid JSON")
		return false
	}

	if err := validateRequest(req); err != nil {
		resp := errorResponse{Error: err.Error(), Code: "validation_error"}
		var verr *ValidationError
		if errors.As(err, &verr) {
			resp.Fields = verr.Fields
		}
		writeJSON(w, http.StatusBadRequest, resp)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Warn().Err(err).Msg("writing response failed")
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: message, Code: code})
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

func floatOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

// nonNil keeps empty lists encoding as [] instead of null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
