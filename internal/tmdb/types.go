package tmdb

import "strings"

// MovieSummary is a movie entry in a listing page.
type MovieSummary struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	ReleaseDate string  `json:"release_date"`
	Popularity  float64 `json:"popularity"`
	VoteAverage float64 `json:"vote_average"`
	GenreIDs    []int   `json:"genre_ids"`
	PosterPath  string  `json:"poster_path"`
}

// Page is one page of a listing endpoint.
type Page struct {
	Page         int            `json:"page"`
	Results      []MovieSummary `json:"results"`
	TotalPages   int            `json:"total_pages"`
	TotalResults int            `json:"total_results"`
}

// Genre is a named TMDB genre.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type keyword struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type castMember struct {
	Name      string `json:"name"`
	Character string `json:"character"`
	Order     int    `json:"order"`
}

type crewMember struct {
	Name string `json:"name"`
	Job  string `json:"job"`
}

type video struct {
	Key      string `json:"key"`
	Site     string `json:"site"`
	Type     string `json:"type"`
	Official bool   `json:"official"`
}

type review struct {
	Author  string `json:"author"`
	Content string `json:"content"`
}

// MovieDetails is the movie/{id} response with credits, keywords, videos and
// reviews appended.
type MovieDetails struct {
	ID            int     `json:"id"`
	IMDBID        string  `json:"imdb_id"`
	Title         string  `json:"title"`
	OriginalTitle string  `json:"original_title"`
	Overview      string  `json:"overview"`
	Tagline       string  `json:"tagline"`
	ReleaseDate   string  `json:"release_date"`
	Runtime       int     `json:"runtime"`
	Status        string  `json:"status"`
	Popularity    float64 `json:"popularity"`
	VoteAverage   float64 `json:"vote_average"`
	VoteCount     int     `json:"vote_count"`
	PosterPath    string  `json:"poster_path"`
	Genres        []Genre `json:"genres"`

	Keywords struct {
		Keywords []keyword `json:"keywords"`
	} `json:"keywords"`
	Credits struct {
		Cast []castMember `json:"cast"`
		Crew []crewMember `json:"crew"`
	} `json:"credits"`
	Videos struct {
		Results []video `json:"results"`
	} `json:"videos"`
	Reviews struct {
		Results []review `json:"results"`
	} `json:"reviews"`
}

// GenreNames returns the genre names in TMDB order.
func (d *MovieDetails) GenreNames() []string {
	names := make([]string, 0, len(d.Genres))
	for _, g := range d.Genres {
		names = append(names, g.Name)
	}
	return names
}

// KeywordNames returns the attached keyword names.
func (d *MovieDetails) KeywordNames() []string {
	names := make([]string, 0, len(d.Keywords.Keywords))
	for _, k := range d.Keywords.Keywords {
		names = append(names, k.Name)
	}
	return names
}

// PosterURL returns the w500 poster URL, or "" without a poster.
func (d *MovieDetails) PosterURL() string {
	if d.PosterPath == "" {
		return ""
	}
	return imageBaseURL + "/w500" + d.PosterPath
}

// Director returns the first crew member credited as director.
func (d *MovieDetails) Director() string {
	for _, c := range d.Credits.Crew {
		if c.Job == "Director" {
			return c.Name
		}
	}
	return ""
}

// TopCast returns up to n billed cast names.
func (d *MovieDetails) TopCast(n int) []string {
	cast := d.Credits.Cast
	if n < len(cast) {
		cast = cast[:n]
	}
	names := make([]string, 0, len(cast))
	for _, c := range cast {
		names = append(names, c.Name)
	}
	return names
}

// TrailerURL returns a YouTube trailer link, preferring official uploads.
func (d *MovieDetails) TrailerURL() string {
	var fallback string
	for _, v := range d.Videos.Results {
		if v.Type != "Trailer" || !strings.EqualFold(v.Site, "YouTube") {
			continue
		}
		if v.Official {
			return "https://www.youtube.com/watch?v=" + v.Key
		}
		if fallback == "" {
			fallback = "https://www.youtube.com/watch?v=" + v.Key
		}
	}
	return fallback
}

// apiError is the TMDB error body.
type apiError struct {
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
}
