package handlers

import (
	"net/http"

	"github.com/Lucifer06sai/saiflix/models"
)

type searchResponse struct {
	Movies  []models.Movie  `json:"movies"`
	TvShows []models.TvShow `json:"tvShows"`
}

// Search matches movies and shows whose title, description or genre
// contains q, case-insensitively.
func (a *API) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		respondError(w, http.StatusBadRequest, "Search query required")
		return
	}

	respondJSON(w, http.StatusOK, searchResponse{
		Movies:  a.store.SearchMovies(q),
		TvShows: a.store.SearchTvShows(q),
	})
}
