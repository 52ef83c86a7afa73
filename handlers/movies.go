package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func (a *API) ListMovies(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, a.store.AllMovies())
}

func (a *API) FeaturedMovie(w http.ResponseWriter, r *http.Request) {
	movie, ok := a.store.FeaturedMovie()
	if !ok {
		respondError(w, http.StatusNotFound, "Movie not found")
		return
	}
	respondJSON(w, http.StatusOK, movie)
}

func (a *API) MoviesByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	respondJSON(w, http.StatusOK, a.store.MoviesByCategory(category))
}

func (a *API) MovieByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid movie ID")
		return
	}

	movie, ok := a.store.MovieByID(id)
	if !ok {
		respondError(w, http.StatusNotFound, "Movie not found")
		return
	}
	respondJSON(w, http.StatusOK, movie)
}
