package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func (a *API) ListTvShows(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, a.store.AllTvShows())
}

func (a *API) TvShowsByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	respondJSON(w, http.StatusOK, a.store.TvShowsByCategory(category))
}

func (a *API) TvShowByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid TV show ID")
		return
	}

	show, ok := a.store.TvShowByID(id)
	if !ok {
		respondError(w, http.StatusNotFound, "TV show not found")
		return
	}
	respondJSON(w, http.StatusOK, show)
}
