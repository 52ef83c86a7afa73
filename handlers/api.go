// Package handlers maps HTTP routes onto the store and the auth service.
package handlers

import (
	"time"

	"github.com/Lucifer06sai/saiflix/config"
	"github.com/Lucifer06sai/saiflix/middleware"
	"github.com/Lucifer06sai/saiflix/services"
	"github.com/Lucifer06sai/saiflix/store"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
)

type API struct {
	store     *store.Store
	auth      *services.AuthService
	validate  *validator.Validate
	env       string
	startedAt time.Time
}

func NewAPI(st *store.Store, auth *services.AuthService, cfg *config.Config) *API {
	return &API{
		store:     st,
		auth:      auth,
		validate:  validator.New(),
		env:       cfg.Environment,
		startedAt: time.Now(),
	}
}

// Router wires up all routes. Privileged routes sit behind the admin
// middleware; everything else is public.
func (a *API) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.Logging)
	r.Use(chimw.Recoverer)

	r.Get("/ping", a.Ping)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", a.Login)
		r.Post("/auth/logout", a.Logout)

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.RequireAdmin(a.auth))
			r.Get("/users", a.ListUsers)
			r.Get("/system-info", a.SystemInfo)
		})

		r.Get("/movies", a.ListMovies)
		r.Get("/movies/featured", a.FeaturedMovie)
		r.Get("/movies/category/{category}", a.MoviesByCategory)
		r.Get("/movies/{id}", a.MovieByID)

		r.Get("/tv-shows", a.ListTvShows)
		r.Get("/tv-shows/category/{category}", a.TvShowsByCategory)
		r.Get("/tv-shows/{id}", a.TvShowByID)

		r.Get("/search", a.Search)
	})

	return r
}
