// Package store is the single source of truth for catalog and account data.
// Everything lives in process memory: the catalog is seeded once at startup
// and read-only afterwards, accounts only ever mutate their last-login
// timestamp. All lookups are linear scans, which is fine for a corpus this
// small and static.
package store

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Lucifer06sai/saiflix/models"

	"golang.org/x/crypto/bcrypt"
)

type Store struct {
	mu sync.RWMutex

	movies []models.Movie
	shows  []models.TvShow
	users  []models.User

	nextMovieID int
	nextShowID  int
	nextUserID  int
}

func New() *Store {
	return &Store{
		nextMovieID: 1,
		nextShowID:  1,
		nextUserID:  1,
	}
}

// AddMovie assigns the next sequential id and appends the movie in
// insertion order.
func (s *Store) AddMovie(movie models.Movie) models.Movie {
	s.mu.Lock()
	defer s.mu.Unlock()

	movie.ID = s.nextMovieID
	s.nextMovieID++
	s.movies = append(s.movies, movie)
	return movie
}

func (s *Store) AddTvShow(show models.TvShow) models.TvShow {
	s.mu.Lock()
	defer s.mu.Unlock()

	show.ID = s.nextShowID
	s.nextShowID++
	s.shows = append(s.shows, show)
	return show
}

// AddUser assigns the next sequential id. Usernames must be unique.
func (s *Store) AddUser(user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].Username == user.Username {
			return models.User{}, fmt.Errorf("username %q already exists", user.Username)
		}
	}

	user.ID = s.nextUserID
	s.nextUserID++
	s.users = append(s.users, user)
	return user, nil
}

// AllMovies returns every movie in insertion order.
func (s *Store) AllMovies() []models.Movie {
	s.mu.RLock()
	defer s.mu.RUnlock()

	movies := make([]models.Movie, len(s.movies))
	copy(movies, s.movies)
	return movies
}

func (s *Store) MovieByID(id int) (models.Movie, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.movies {
		if s.movies[i].ID == id {
			return s.movies[i], true
		}
	}
	return models.Movie{}, false
}

// MoviesByCategory filters by exact, case-sensitive category match.
func (s *Store) MoviesByCategory(category string) []models.Movie {
	s.mu.RLock()
	defer s.mu.RUnlock()

	movies := []models.Movie{}
	for i := range s.movies {
		if s.movies[i].Category == category {
			movies = append(movies, s.movies[i])
		}
	}
	return movies
}

// FeaturedMovie returns the first movie flagged for hero display.
func (s *Store) FeaturedMovie() (models.Movie, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.movies {
		if s.movies[i].IsFeatured {
			return s.movies[i], true
		}
	}
	return models.Movie{}, false
}

// SearchMovies matches the query as a case-insensitive substring of title,
// description or genre. An empty query matches everything. Results keep
// storage order, there is no ranking.
func (s *Store) SearchMovies(query string) []models.Movie {
	s.mu.RLock()
	defer s.mu.RUnlock()

	movies := []models.Movie{}
	for i := range s.movies {
		m := &s.movies[i]
		if containsFold(query, m.Title, m.Description, m.Genre) {
			movies = append(movies, *m)
		}
	}
	return movies
}

func (s *Store) AllTvShows() []models.TvShow {
	s.mu.RLock()
	defer s.mu.RUnlock()

	shows := make([]models.TvShow, len(s.shows))
	copy(shows, s.shows)
	return shows
}

func (s *Store) TvShowByID(id int) (models.TvShow, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.shows {
		if s.shows[i].ID == id {
			return s.shows[i], true
		}
	}
	return models.TvShow{}, false
}

func (s *Store) TvShowsByCategory(category string) []models.TvShow {
	s.mu.RLock()
	defer s.mu.RUnlock()

	shows := []models.TvShow{}
	for i := range s.shows {
		if s.shows[i].Category == category {
			shows = append(shows, s.shows[i])
		}
	}
	return shows
}

func (s *Store) SearchTvShows(query string) []models.TvShow {
	s.mu.RLock()
	defer s.mu.RUnlock()

	shows := []models.TvShow{}
	for i := range s.shows {
		sh := &s.shows[i]
		if containsFold(query, sh.Title, sh.Description, sh.Genre) {
			shows = append(shows, *sh)
		}
	}
	return shows
}

func (s *Store) UserByID(id int) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.users {
		if s.users[i].ID == id {
			return s.users[i], true
		}
	}
	return models.User{}, false
}

func (s *Store) UserByUsername(username string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.users {
		if s.users[i].Username == username {
			return s.users[i], true
		}
	}
	return models.User{}, false
}

// ValidateLogin returns the account only if the username exists, the
// password matches the stored credential and the account is active. All
// three failure cases look identical to the caller so nothing leaks about
// which check failed.
func (s *Store) ValidateLogin(username, password string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.users {
		u := &s.users[i]
		if u.Username != username {
			continue
		}
		if !u.IsActive {
			return models.User{}, false
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
			return models.User{}, false
		}
		return *u, true
	}
	return models.User{}, false
}

// UpdateUserLastLogin stamps the account with the current time. Unknown ids
// are a no-op.
func (s *Store) UpdateUserLastLogin(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == id {
			now := time.Now()
			s.users[i].LastLogin = &now
			return
		}
	}
}

func (s *Store) AllUsers() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]models.User, len(s.users))
	copy(users, s.users)
	return users
}

func containsFold(query string, fields ...string) bool {
	q := strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
