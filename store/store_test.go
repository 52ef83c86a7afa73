package store

import (
	"testing"
	"time"

	"github.com/Lucifer06sai/saiflix/config"
	"github.com/Lucifer06sai/saiflix/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		AdminUsername: "sai_admin",
		AdminPassword: "admin123",
	}
}

func setupSeededStore(t *testing.T) *Store {
	st := New()
	if err := st.Seed(testConfig()); err != nil {
		t.Fatalf("Failed to seed store: %v", err)
	}
	return st
}

func addTestUser(t *testing.T, st *Store, username, password string, role models.Role, active bool) models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user, err := st.AddUser(models.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     active,
	})
	require.NoError(t, err)
	return user
}

func TestStore_Seed(t *testing.T) {
	st := setupSeededStore(t)

	admin, ok := st.UserByUsername("sai_admin")
	assert.True(t, ok)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.True(t, admin.IsActive)
	assert.Nil(t, admin.LastLogin)
	assert.Len(t, admin.Permissions, 8)

	assert.Len(t, st.AllMovies(), 3)
	assert.Len(t, st.AllTvShows(), 1)

	// Seeding again must not duplicate the admin account
	err := st.Seed(testConfig())
	assert.NoError(t, err)
	assert.Len(t, st.AllUsers(), 1)
}

func TestStore_AllMovies_InsertionOrder(t *testing.T) {
	st := setupSeededStore(t)

	movies := st.AllMovies()
	require.Len(t, movies, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{movies[0].ID, movies[1].ID, movies[2].ID})
	assert.Equal(t, "Extraction 2", movies[0].Title)
	assert.Equal(t, "Speed Force", movies[1].Title)
	assert.Equal(t, "Mind Games", movies[2].Title)
}

func TestStore_MovieByID(t *testing.T) {
	st := setupSeededStore(t)

	movie, ok := st.MovieByID(1)
	assert.True(t, ok)
	assert.Equal(t, "Extraction 2", movie.Title)

	_, ok = st.MovieByID(999)
	assert.False(t, ok)
}

func TestStore_MoviesByCategory_ExactMatch(t *testing.T) {
	st := setupSeededStore(t)

	trending := st.MoviesByCategory("trending")
	require.Len(t, trending, 1)
	assert.Equal(t, "Extraction 2", trending[0].Title)
	for _, m := range trending {
		assert.Equal(t, "trending", m.Category)
	}

	// Case-sensitive: no fuzzy matching
	assert.Empty(t, st.MoviesByCategory("Trending"))
	assert.Empty(t, st.MoviesByCategory("no-such-category"))
}

func TestStore_FeaturedMovie(t *testing.T) {
	st := setupSeededStore(t)

	movie, ok := st.FeaturedMovie()
	assert.True(t, ok)
	assert.Equal(t, "Extraction 2", movie.Title)
	assert.True(t, movie.IsFeatured)
}

func TestStore_FeaturedMovie_NoneFlagged(t *testing.T) {
	st := New()
	st.AddMovie(models.Movie{Title: "Plain Movie", Category: "action"})

	_, ok := st.FeaturedMovie()
	assert.False(t, ok)
}

func TestStore_FeaturedMovie_FirstByInsertionOrder(t *testing.T) {
	st := New()
	st.AddMovie(models.Movie{Title: "First Featured", IsFeatured: true})
	st.AddMovie(models.Movie{Title: "Second Featured", IsFeatured: true})

	movie, ok := st.FeaturedMovie()
	assert.True(t, ok)
	assert.Equal(t, "First Featured", movie.Title)
}

func TestStore_SearchMovies(t *testing.T) {
	st := setupSeededStore(t)

	tests := []struct {
		name   string
		query  string
		titles []string
	}{
		{"title match case-insensitive", "EXTRACTION", []string{"Extraction 2"}},
		{"genre match", "thriller", []string{"Mind Games"}},
		{"description match", "tyler rake", []string{"Extraction 2"}},
		{"empty query matches everything", "", []string{"Extraction 2", "Speed Force", "Mind Games"}},
		{"no match", "zzzzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := st.SearchMovies(tt.query)
			var titles []string
			for _, m := range results {
				titles = append(titles, m.Title)
			}
			assert.Equal(t, tt.titles, titles)
		})
	}
}

func TestStore_SearchTvShows(t *testing.T) {
	st := setupSeededStore(t)

	results := st.SearchTvShows("detective")
	require.Len(t, results, 1)
	assert.Equal(t, "Night Detective", results[0].Title)

	assert.Len(t, st.SearchTvShows(""), 1)
	assert.Empty(t, st.SearchTvShows("extraction"))
}

func TestStore_TvShowsByCategory(t *testing.T) {
	st := setupSeededStore(t)

	popular := st.TvShowsByCategory("popular")
	require.Len(t, popular, 1)
	assert.Equal(t, "Night Detective", popular[0].Title)

	assert.Empty(t, st.TvShowsByCategory("Popular"))
}

func TestStore_ValidateLogin(t *testing.T) {
	st := New()
	addTestUser(t, st, "alice", "secret", models.RoleUser, true)
	addTestUser(t, st, "bob", "hunter2", models.RoleUser, false)

	user, ok := st.ValidateLogin("alice", "secret")
	assert.True(t, ok)
	assert.Equal(t, "alice", user.Username)

	// Wrong password, unknown user and inactive account all fail the
	// same way.
	_, ok = st.ValidateLogin("alice", "wrong")
	assert.False(t, ok)

	_, ok = st.ValidateLogin("nobody", "secret")
	assert.False(t, ok)

	_, ok = st.ValidateLogin("bob", "hunter2")
	assert.False(t, ok)
}

func TestStore_UpdateUserLastLogin(t *testing.T) {
	st := New()
	user := addTestUser(t, st, "alice", "secret", models.RoleUser, true)

	before := time.Now()
	st.UpdateUserLastLogin(user.ID)

	updated, ok := st.UserByID(user.ID)
	require.True(t, ok)
	require.NotNil(t, updated.LastLogin)
	assert.False(t, updated.LastLogin.Before(before))
}

func TestStore_UpdateUserLastLogin_UnknownID(t *testing.T) {
	st := New()
	user := addTestUser(t, st, "alice", "secret", models.RoleUser, true)

	st.UpdateUserLastLogin(999)

	unchanged, ok := st.UserByID(user.ID)
	require.True(t, ok)
	assert.Nil(t, unchanged.LastLogin)
}

func TestStore_AddUser_DuplicateUsername(t *testing.T) {
	st := New()
	addTestUser(t, st, "alice", "secret", models.RoleUser, true)

	_, err := st.AddUser(models.User{Username: "alice"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestStore_AddUser_SequentialIDs(t *testing.T) {
	st := New()
	alice := addTestUser(t, st, "alice", "secret", models.RoleUser, true)
	bob := addTestUser(t, st, "bob", "hunter2", models.RoleUser, true)

	assert.Equal(t, 1, alice.ID)
	assert.Equal(t, 2, bob.ID)
}
