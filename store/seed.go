package store

import (
	"fmt"

	"github.com/Lucifer06sai/saiflix/config"
	"github.com/Lucifer06sai/saiflix/models"

	"golang.org/x/crypto/bcrypt"
)

// Seed loads the admin account and the sample catalog. Called once at
// process start; calling it again is a no-op for the admin account.
func (s *Store) Seed(cfg *config.Config) error {
	if err := s.seedAdminUser(cfg); err != nil {
		return err
	}
	s.seedCatalog()
	return nil
}

func (s *Store) seedAdminUser(cfg *config.Config) error {
	if _, ok := s.UserByUsername(cfg.AdminUsername); ok {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	_, err = s.AddUser(models.User{
		Username:     cfg.AdminUsername,
		PasswordHash: string(hashedPassword),
		Role:         models.RoleAdmin,
		IsActive:     true,
		Permissions: []string{
			"full_access",
			"manage_users",
			"manage_content",
			"manage_system",
			"view_analytics",
			"delete_content",
			"ban_users",
			"system_settings",
		},
	})
	if err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	return nil
}

func (s *Store) seedCatalog() {
	sampleMovies := []models.Movie{
		{
			Title:       "Extraction 2",
			Description: "After barely surviving his grievous wounds from his mission in Dhaka, Tyler Rake is back, and his team is ready to take on their next mission.",
			Genre:       "Action",
			Year:        2023,
			Rating:      "R",
			Duration:    "2h 2m",
			PosterURL:   "https://image.tmdb.org/t/p/w500/7gKI9hpEMcZUQpNgKrkDzJpbnNS.jpg",
			BannerURL:   "https://image.tmdb.org/t/p/original/3IhGkkalwXguTlceGSl8XUJZOVI.jpg",
			TrailerURL:  "https://www.youtube.com/watch?v=Y274jZs5s7s",
			Category:    "trending",
			IsFeatured:  true,
			IsOriginal:  true,
		},
		{
			Title:       "Speed Force",
			Description: "A high-octane action thriller that pushes the boundaries of speed and survival in a race against time.",
			Genre:       "Action",
			Year:        2023,
			Rating:      "PG-13",
			Duration:    "1h 55m",
			PosterURL:   "https://image.tmdb.org/t/p/w500/8Gxv8gSFCU0XGDykEGv7zR1n2ua.jpg",
			BannerURL:   "https://image.tmdb.org/t/p/original/53BC9F2tpZnsGno2cLhzvGprDYO.jpg",
			Category:    "action",
		},
		{
			Title:       "Mind Games",
			Description: "A psychological thriller that explores the depths of human consciousness and the power of manipulation.",
			Genre:       "Thriller",
			Year:        2023,
			Rating:      "R",
			Duration:    "2h 15m",
			PosterURL:   "https://image.tmdb.org/t/p/w500/qNBAXBIQlnOThrVvA6mA2B5ggV6.jpg",
			BannerURL:   "https://image.tmdb.org/t/p/original/4XM8DUTQb3lhLemJC51Jx4a2EuA.jpg",
			Category:    "netflix-originals",
			IsOriginal:  true,
		},
	}

	sampleShows := []models.TvShow{
		{
			Title:        "Night Detective",
			Description:  "A gripping crime series following a detective who solves cases that occur only under the cover of darkness.",
			Genre:        "Crime",
			Year:         2023,
			Rating:       "TV-MA",
			Seasons:      2,
			ThumbnailURL: "https://image.tmdb.org/t/p/w500/uKvVjHNqB5VmOrdxqAt2F7J78ED.jpg",
			BannerURL:    "https://image.tmdb.org/t/p/original/suopoADq0k8YZr4dQXcU6pToj6s.jpg",
			Category:     "popular",
			IsOriginal:   true,
		},
	}

	for _, m := range sampleMovies {
		s.AddMovie(m)
	}
	for _, sh := range sampleShows {
		s.AddTvShow(sh)
	}
}
