package models

type Movie struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Genre       string `json:"genre"`
	Year        int    `json:"year"`
	Rating      string `json:"rating"`
	Duration    string `json:"duration"`
	PosterURL   string `json:"posterUrl"`
	BannerURL   string `json:"bannerUrl,omitempty"`
	TrailerURL  string `json:"trailerUrl,omitempty"`
	Category    string `json:"category"`
	IsFeatured  bool   `json:"isFeatured"`
	IsOriginal  bool   `json:"isOriginal"`
}
