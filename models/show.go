package models

type TvShow struct {
	ID           int    `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Genre        string `json:"genre"`
	Year         int    `json:"year"`
	Rating       string `json:"rating"`
	Seasons      int    `json:"seasons"`
	ThumbnailURL string `json:"thumbnailUrl"`
	BannerURL    string `json:"bannerUrl,omitempty"`
	TrailerURL   string `json:"trailerUrl,omitempty"`
	Category     string `json:"category"`
	IsOriginal   bool   `json:"isOriginal"`
}
