package models

import (
	"time"
)

// Movie is a stored collection entry. Rating, Ranking and Review are NULL
// until the user rates the movie; Ranking is rewritten on every listing.
type Movie struct {
	ID          uint     `gorm:"primaryKey"`
	Title       string   `gorm:"size:250;not null;uniqueIndex"`
	Year        int      `gorm:"not null"`
	Description string   `gorm:"size:500;not null"`
	Rating      *float64 `gorm:"check:rating >= 0 AND rating <= 10"`
	Ranking     *int
	Review      *string `gorm:"size:250"`
	ImgURL      string  `gorm:"size:250;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Candidate is a provider search result, not yet persisted.
type Candidate struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	ReleaseDate string `json:"release_date"`
	Overview    string `json:"overview"`
	PosterPath  string `json:"poster_path"`
}

// Year extracts the 4-digit year prefix of the release date, 0 if absent.
func (c Candidate) Year() int {
	if len(c.ReleaseDate) < 4 {
		return 0
	}
	year := 0
	for _, r := range c.ReleaseDate[:4] {
		if r < '0' || r > '9' {
			return 0
		}
		year = year*10 + int(r-'0')
	}
	return year
}
