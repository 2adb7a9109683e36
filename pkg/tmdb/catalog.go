package tmdb

import (
	"strings"

	"top-movies/pkg/models"
)

// fallbackCatalog is the bundled sample dataset served when no API key is
// configured or the live provider is unreachable. IDs match the real TMDB
// ids so a catalog selection still resolves after a credential is added.
var fallbackCatalog = []models.Candidate{
	{
		ID:          27205,
		Title:       "Inception",
		ReleaseDate: "2010-07-15",
		Overview:    "Cobb, a skilled thief who commits corporate espionage by infiltrating the subconscious of his targets, is offered a chance to regain his old life as payment for a task considered to be impossible: \"inception\".",
		PosterPath:  "/oYuLEt3zVCKq57qu2F8dT7NIa6f.jpg",
	},
	{
		ID:          603,
		Title:       "The Matrix",
		ReleaseDate: "1999-03-31",
		Overview:    "Set in the 22nd century, The Matrix tells the story of a computer hacker who joins a group of underground insurgents fighting the vast and powerful computers who now rule the earth.",
		PosterPath:  "/f89U3ADr1oiB1s9GkdPOEpXUk5H.jpg",
	},
	{
		ID:          278,
		Title:       "The Shawshank Redemption",
		ReleaseDate: "1994-09-23",
		Overview:    "Imprisoned in the 1940s for the double murder of his wife and her lover, upstanding banker Andy Dufresne begins a new life at the Shawshank prison, where he puts his accounting skills to work for an amoral warden.",
		PosterPath:  "/q6y0Go1tsGEsmtFryDOJo3dEmqu.jpg",
	},
	{
		ID:          129,
		Title:       "Spirited Away",
		ReleaseDate: "2001-07-20",
		Overview:    "A young girl, Chihiro, becomes trapped in a strange new world of spirits. When her parents undergo a mysterious transformation, she must call upon the courage she never knew she had to free her family.",
		PosterPath:  "/39wmItIWsg5sZMyRUHLkWBcuVCM.jpg",
	},
	{
		ID:          238,
		Title:       "The Godfather",
		ReleaseDate: "1972-03-14",
		Overview:    "Spanning the years 1945 to 1955, a chronicle of the fictional Italian-American Corleone crime family. When organized crime family patriarch, Vito Corleone barely survives an attempt on his life, his youngest son, Michael steps in to take care of the would-be killers.",
		PosterPath:  "/3bhkrj58Vtu7enYsRolD1fZdja1.jpg",
	},
	{
		ID:          496243,
		Title:       "Parasite",
		ReleaseDate: "2019-05-30",
		Overview:    "All unemployed, Ki-taek's family takes peculiar interest in the wealthy and glamorous Parks for their livelihood until they get entangled in an unexpected incident.",
		PosterPath:  "/7IiTTgloJzvGI1TAYymCfbfl3vT.jpg",
	},
}

// searchCatalog filters the catalog case-insensitively by title substring.
// No match returns the whole catalog so the user never hits a dead end.
func searchCatalog(query string) []models.Candidate {
	needle := strings.ToLower(strings.TrimSpace(query))

	var matches []models.Candidate
	for _, candidate := range fallbackCatalog {
		if strings.Contains(strings.ToLower(candidate.Title), needle) {
			matches = append(matches, candidate)
		}
	}
	if len(matches) == 0 {
		matches = make([]models.Candidate, len(fallbackCatalog))
		copy(matches, fallbackCatalog)
	}
	return matches
}
