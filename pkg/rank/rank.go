package rank

import (
	"sort"

	"top-movies/pkg/models"
)

// Assign sorts movies by rating descending, unrated entries after all rated
// ones, ties broken by ascending id (insertion order), and sets Ranking to
// the 1-based position of each movie. The slice is sorted in place; the
// caller is responsible for persisting the rewritten rankings.
func Assign(movies []models.Movie) {
	sort.SliceStable(movies, func(i, j int) bool {
		ri, rj := movies[i].Rating, movies[j].Rating
		switch {
		case ri != nil && rj != nil:
			if *ri != *rj {
				return *ri > *rj
			}
		case ri != nil:
			return true
		case rj != nil:
			return false
		}
		return movies[i].ID < movies[j].ID
	})

	for i := range movies {
		pos := i + 1
		movies[i].Ranking = &pos
	}
}
