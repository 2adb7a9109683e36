package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"top-movies/pkg/models"
)

func floatPtr(v float64) *float64 { return &v }

func TestAssignOrdersByRatingDescending(t *testing.T) {
	movies := []models.Movie{
		{ID: 1, Title: "Low", Rating: floatPtr(3.0)},
		{ID: 2, Title: "Unrated"},
		{ID: 3, Title: "High", Rating: floatPtr(9.5)},
		{ID: 4, Title: "Mid", Rating: floatPtr(7.0)},
	}

	Assign(movies)

	assert.Equal(t, "High", movies[0].Title)
	assert.Equal(t, "Mid", movies[1].Title)
	assert.Equal(t, "Low", movies[2].Title)
	assert.Equal(t, "Unrated", movies[3].Title)
	for i, m := range movies {
		assert.Equal(t, i+1, *m.Ranking)
	}
}

func TestAssignUnratedAfterAllRated(t *testing.T) {
	movies := []models.Movie{
		{ID: 1, Title: "Unrated A"},
		{ID: 2, Title: "Rated", Rating: floatPtr(0.5)},
		{ID: 3, Title: "Unrated B"},
	}

	Assign(movies)

	assert.Equal(t, "Rated", movies[0].Title)
	assert.Equal(t, 1, *movies[0].Ranking)
	assert.Equal(t, "Unrated A", movies[1].Title)
	assert.Equal(t, "Unrated B", movies[2].Title)
}

func TestAssignTieBreaksByID(t *testing.T) {
	movies := []models.Movie{
		{ID: 7, Title: "Later", Rating: floatPtr(9.0)},
		{ID: 2, Title: "Earlier", Rating: floatPtr(9.0)},
	}

	Assign(movies)

	assert.Equal(t, "Earlier", movies[0].Title)
	assert.Equal(t, 1, *movies[0].Ranking)
	assert.Equal(t, "Later", movies[1].Title)
	assert.Equal(t, 2, *movies[1].Ranking)
}

func TestAssignEmpty(t *testing.T) {
	var movies []models.Movie
	Assign(movies)
	assert.Empty(t, movies)
}

func TestAssignRewritesStaleRankings(t *testing.T) {
	stale := 42
	movies := []models.Movie{
		{ID: 1, Title: "Only", Ranking: &stale},
	}

	Assign(movies)

	assert.Equal(t, 1, *movies[0].Ranking)
}
