package main

import (
	"embed"
	"html/template"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"top-movies/pkg/config"
	"top-movies/pkg/database"
	"top-movies/pkg/logger"
	"top-movies/pkg/models"
	"top-movies/pkg/rank"
	"top-movies/pkg/tmdb"
)

var (
	db       *gorm.DB
	provider *tmdb.Client
)

//go:embed templates/*.html
var templateFS embed.FS

type findForm struct {
	Title string `form:"title" binding:"required"`
}

type rateForm struct {
	Rating *float64 `form:"rating" binding:"required,gte=0,lte=10"`
	Review string   `form:"review"`
}

func loadTemplates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}

func main() {
	log := logger.Get()
	log.Println("Starting movies service...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.TMDBAPIKey == "" {
		log.Println("No TMDB API key configured, using the bundled sample catalog")
	}

	db, err = database.Init(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	provider = tmdb.New(cfg.TMDBAPIKey)

	server := gin.Default()
	server.SetHTMLTemplate(loadTemplates())
	server.GET("/", home)
	server.GET("/add", showAddForm)
	server.POST("/add", searchMovies)
	server.GET("/find", findMovie)
	server.GET("/edit", showRateForm)
	server.POST("/edit", rateMovie)
	server.GET("/delete", deleteMovie)
	server.GET("/manage/health", healthCheck)

	log.Printf("Movies service starting on :%s", cfg.Port)
	if err := server.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// home lists the collection ranked by rating. The listing is a side-effecting
// read: ranks are recomputed from current ratings and written back on every
// invocation.
func home(c *gin.Context) {
	var movies []models.Movie
	if err := db.Order("id").Find(&movies).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load movies"})
		return
	}

	rank.Assign(movies)
	for i := range movies {
		if err := db.Model(&movies[i]).Update("ranking", movies[i].Ranking).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save rankings"})
			return
		}
	}

	c.HTML(http.StatusOK, "index.html", gin.H{"movies": movies})
}

func showAddForm(c *gin.Context) {
	c.HTML(http.StatusOK, "add.html", gin.H{})
}

func searchMovies(c *gin.Context) {
	var form findForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "add.html", gin.H{"error": "Movie title is required"})
		return
	}

	candidates, fallback := provider.Search(c.Request.Context(), form.Title)
	c.HTML(http.StatusOK, "select.html", gin.H{
		"options":  candidates,
		"fallback": fallback,
	})
}

// findMovie resolves a selected candidate id to full details and stores it.
// Lookup failures and duplicate titles end in a clean redirect to the list.
func findMovie(c *gin.Context) {
	providerID, err := strconv.Atoi(c.Query("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}

	candidate, err := provider.Details(c.Request.Context(), providerID)
	if err != nil {
		logger.Get().Warnf("Candidate %d could not be resolved: %v", providerID, err)
		c.Redirect(http.StatusFound, "/")
		return
	}

	movie := models.Movie{
		Title:       candidate.Title,
		Year:        candidate.Year(),
		Description: candidate.Overview,
		ImgURL:      tmdb.ImageBaseURL + candidate.PosterPath,
	}
	if err := db.Create(&movie).Error; err != nil {
		logger.Get().Warnf("Failed to store %q: %v", movie.Title, err)
		c.Redirect(http.StatusFound, "/")
		return
	}

	c.Redirect(http.StatusFound, "/edit?id="+strconv.FormatUint(uint64(movie.ID), 10))
}

func showRateForm(c *gin.Context) {
	movie, ok := movieFromQuery(c)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "edit.html", gin.H{"movie": movie})
}

func rateMovie(c *gin.Context) {
	movie, ok := movieFromQuery(c)
	if !ok {
		return
	}

	var form rateForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "edit.html", gin.H{
			"movie": movie,
			"error": "Rating must be a number between 0 and 10",
		})
		return
	}

	movie.Rating = form.Rating
	movie.Review = &form.Review
	if err := db.Save(&movie).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update movie"})
		return
	}

	c.Redirect(http.StatusFound, "/")
}

func deleteMovie(c *gin.Context) {
	movie, ok := movieFromQuery(c)
	if !ok {
		return
	}

	if err := db.Delete(&movie).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete movie"})
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// movieFromQuery loads the movie addressed by the id query parameter,
// writing the error response itself when the id is missing or unknown.
func movieFromQuery(c *gin.Context) (models.Movie, bool) {
	var movie models.Movie

	id, err := strconv.Atoi(c.Query("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusNotFound, gin.H{"error": "movie not found"})
		return movie, false
	}
	if err := db.First(&movie, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "movie not found"})
		return movie, false
	}
	return movie, true
}

func healthCheck(c *gin.Context) {
	sqlDB, err := db.DB()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "DOWN",
			"details": "Database connection failed",
			"error":   err.Error(),
		})
		return
	}
	if err := sqlDB.Ping(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "DOWN",
			"details": "Database ping failed",
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "UP"})
}
