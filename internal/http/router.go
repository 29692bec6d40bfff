package http

import (
	"html/template"

	"github.com/gin-gonic/gin"

	"github.com/souravramos/locallibrary/internal/database"
	"github.com/souravramos/locallibrary/internal/entities"
	"github.com/souravramos/locallibrary/internal/session"
)

// RouterConfig carries every dependency the router needs. Passing one
// struct keeps NewRouter testable and the parameter count sane.
type RouterConfig struct {
	Database       *database.Database
	BookStore      BookStore
	AuthorStore    AuthorStore
	GenreStore     GenreStore
	LanguageStore  LanguageStore
	InstanceStore  InstanceStore
	ImageStore     ImageStore
	SessionManager *session.Manager
	TemplatesPath  string
	StaticPath     string
	MediaPath      string
	BooksPageSize  int
	Version        string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Session middleware carries the per-session visit counter.
	if cfg.SessionManager != nil {
		router.Use(cfg.SessionManager.LoadSave())
	}

	// Define custom template functions
	funcMap := template.FuncMap{
		"statusLabel": func(s entities.LoanStatus) string {
			return s.Display()
		},
		"authorName": func(a *entities.Author) string {
			if a == nil {
				return ""
			}
			return a.DisplayName()
		},
	}

	// Load HTML templates with custom functions
	tmpl := template.Must(template.New("").Funcs(funcMap).ParseGlob(cfg.TemplatesPath + "/*.html"))
	router.SetHTMLTemplate(tmpl)

	// Serve static assets and uploaded images
	router.Static("/static", cfg.StaticPath)
	if cfg.MediaPath != "" {
		router.Static("/media", cfg.MediaPath)
	}

	// Create controllers with appropriate interfaces
	health := NewHealthController(cfg.Database, cfg.Version)
	home := NewHomeController(cfg.Database, cfg.BookStore, cfg.SessionManager)
	books := NewBooksController(cfg.BookStore, cfg.BooksPageSize)
	authors := NewAuthorsController(cfg.AuthorStore)
	genres := NewGenresController(cfg.GenreStore, cfg.BookStore)
	languages := NewLanguagesController(cfg.LanguageStore, cfg.BookStore)
	instances := NewInstancesController(cfg.InstanceStore)
	uploads := NewMediaController(cfg.ImageStore, cfg.BookStore, cfg.AuthorStore)

	router.GET("/health", health.Status)

	// HTML pages
	router.GET("/", home.Index)
	router.GET("/books", books.ListPage)
	router.GET("/books/:id", books.DetailPage)
	router.GET("/authors", authors.ListPage)
	router.GET("/authors/:id", authors.DetailPage)
	router.GET("/genres", genres.ListPage)
	router.GET("/genres/:id/books", genres.BooksPage)
	router.GET("/languages", languages.ListPage)
	router.GET("/languages/:id/books", languages.BooksPage)

	// JSON API
	api := router.Group("/api")
	{
		api.GET("/stats", home.Stats)

		api.GET("/books", books.List)
		api.GET("/books/search", books.Search)
		api.POST("/books", books.Create)
		api.GET("/books/:id", books.Get)
		api.PUT("/books/:id", books.Update)
		api.DELETE("/books/:id", books.Delete)
		api.POST("/books/:id/image", uploads.UploadBookImage)

		api.GET("/authors", authors.List)
		api.POST("/authors", authors.Create)
		api.GET("/authors/:id", authors.Get)
		api.PUT("/authors/:id", authors.Update)
		api.DELETE("/authors/:id", authors.Delete)
		api.POST("/authors/:id/image", uploads.UploadAuthorImage)

		api.GET("/genres", genres.List)
		api.POST("/genres", genres.Create)
		api.GET("/genres/:id", genres.Get)
		api.GET("/genres/:id/books", genres.Books)
		api.PUT("/genres/:id", genres.Update)
		api.DELETE("/genres/:id", genres.Delete)

		api.GET("/languages", languages.List)
		api.POST("/languages", languages.Create)
		api.GET("/languages/:id", languages.Get)
		api.GET("/languages/:id/books", languages.Books)
		api.PUT("/languages/:id", languages.Update)
		api.DELETE("/languages/:id", languages.Delete)

		api.GET("/instances", instances.List)
		api.POST("/instances", instances.Create)
		api.GET("/instances/:id", instances.Get)
		api.PUT("/instances/:id", instances.Update)
		api.DELETE("/instances/:id", instances.Delete)
	}

	return router
}
