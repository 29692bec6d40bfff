package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/souravramos/locallibrary/internal/config"
	"github.com/souravramos/locallibrary/internal/database"
	"github.com/souravramos/locallibrary/internal/database/authors"
	"github.com/souravramos/locallibrary/internal/database/books"
	"github.com/souravramos/locallibrary/internal/database/genres"
	"github.com/souravramos/locallibrary/internal/database/instances"
	"github.com/souravramos/locallibrary/internal/database/languages"
	http_controllers "github.com/souravramos/locallibrary/internal/http"
	"github.com/souravramos/locallibrary/internal/media"
	"github.com/souravramos/locallibrary/internal/session"
)

func Serve(router *gin.Engine, cfg *config.Config) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown: wait for SIGINT/SIGTERM, then give in-flight
	// requests the configured timeout to finish.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting LocalLibrary v%s", version)

	// Initialize database
	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	// Initialize the image store for author photos and book covers
	imageStore, err := media.NewStore(cfg.Media.Dir)
	if err != nil {
		log.Fatalf("Failed to initialize media store: %v", err)
	}
	log.Printf("Media store initialized at %s", imageStore.Dir())

	// Initialize session manager for the visit counter
	sqlDB, err := db.SQLDB()
	if err != nil {
		log.Fatalf("Failed to get SQL DB for sessions: %v", err)
	}
	sessionManager, err := session.NewManager(sqlDB, cfg.Session.Lifetime, cfg.Session.SecureCookies)
	if err != nil {
		log.Fatalf("Failed to initialize session manager: %v", err)
	}

	// Build router configuration with all dependencies
	routerCfg := http_controllers.RouterConfig{
		Database:       db,
		BookStore:      books.NewRepository(db.DB),
		AuthorStore:    authors.NewRepository(db.DB),
		GenreStore:     genres.NewRepository(db.DB),
		LanguageStore:  languages.NewRepository(db.DB),
		InstanceStore:  instances.NewRepository(db.DB),
		ImageStore:     imageStore,
		SessionManager: sessionManager,
		TemplatesPath:  cfg.UI.TemplatesPath,
		StaticPath:     cfg.UI.StaticPath,
		MediaPath:      cfg.Media.Dir,
		BooksPageSize:  cfg.Catalog.BooksPageSize,
		Version:        version,
	}

	router := http_controllers.NewRouter(routerCfg)

	Serve(router, cfg)
}
