package http

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/souravramos/locallibrary/internal/database"
	"github.com/souravramos/locallibrary/internal/database/authors"
	"github.com/souravramos/locallibrary/internal/database/books"
	"github.com/souravramos/locallibrary/internal/database/genres"
	"github.com/souravramos/locallibrary/internal/database/instances"
	"github.com/souravramos/locallibrary/internal/database/languages"
	"github.com/souravramos/locallibrary/internal/media"
	"github.com/souravramos/locallibrary/internal/session"
)

// testApp wires a real router against a temp database, the way the server
// entrypoint does.
type testApp struct {
	router *gin.Engine
	db     *database.Database
}

func setupTestApp(t *testing.T) *testApp {
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	db, err := database.NewDatabase(filepath.Join(dir, "test_catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Close()
	})

	sqlDB, err := db.SQLDB()
	require.NoError(t, err)
	sessions, err := session.NewManager(sqlDB, time.Hour, false)
	require.NoError(t, err)

	images, err := media.NewStore(filepath.Join(dir, "media"))
	require.NoError(t, err)

	router := NewRouter(RouterConfig{
		Database:       db,
		BookStore:      books.NewRepository(db.DB),
		AuthorStore:    authors.NewRepository(db.DB),
		GenreStore:     genres.NewRepository(db.DB),
		LanguageStore:  languages.NewRepository(db.DB),
		InstanceStore:  instances.NewRepository(db.DB),
		ImageStore:     images,
		SessionManager: sessions,
		TemplatesPath:  "../../templates",
		StaticPath:     "../../static",
		MediaPath:      images.Dir(),
		BooksPageSize:  5,
		Version:        "test",
	})

	return &testApp{router: router, db: db}
}

// get performs a GET request, carrying over any session cookies.
func (app *testApp) get(t *testing.T, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	app := setupTestApp(t)

	w := app.get(t, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestHomePage_VisitCounter(t *testing.T) {
	app := setupTestApp(t)

	var cookies []*http.Cookie
	for i := 0; i < 3; i++ {
		w := app.get(t, "/", cookies)
		require.Equal(t, http.StatusOK, w.Code)

		// The counter shows the visits recorded before this request.
		expected := fmt.Sprintf("visited this page %d time", i)
		assert.Contains(t, w.Body.String(), expected, "visit %d", i+1)

		if got := w.Result().Cookies(); len(got) > 0 {
			cookies = got
		}
	}
}

func TestHomePage_FreshSessionStartsAtZero(t *testing.T) {
	app := setupTestApp(t)

	// Two requests without a cookie are two separate sessions.
	first := app.get(t, "/", nil)
	second := app.get(t, "/", nil)

	assert.Contains(t, first.Body.String(), "visited this page 0 times")
	assert.Contains(t, second.Body.String(), "visited this page 0 times")
}

func TestHomePage_Search(t *testing.T) {
	app := setupTestApp(t)
	seedBook(t, app, "Learn Python Today", "python install 2019")

	w := app.get(t, "/?q=python", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Learn Python Today")
}

func TestHomePage_NoQueryShowsNoResults(t *testing.T) {
	app := setupTestApp(t)
	seedBook(t, app, "Learn Python Today", "python install 2019")

	w := app.get(t, "/", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "Learn Python Today")
}

func TestBookListPage(t *testing.T) {
	app := setupTestApp(t)
	for i := 0; i < 7; i++ {
		seedBook(t, app, fmt.Sprintf("Book %d", i), "s")
	}

	w := app.get(t, "/books", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Book 0")
	assert.Contains(t, w.Body.String(), "Book 4")
	assert.NotContains(t, w.Body.String(), "Book 5", "second page content must not leak onto the first")

	w = app.get(t, "/books?page=2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Book 5")
	assert.Contains(t, w.Body.String(), "Book 6")
}

func TestGenreBooksPage_NotFound(t *testing.T) {
	app := setupTestApp(t)

	w := app.get(t, "/genres/999/books", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Genre not found")
}

func TestLanguageBooksPage_NotFound(t *testing.T) {
	app := setupTestApp(t)

	w := app.get(t, "/languages/999/books", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Language not found")
}
