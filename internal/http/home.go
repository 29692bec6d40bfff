package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/souravramos/locallibrary/internal/session"
)

// HomeController renders the catalog dashboard: aggregate counts, the
// per-session visit counter and keyword search results.
type HomeController struct {
	counts   CountsProvider
	books    BookSearcher
	sessions *session.Manager
}

func NewHomeController(counts CountsProvider, books BookSearcher, sessions *session.Manager) *HomeController {
	return &HomeController{
		counts:   counts,
		books:    books,
		sessions: sessions,
	}
}

// Index handles the home page. The visit counter shows the value recorded
// before this request and stores the incremented one.
func (controller *HomeController) Index(c *gin.Context) {
	counts, err := controller.counts.GetCatalogCounts()
	if err != nil {
		c.String(http.StatusInternalServerError, "Error loading catalog counts: %s", err.Error())
		return
	}

	visits := 0
	if controller.sessions != nil {
		visits = controller.sessions.BumpVisits(c.Request.Context())
	}

	query := c.Query("q")
	books, err := controller.books.SearchBooks(query)
	if err != nil {
		c.String(http.StatusInternalServerError, "Error searching books: %s", err.Error())
		return
	}

	c.HTML(http.StatusOK, "index", gin.H{
		"Counts": counts,
		"Visits": visits,
		"Query":  query,
		"Books":  books,
	})
}

// Stats returns the aggregate counts as JSON. The visit counter is a
// session concern and is deliberately not part of this payload.
func (controller *HomeController) Stats(c *gin.Context) {
	counts, err := controller.counts.GetCatalogCounts()
	if err != nil {
		respondInternalError(c, err, "catalog stats")
		return
	}
	c.IndentedJSON(http.StatusOK, counts)
}
