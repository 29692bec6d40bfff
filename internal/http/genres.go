package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/souravramos/locallibrary/internal/database"
)

// GenresController serves the genre pages and the JSON CRUD API, including
// the genre-scoped book listing.
type GenresController struct {
	store GenreStore
	books BookStore
}

func NewGenresController(store GenreStore, books BookStore) *GenresController {
	return &GenresController{store: store, books: books}
}

// --- HTML pages ---

// ListPage renders all genres ordered by name.
func (controller *GenresController) ListPage(c *gin.Context) {
	genres, err := controller.store.GetAllGenres()
	if err != nil {
		c.String(http.StatusInternalServerError, "Error loading genres: %s", err.Error())
		return
	}
	c.HTML(http.StatusOK, "genre_list", gin.H{
		"Genres": genres,
		"Total":  len(genres),
	})
}

// BooksPage renders all books carrying a genre, with the genre itself for
// the page heading. A missing genre is a 404, never an empty page.
func (controller *GenresController) BooksPage(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	genre, books, err := controller.books.GetBooksByGenre(id)
	if err != nil {
		if database.IsNotFound(err) {
			c.String(http.StatusNotFound, "Genre not found")
			return
		}
		c.String(http.StatusInternalServerError, "Error loading genre books: %s", err.Error())
		return
	}

	c.HTML(http.StatusOK, "genre_book_list", gin.H{
		"Genre": genre,
		"Books": books,
	})
}

// --- JSON API ---

type genreRequest struct {
	Name string `json:"name" binding:"required,max=200"`
}

func (controller *GenresController) List(c *gin.Context) {
	genres, err := controller.store.GetAllGenres()
	if err != nil {
		respondInternalError(c, err, "list genres")
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"genres": genres, "count": len(genres)})
}

func (controller *GenresController) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	genre, err := controller.store.GetGenreByID(id)
	if err != nil {
		respondStoreError(c, err, "genre")
		return
	}
	c.IndentedJSON(http.StatusOK, genre)
}

// Books returns the genre together with every book carrying it.
func (controller *GenresController) Books(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	genre, books, err := controller.books.GetBooksByGenre(id)
	if err != nil {
		respondStoreError(c, err, "genre")
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"genre": genre, "books": books, "count": len(books)})
}

func (controller *GenresController) Create(c *gin.Context) {
	var req genreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	genre, err := controller.store.CreateGenre(req.Name)
	if err != nil {
		respondStoreError(c, err, "genre")
		return
	}
	respondCreated(c, genre)
}

func (controller *GenresController) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req genreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	genre, err := controller.store.UpdateGenre(id, req.Name)
	if err != nil {
		respondStoreError(c, err, "genre")
		return
	}
	c.IndentedJSON(http.StatusOK, genre)
}

func (controller *GenresController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := controller.store.DeleteGenre(id); err != nil {
		respondStoreError(c, err, "genre")
		return
	}
	respondSuccess(c, "genre deleted")
}
