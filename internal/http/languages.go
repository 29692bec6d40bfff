package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/souravramos/locallibrary/internal/database"
)

// LanguagesController serves the language pages and the JSON CRUD API,
// including the language-scoped book listing.
type LanguagesController struct {
	store LanguageStore
	books BookStore
}

func NewLanguagesController(store LanguageStore, books BookStore) *LanguagesController {
	return &LanguagesController{store: store, books: books}
}

// --- HTML pages ---

// ListPage renders all languages ordered by name.
func (controller *LanguagesController) ListPage(c *gin.Context) {
	languages, err := controller.store.GetAllLanguages()
	if err != nil {
		c.String(http.StatusInternalServerError, "Error loading languages: %s", err.Error())
		return
	}
	c.HTML(http.StatusOK, "language_list", gin.H{
		"Languages": languages,
		"Total":     len(languages),
	})
}

// BooksPage renders all books in a language, with the language itself for
// the page heading. A missing language is a 404, never an empty page.
func (controller *LanguagesController) BooksPage(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	language, books, err := controller.books.GetBooksByLanguage(id)
	if err != nil {
		if database.IsNotFound(err) {
			c.String(http.StatusNotFound, "Language not found")
			return
		}
		c.String(http.StatusInternalServerError, "Error loading language books: %s", err.Error())
		return
	}

	c.HTML(http.StatusOK, "language_book_list", gin.H{
		"Language": language,
		"Books":    books,
	})
}

// --- JSON API ---

type languageRequest struct {
	Name string `json:"name" binding:"required,max=200"`
}

func (controller *LanguagesController) List(c *gin.Context) {
	languages, err := controller.store.GetAllLanguages()
	if err != nil {
		respondInternalError(c, err, "list languages")
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"languages": languages, "count": len(languages)})
}

func (controller *LanguagesController) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	language, err := controller.store.GetLanguageByID(id)
	if err != nil {
		respondStoreError(c, err, "language")
		return
	}
	c.IndentedJSON(http.StatusOK, language)
}

// Books returns the language together with every book written in it.
func (controller *LanguagesController) Books(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	language, books, err := controller.books.GetBooksByLanguage(id)
	if err != nil {
		respondStoreError(c, err, "language")
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"language": language, "books": books, "count": len(books)})
}

func (controller *LanguagesController) Create(c *gin.Context) {
	var req languageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	language, err := controller.store.CreateLanguage(req.Name)
	if err != nil {
		respondStoreError(c, err, "language")
		return
	}
	respondCreated(c, language)
}

func (controller *LanguagesController) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req languageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	language, err := controller.store.UpdateLanguage(id, req.Name)
	if err != nil {
		respondStoreError(c, err, "language")
		return
	}
	c.IndentedJSON(http.StatusOK, language)
}

func (controller *LanguagesController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := controller.store.DeleteLanguage(id); err != nil {
		respondStoreError(c, err, "language")
		return
	}
	respondSuccess(c, "language deleted")
}
