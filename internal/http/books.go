package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/souravramos/locallibrary/internal/entities"
)

// BooksController serves the book list/detail pages and the JSON CRUD API.
type BooksController struct {
	store    BookStore
	pageSize int
}

func NewBooksController(store BookStore, pageSize int) *BooksController {
	if pageSize <= 0 {
		pageSize = 5
	}
	return &BooksController{
		store:    store,
		pageSize: pageSize,
	}
}

// --- HTML pages ---

// ListPage renders one page of books, ordered by title.
func (controller *BooksController) ListPage(c *gin.Context) {
	page := parsePageQuery(c)

	books, total, err := controller.store.ListBooks(page, controller.pageSize)
	if err != nil {
		c.String(http.StatusInternalServerError, "Error loading books: %s", err.Error())
		return
	}

	totalPages := int((total + int64(controller.pageSize) - 1) / int64(controller.pageSize))
	c.HTML(http.StatusOK, "book_list", gin.H{
		"Books":      books,
		"Total":      total,
		"Page":       page,
		"TotalPages": totalPages,
		"HasPrev":    page > 1,
		"HasNext":    page < totalPages,
		"PrevPage":   page - 1,
		"NextPage":   page + 1,
	})
}

// DetailPage renders a single book.
func (controller *BooksController) DetailPage(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	book, err := controller.store.GetBookByID(id)
	if err != nil {
		c.String(http.StatusNotFound, "Book not found")
		return
	}

	c.HTML(http.StatusOK, "book_detail", gin.H{
		"Book": book,
	})
}

// --- JSON API ---

type bookRequest struct {
	Title        string `json:"title" binding:"required,max=200"`
	Summary      string `json:"summary" binding:"required,max=1000"`
	ISBN         string `json:"isbn" binding:"omitempty,len=13"`
	AuthorID     *uint  `json:"author_id"`
	LanguageID   *uint  `json:"language_id"`
	GenreIDs     []uint `json:"genre_ids"`
	Edition      string `json:"edition" binding:"max=20"`
	Price        *int   `json:"price"`
	BuyOnlineURL string `json:"buy_online_url" binding:"max=200"`
}

func (req *bookRequest) toEntity() *entities.Book {
	return &entities.Book{
		Title:        req.Title,
		Summary:      req.Summary,
		ISBN:         req.ISBN,
		AuthorID:     req.AuthorID,
		LanguageID:   req.LanguageID,
		Edition:      req.Edition,
		Price:        req.Price,
		BuyOnlineURL: req.BuyOnlineURL,
	}
}

func (controller *BooksController) List(c *gin.Context) {
	page := parsePageQuery(c)

	books, total, err := controller.store.ListBooks(page, controller.pageSize)
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}

	totalPages := int((total + int64(controller.pageSize) - 1) / int64(controller.pageSize))
	c.IndentedJSON(http.StatusOK, PaginatedResponse{
		Data:       books,
		Total:      total,
		Page:       page,
		PageSize:   controller.pageSize,
		TotalPages: totalPages,
	})
}

func (controller *BooksController) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	book, err := controller.store.GetBookByID(id)
	if err != nil {
		respondStoreError(c, err, "book")
		return
	}
	c.IndentedJSON(http.StatusOK, book)
}

func (controller *BooksController) Search(c *gin.Context) {
	query := c.Query("q")
	books, err := controller.store.SearchBooks(query)
	if err != nil {
		respondInternalError(c, err, "search books")
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"query": query, "books": books, "count": len(books)})
}

func (controller *BooksController) Create(c *gin.Context) {
	var req bookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	book := req.toEntity()
	if err := controller.store.CreateBook(book, req.GenreIDs); err != nil {
		respondStoreError(c, err, "book")
		return
	}
	respondCreated(c, book)
}

func (controller *BooksController) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req bookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	existing, err := controller.store.GetBookByID(id)
	if err != nil {
		respondStoreError(c, err, "book")
		return
	}

	book := req.toEntity()
	book.ID = id
	book.Image = existing.Image
	if err := controller.store.UpdateBook(book, req.GenreIDs); err != nil {
		respondStoreError(c, err, "book")
		return
	}
	c.IndentedJSON(http.StatusOK, book)
}

func (controller *BooksController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := controller.store.DeleteBook(id); err != nil {
		respondStoreError(c, err, "book")
		return
	}
	respondSuccess(c, "book deleted")
}
