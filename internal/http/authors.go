package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/souravramos/locallibrary/internal/entities"
)

// AuthorsController serves the author list/detail pages and the JSON CRUD
// API.
type AuthorsController struct {
	store AuthorStore
}

func NewAuthorsController(store AuthorStore) *AuthorsController {
	return &AuthorsController{store: store}
}

// --- HTML pages ---

// ListPage renders all authors ordered by last name.
func (controller *AuthorsController) ListPage(c *gin.Context) {
	authors, err := controller.store.GetAllAuthors()
	if err != nil {
		c.String(http.StatusInternalServerError, "Error loading authors: %s", err.Error())
		return
	}
	c.HTML(http.StatusOK, "author_list", gin.H{
		"Authors": authors,
		"Total":   len(authors),
	})
}

// DetailPage renders a single author.
func (controller *AuthorsController) DetailPage(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	author, err := controller.store.GetAuthorByID(id)
	if err != nil {
		c.String(http.StatusNotFound, "Author not found")
		return
	}
	c.HTML(http.StatusOK, "author_detail", gin.H{
		"Author": author,
	})
}

// --- JSON API ---

type authorRequest struct {
	FirstName   string `json:"first_name" binding:"required,max=100"`
	LastName    string `json:"last_name" binding:"required,max=100"`
	DateOfBirth string `json:"date_of_birth" binding:"omitempty,datetime=2006-01-02"`
	DateOfDeath string `json:"date_of_death" binding:"omitempty,datetime=2006-01-02"`
	Details     string `json:"details" binding:"max=2000"`
}

func (req *authorRequest) toEntity() *entities.Author {
	author := &entities.Author{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Details:   req.Details,
	}
	if req.DateOfBirth != "" {
		if t, err := time.Parse("2006-01-02", req.DateOfBirth); err == nil {
			author.DateOfBirth = &t
		}
	}
	if req.DateOfDeath != "" {
		if t, err := time.Parse("2006-01-02", req.DateOfDeath); err == nil {
			author.DateOfDeath = &t
		}
	}
	return author
}

func (controller *AuthorsController) List(c *gin.Context) {
	authors, err := controller.store.GetAllAuthors()
	if err != nil {
		respondInternalError(c, err, "list authors")
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"authors": authors, "count": len(authors)})
}

func (controller *AuthorsController) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	author, err := controller.store.GetAuthorByID(id)
	if err != nil {
		respondStoreError(c, err, "author")
		return
	}
	c.IndentedJSON(http.StatusOK, author)
}

func (controller *AuthorsController) Create(c *gin.Context) {
	var req authorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	author := req.toEntity()
	if err := controller.store.CreateAuthor(author); err != nil {
		respondStoreError(c, err, "author")
		return
	}
	respondCreated(c, author)
}

func (controller *AuthorsController) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req authorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	existing, err := controller.store.GetAuthorByID(id)
	if err != nil {
		respondStoreError(c, err, "author")
		return
	}

	author := req.toEntity()
	author.ID = id
	author.Image = existing.Image
	if err := controller.store.UpdateAuthor(author); err != nil {
		respondStoreError(c, err, "author")
		return
	}
	c.IndentedJSON(http.StatusOK, author)
}

func (controller *AuthorsController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := controller.store.DeleteAuthor(id); err != nil {
		respondStoreError(c, err, "author")
		return
	}
	respondSuccess(c, "author deleted")
}
