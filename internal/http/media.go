package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// MediaController handles image uploads for books and authors. An upload
// is stored, thumbnailed in place, and only then recorded on the entity;
// an undecodable image fails the whole save.
type MediaController struct {
	images  ImageStore
	books   BookStore
	authors AuthorStore
}

func NewMediaController(images ImageStore, books BookStore, authors AuthorStore) *MediaController {
	return &MediaController{
		images:  images,
		books:   books,
		authors: authors,
	}
}

// UploadBookImage replaces a book's cover image.
func (controller *MediaController) UploadBookImage(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if _, err := controller.books.GetBookByID(id); err != nil {
		respondStoreError(c, err, "book")
		return
	}

	filename, ok := controller.saveUpload(c, "book", fmt.Sprint(id))
	if !ok {
		return
	}

	if err := controller.books.SetBookImage(id, filename); err != nil {
		respondStoreError(c, err, "book")
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"image": filename})
}

// UploadAuthorImage replaces an author's photo.
func (controller *MediaController) UploadAuthorImage(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if _, err := controller.authors.GetAuthorByID(id); err != nil {
		respondStoreError(c, err, "author")
		return
	}

	filename, ok := controller.saveUpload(c, "author", fmt.Sprint(id))
	if !ok {
		return
	}

	if err := controller.authors.SetAuthorImage(id, filename); err != nil {
		respondStoreError(c, err, "author")
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"image": filename})
}

// saveUpload reads the multipart "image" field and stores it through the
// image store. Responds with the mapped error and returns ok=false on
// failure.
func (controller *MediaController) saveUpload(c *gin.Context, kind, id string) (string, bool) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		respondBadRequest(c, "image file is required")
		return "", false
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondInternalError(c, err, "open upload")
		return "", false
	}
	defer file.Close()

	filename, err := controller.images.SaveImage(kind, id, fileHeader.Filename, file)
	if err != nil {
		respondStoreError(c, err, "image")
		return "", false
	}
	return filename, true
}
