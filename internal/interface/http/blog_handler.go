package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/chrsc3/BlogListBack/internal/application"
	"github.com/chrsc3/BlogListBack/internal/domain/entity"
	"github.com/chrsc3/BlogListBack/pkg/response"
	"github.com/chrsc3/BlogListBack/pkg/validation"
)

type BlogHandler struct {
	Svc *application.BlogService
}

func NewBlogHandler(svc *application.BlogService) *BlogHandler {
	return &BlogHandler{Svc: svc}
}

type createBlogRequest struct {
	Title  string `json:"title" binding:"required"`
	Author string `json:"author"`
	URL    string `json:"url" binding:"required"`
	Likes  *int   `json:"likes" binding:"omitempty,min=0"`
}

// updateBlogRequest accepts any subset of fields; null and absent are the same.
type updateBlogRequest struct {
	Title  *string `json:"title" binding:"omitempty,nonempty"`
	Author *string `json:"author"`
	URL    *string `json:"url" binding:"omitempty,nonempty"`
	Likes  *int    `json:"likes" binding:"omitempty,min=0"`
}

type blogResponse struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  int    `json:"likes"`
}

func toBlogResponse(b *entity.Blog) blogResponse {
	return blogResponse{ID: b.ID, Title: b.Title, Author: b.Author, URL: b.URL, Likes: b.Likes}
}

func toBlogResponses(blogs []entity.Blog) []blogResponse {
	out := make([]blogResponse, 0, len(blogs))
	for i := range blogs {
		out = append(out, toBlogResponse(&blogs[i]))
	}
	return out
}

func (h *BlogHandler) List(c *gin.Context) {
	blogs, err := h.Svc.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, toBlogResponses(blogs))
}

func (h *BlogHandler) Create(c *gin.Context) {
	var req createBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(application.NewValidationError(application.BlogValidationMessage, validation.ToDetails(err)))
		return
	}
	b, err := h.Svc.Create(c.Request.Context(), application.CreateBlogInput{
		Title:  req.Title,
		Author: req.Author,
		URL:    req.URL,
		Likes:  req.Likes,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.JSON(c, http.StatusCreated, toBlogResponse(b))
}

func (h *BlogHandler) Get(c *gin.Context) {
	b, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, toBlogResponse(b))
}

// Update applies the fields present in the body. An empty body is an empty
// patch and returns the stored blog unchanged.
func (h *BlogHandler) Update(c *gin.Context) {
	var req updateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		_ = c.Error(application.NewValidationError(application.BlogValidationMessage, validation.ToDetails(err)))
		return
	}
	b, err := h.Svc.Update(c.Request.Context(), c.Param("id"), entity.BlogPatch{
		Title:  req.Title,
		Author: req.Author,
		URL:    req.URL,
		Likes:  req.Likes,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, toBlogResponse(b))
}

// Delete answers 204 whether or not the blog existed.
func (h *BlogHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Search runs a full-text query over title and author: GET /blogs/search?q=go&size=5
func (h *BlogHandler) Search(c *gin.Context) {
	size, _ := strconv.Atoi(c.Query("size"))
	blogs, err := h.Svc.Search(c.Request.Context(), c.Query("q"), size)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, toBlogResponses(blogs))
}
