package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PageHandler serves the static-ish pages: landing, create form, about.
type PageHandler struct{}

// NewPageHandler creates a new page handler.
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// Home handles the landing page via GET/POST /.
func (h *PageHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", nil)
}

// CreateForm returns the paste creation form via GET /create.
func (h *PageHandler) CreateForm(c *gin.Context) {
	c.HTML(http.StatusOK, "create.html", gin.H{})
}

// About handles the informational page via GET/POST /about.
func (h *PageHandler) About(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", nil)
}
