package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkpaste/inkpaste/services"
	"github.com/inkpaste/inkpaste/storage"
	"github.com/inkpaste/inkpaste/utils"
)

// PasteHandler handles paste creation and viewing.
type PasteHandler struct {
	service *services.PasteService
}

// NewPasteHandler creates a new paste handler.
func NewPasteHandler(service *services.PasteService) *PasteHandler {
	return &PasteHandler{
		service: service,
	}
}

// checkboxOn normalizes an HTML checkbox value to a boolean. Checked
// boxes arrive as "on" (or "true" from scripted clients); unchecked boxes
// are absent from the form entirely.
func checkboxOn(value string) bool {
	return value == "on" || value == "true"
}

// Create handles paste submission via POST /create.
func (h *PasteHandler) Create(c *gin.Context) {
	content := c.PostForm("content")
	if content == "" {
		c.HTML(http.StatusBadRequest, "create.html", gin.H{
			"Error": "Paste content must not be empty",
		})
		return
	}

	req := services.CreatePasteRequest{
		Title:             c.PostForm("title"),
		Content:           content,
		Syntax:            c.PostForm("syntax"),
		Expiration:        c.PostForm("expiration"),
		PasswordProtected: checkboxOn(c.PostForm("is_password_protected")),
		Password:          c.PostForm("password"),
		BurnAfterRead:     checkboxOn(c.PostForm("burn_after_read")),
	}

	id, err := h.service.CreatePaste(c.Request.Context(), req)
	if err != nil {
		log.Printf("[ERROR] create paste: %v", err)
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{
			"Error": "Could not save your paste, please try again",
		})
		return
	}

	c.Redirect(http.StatusSeeOther, "/"+id)
}

// View handles viewing a paste via GET /:id. Password-protected pastes get
// a prompt; everything else goes straight through the lifecycle policy.
func (h *PasteHandler) View(c *gin.Context) {
	id := c.Param("id")

	if !utils.IsValidID(id) {
		c.HTML(http.StatusNotFound, "404.html", nil)
		return
	}

	paste, err := h.service.GetPaste(c.Request.Context(), id)
	if err != nil {
		h.respondFetchError(c, id, err)
		return
	}

	if paste.PasswordProtected {
		c.HTML(http.StatusOK, "password.html", gin.H{"ID": id})
		return
	}

	h.renderPaste(c, id)
}

// Unlock handles password submission via POST /:id. A mismatch re-renders
// the prompt without revealing which part was wrong.
func (h *PasteHandler) Unlock(c *gin.Context) {
	id := c.Param("id")

	if !utils.IsValidID(id) {
		c.HTML(http.StatusNotFound, "404.html", nil)
		return
	}

	paste, err := h.service.GetPaste(c.Request.Context(), id)
	if err != nil {
		h.respondFetchError(c, id, err)
		return
	}

	if paste.PasswordProtected {
		if c.PostForm("password") != paste.Password {
			c.HTML(http.StatusUnauthorized, "password.html", gin.H{"ID": id})
			return
		}
	}

	h.renderPaste(c, id)
}

// renderPaste runs the lifecycle policy and renders the outcome.
func (h *PasteHandler) renderPaste(c *gin.Context, id string) {
	paste, err := h.service.OpenPaste(c.Request.Context(), id)
	if err != nil {
		h.respondFetchError(c, id, err)
		return
	}

	c.HTML(http.StatusOK, "view.html", gin.H{"Paste": paste})
}

func (h *PasteHandler) respondFetchError(c *gin.Context, id string, err error) {
	if errors.Is(err, storage.ErrNotFound) {
		c.HTML(http.StatusNotFound, "404.html", nil)
		return
	}
	log.Printf("[ERROR] fetch paste %s: %v", id, err)
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{
		"Error": "Could not load the paste, please try again",
	})
}
