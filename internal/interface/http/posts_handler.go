package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/devconnect/devconnect-api/internal/application"
	"github.com/devconnect/devconnect-api/internal/interface/middleware"
	"github.com/devconnect/devconnect-api/pkg/response"
	"github.com/devconnect/devconnect-api/pkg/validation"
)

type PostsHandler struct {
	Svc    *application.PostService
	Logger *logrus.Logger
}

func NewPostsHandler(svc *application.PostService, logger *logrus.Logger) *PostsHandler {
	return &PostsHandler{Svc: svc, Logger: logger}
}

type postRequest struct {
	Text string `json:"text" binding:"required"`
}

// Create makes a post carrying the caller's name/avatar snapshot.
func (h *PostsHandler) Create(c *gin.Context) {
	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusUnprocessableEntity, "invalid payload", validation.ToDetails(err))
		return
	}

	uid := c.GetString(middleware.CtxUserIDKey)
	p, err := h.Svc.Create(c.Request.Context(), uid, req.Text)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, p, "post created", nil)
}

// List returns all posts, newest first.
func (h *PostsHandler) List(c *gin.Context) {
	posts, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, posts, "posts", nil)
}

// Get returns a single post by id.
func (h *PostsHandler) Get(c *gin.Context) {
	p, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, p, "post", nil)
}

// Delete removes a post, owner only.
func (h *PostsHandler) Delete(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.Delete(c.Request.Context(), uid, c.Param("id")); err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "post removed", nil)
}

// Like adds the caller's like; a repeat like answers 400.
func (h *PostsHandler) Like(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	p, err := h.Svc.Like(c.Request.Context(), uid, c.Param("id"))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, p.Likes, "post liked", nil)
}

// Unlike removes the caller's like; answering 400 when there is none.
func (h *PostsHandler) Unlike(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	p, err := h.Svc.Unlike(c.Request.Context(), uid, c.Param("id"))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, p.Likes, "post unliked", nil)
}

// AddComment front-inserts a comment with the caller's snapshot.
func (h *PostsHandler) AddComment(c *gin.Context) {
	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusUnprocessableEntity, "invalid payload", validation.ToDetails(err))
		return
	}

	uid := c.GetString(middleware.CtxUserIDKey)
	p, err := h.Svc.AddComment(c.Request.Context(), uid, c.Param("id"), req.Text)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, p.Comments, "comment added", nil)
}

// RemoveComment deletes a comment by id, comment-author only.
func (h *PostsHandler) RemoveComment(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	p, err := h.Svc.RemoveComment(c.Request.Context(), uid, c.Param("id"), c.Param("commentId"))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, p.Comments, "comment removed", nil)
}
