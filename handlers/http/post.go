package httpHandler

import (
	"errors"
	"log"
	"net/http"

	"duo-server/middleware"
	"duo-server/services"
	"duo-server/usecases"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	useCase  *usecases.PostUseCase
	notifier *services.Notifier
}

func NewPostHandler(useCase *usecases.PostUseCase, notifier *services.Notifier) *PostHandler {
	return &PostHandler{useCase: useCase, notifier: notifier}
}

// Create handles POST /api/v1/posts
func (h *PostHandler) Create(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Title == "" || req.Content == "" || req.RecipientID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title, content, and recipientId are required"})
		return
	}

	post, err := h.useCase.CreatePost(userID, req.Title, req.Content, req.RecipientID)
	if err != nil {
		switch {
		case errors.Is(err, usecases.ErrRecipientNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipient not found"})
		case errors.Is(err, usecases.ErrSelfSend):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot send a post to yourself"})
		default:
			log.Printf("create post error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		}
		return
	}

	h.notifier.Notify(post.RecipientID, "post", post)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Post created successfully",
		"post":    post,
	})
}

// Inbox handles GET /api/v1/posts
func (h *PostHandler) Inbox(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	posts, err := h.useCase.ListInbox(userID)
	if err != nil {
		if errors.Is(err, usecases.ErrNoMessages) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No posts found for this user"})
			return
		}
		log.Printf("get posts error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, posts)
}
