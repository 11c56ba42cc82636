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

type NoteHandler struct {
	useCase  *usecases.NoteUseCase
	notifier *services.Notifier
}

func NewNoteHandler(useCase *usecases.NoteUseCase, notifier *services.Notifier) *NoteHandler {
	return &NoteHandler{useCase: useCase, notifier: notifier}
}

type CreateMessageRequest struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	RecipientID uint   `json:"recipientId"`
}

// Create handles POST /api/v1/notes
func (h *NoteHandler) Create(c *gin.Context) {
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

	note, err := h.useCase.CreateNote(userID, req.Title, req.Content, req.RecipientID)
	if err != nil {
		switch {
		case errors.Is(err, usecases.ErrRecipientNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipient not found"})
		case errors.Is(err, usecases.ErrSelfSend):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot send a note to yourself"})
		default:
			log.Printf("create note error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		}
		return
	}

	h.notifier.Notify(note.RecipientID, "note", note)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Note created successfully",
		"note":    note,
	})
}

// Inbox handles GET /api/v1/notes
func (h *NoteHandler) Inbox(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	notes, err := h.useCase.ListInbox(userID)
	if err != nil {
		// An empty inbox is reported as 404, not as an empty list.
		if errors.Is(err, usecases.ErrNoMessages) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No notes found for this user"})
			return
		}
		log.Printf("get notes error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, notes)
}
