package httpHandler

import (
	"errors"
	"log"
	"net/http"

	"duo-server/middleware"
	"duo-server/usecases"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	useCase *usecases.ProjectUseCase
}

func NewProjectHandler(useCase *usecases.ProjectUseCase) *ProjectHandler {
	return &ProjectHandler{useCase: useCase}
}

type CreateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Create handles POST /api/v1/projects
func (h *ProjectHandler) Create(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Name == "" || req.Description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and description are required"})
		return
	}

	project, err := h.useCase.CreateProject(req.Name, req.Description, userID)
	if err != nil {
		switch {
		case errors.Is(err, usecases.ErrNameRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		case errors.Is(err, usecases.ErrAlreadyInProject):
			c.JSON(http.StatusBadRequest, gin.H{"error": "User already has a linked project!"})
		case errors.Is(err, usecases.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		default:
			log.Printf("create project error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Project created successfully",
		"projectId":   project.ID,
		"name":        project.Name,
		"description": project.Description,
	})
}
