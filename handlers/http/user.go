package httpHandler

import (
	"errors"
	"log"
	"net/http"

	"duo-server/middleware"
	"duo-server/usecases"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	useCase *usecases.UserUseCase
}

func NewUserHandler(useCase *usecases.UserUseCase) *UserHandler {
	return &UserHandler{useCase: useCase}
}

type RegisterRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Cellphone string `json:"cellphone"`
	Password  string `json:"password"`
}

type PartnerRequest struct {
	Email string `json:"email"`
}

// Register handles POST /api/v1/users/register
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.Name == "" || req.Email == "" || req.Cellphone == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, email, cellphone and password are required"})
		return
	}

	user, err := h.useCase.Register(req.Name, req.Email, req.Cellphone, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecases.ErrInvalidEmail):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email format"})
		case errors.Is(err, usecases.ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "Email already used"})
		default:
			log.Printf("register error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"email":   user.Email,
	})
}

// Profile handles GET /api/v1/users/profile
func (h *UserHandler) Profile(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	user, err := h.useCase.GetProfile(userID)
	if err != nil {
		if errors.Is(err, usecases.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		log.Printf("profile error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"name":      user.Name,
		"email":     user.Email,
		"cellphone": user.Cellphone,
		"createdAt": user.CreatedAt,
		"updatedAt": user.UpdatedAt,
	})
}

// UpdatePartner handles PATCH /api/v1/users/partner
func (h *UserHandler) UpdatePartner(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req PartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
		return
	}

	if err := h.useCase.LinkPartner(userID, req.Email); err != nil {
		switch {
		case errors.Is(err, usecases.ErrPartnerNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Partner user not found"})
		case errors.Is(err, usecases.ErrSelfPartner):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot add yourself as partner"})
		default:
			log.Printf("update partner error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Partner added successfully"})
}
