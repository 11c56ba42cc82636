package httpHandler

import (
	"errors"
	"log"
	"net/http"

	"duo-server/usecases"

	"github.com/gin-gonic/gin"
)

type LoginHandler struct {
	useCase *usecases.UserUseCase
}

func NewLoginHandler(useCase *usecases.UserUseCase) *LoginHandler {
	return &LoginHandler{useCase: useCase}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /api/v1/auth/login. Unknown email and wrong password
// produce the same 401 body.
func (h *LoginHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	user, token, err := h.useCase.Authenticate(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecases.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		log.Printf("login error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login Successful",
		"email":   user.Email,
		"token":   token,
	})
}
