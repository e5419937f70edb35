package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	userRepo "glowspa/database/repository/user"
	"glowspa/middleware"
	"glowspa/models"
	"glowspa/utils"
)

const tokenLifetime = 24 * time.Hour

// AuthHandler handles registration, login and device token updates.
type AuthHandler struct {
	Users  userRepo.UserRepository
	Logger *zap.Logger
}

func NewAuthHandler(users userRepo.UserRepository, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{Users: users, Logger: logger}
}

// Register creates a customer account.
func (h *AuthHandler) Register(c *gin.Context) {
	var input struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Phone    string `json:"phone" binding:"required"`
		Password string `json:"password" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
		return
	}
	user := &models.User{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		PasswordHash: string(hash),
		Role:         "customer",
	}
	if err := h.Users.Create(user); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "account already exists"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": user})
}

// Login verifies credentials and issues a JWT carrying role claims.
func (h *AuthHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	user, err := h.Users.GetByEmail(input.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := utils.GenerateToken(utils.AuthClaims{
		UserID:  user.ID,
		Email:   user.Email,
		Role:    user.Role,
		SubRole: user.SubRole,
	}, tokenLifetime)
	if err != nil {
		h.Logger.Error("failed to sign token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// UpdateProfile changes the caller's display name and phone number.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var input struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	user, err := h.Users.GetByID(c.GetString(middleware.CtxUserID))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Phone != "" {
		user.Phone = input.Phone
	}
	if err := h.Users.Update(user); err != nil {
		h.Logger.Error("failed to update profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// UpdateFCMToken stores the caller's device push token.
func (h *AuthHandler) UpdateFCMToken(c *gin.Context) {
	var input struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	userID := c.GetString(middleware.CtxUserID)
	if err := h.Users.SetFCMToken(userID, input.Token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}
