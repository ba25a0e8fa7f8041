package controllers

import (
	"errors"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"idea-management-api/middleware"
	"idea-management-api/models"
	"idea-management-api/utils"
)

type AuthController struct {
	db *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{db: db}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Register handles POST /api/auth/register. New accounts always get the
// submitter role; admins are promoted out of band.
func (ctl *AuthController) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !utils.ValidateEmail(email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A valid email address is required."})
		return
	}
	if ok, msg := utils.ValidatePassword(req.Password); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	var existing models.User
	err := ctl.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "An account with this email already exists."})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(c, err)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(c, err)
		return
	}

	user := models.User{
		Email:     email,
		Password:  string(hashed),
		Role:      models.RoleSubmitter,
		CreatedAt: time.Now(),
	}
	if err := ctl.db.Create(&user).Error; err != nil {
		respondError(c, err)
		return
	}

	token, err := generateToken(user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, authResponse{Token: token, User: user})
}

// Login handles POST /api/auth/login.
func (ctl *AuthController) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required."})
		return
	}

	var user models.User
	if err := ctl.db.Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).
		First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password."})
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password."})
		return
	}

	token, err := generateToken(user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, authResponse{Token: token, User: user})
}

// GetProfile handles GET /api/auth/me.
func (ctl *AuthController) GetProfile(c *gin.Context) {
	var user models.User
	if err := ctl.db.Where("user_id = ?", c.GetInt("userID")).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func generateToken(user models.User) (string, error) {
	expireHours, _ := strconv.Atoi(os.Getenv("JWT_EXPIRE_HOURS"))
	if expireHours == 0 {
		expireHours = 24
	}

	claims := middleware.Claims{
		UserID: user.UserID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(expireHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
