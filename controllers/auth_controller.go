package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/m3pixel-crypto/mecanicomotosaodomicilio/models"
	"github.com/m3pixel-crypto/mecanicomotosaodomicilio/repositories"
	"github.com/m3pixel-crypto/mecanicomotosaodomicilio/services"
	"github.com/m3pixel-crypto/mecanicomotosaodomicilio/utils"
)

type AuthController struct {
	db        *gorm.DB
	jwtSecret string
	mailer    services.Mailer
	garage    *repositories.GarageRepository
}

func NewAuthController(db *gorm.DB, jwtSecret string, mailer services.Mailer, garage *repositories.GarageRepository) *AuthController {
	return &AuthController{
		db:        db,
		jwtSecret: jwtSecret,
		mailer:    mailer,
		garage:    garage,
	}
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func (ac *AuthController) Register(c *gin.Context) {
	var form utils.SignupForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if errs := form.Validate(); len(errs) > 0 {
		utils.SendValidationErrors(c, errs)
		return
	}

	var existingUser models.User
	if err := ac.db.Where("email = ?", form.Email).First(&existingUser).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Este email já está associado a uma conta"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		ID:       uuid.New().String(),
		Name:     form.Name,
		Email:    form.Email,
		Password: string(hashedPassword),
	}

	if err := ac.db.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	// Welcome mail must not block or fail the signup
	go func() {
		if err := ac.mailer.SendWelcomeEmail(user.Email, user.Name); err != nil {
			fmt.Printf("Failed to send welcome email: %v\n", err)
		}
	}()

	token, err := ac.generateJWT(user.ID, user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	user.Password = ""

	c.JSON(http.StatusCreated, AuthResponse{
		Token: token,
		User:  user,
	})
}

func (ac *AuthController) Login(c *gin.Context) {
	var form utils.LoginForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if errs := form.Validate(); len(errs) > 0 {
		utils.SendValidationErrors(c, errs)
		return
	}

	var user models.User
	if err := ac.db.Where("email = ?", form.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Email ou password incorretos"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(form.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Email ou password incorretos"})
		return
	}

	token, err := ac.generateJWT(user.ID, user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	user.Password = ""

	c.JSON(http.StatusOK, AuthResponse{
		Token: token,
		User:  user,
	})
}

// Logout tears down the session scope. Tokens are stateless; the server-side
// effect is dropping the garage mirror so the next session re-fetches.
func (ac *AuthController) Logout(c *gin.Context) {
	ac.garage.Invalidate()
	c.JSON(http.StatusOK, gin.H{"message": "Sessão terminada"})
}

// Me returns the authenticated user.
func (ac *AuthController) Me(c *gin.Context) {
	userID := c.GetString("user_id")

	var user models.User
	if err := ac.db.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	user.Password = ""
	c.JSON(http.StatusOK, user)
}

func (ac *AuthController) ResetPassword(c *gin.Context) {
	var form utils.PasswordResetForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if errs := form.Validate(); len(errs) > 0 {
		utils.SendValidationErrors(c, errs)
		return
	}

	// Don't reveal whether the email exists
	c.JSON(http.StatusOK, gin.H{"message": "Se o email existir, foi enviado um link de recuperação"})
}

func (ac *AuthController) generateJWT(userID, email string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"exp":     time.Now().Add(time.Hour * 24 * 7).Unix(), // 7 days
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(ac.jwtSecret))
}
