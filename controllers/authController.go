package controllers

import (
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/vikash-vatika/vatika-api/middlewares"
	"github.com/vikash-vatika/vatika-api/models"
	"github.com/vikash-vatika/vatika-api/repositories"
	"golang.org/x/crypto/bcrypt"
)

const (
	// Default cost for bcrypt password hashing
	bcryptCost = 10

	msgInvalidInput        = "invalid input"
	msgUserAlreadyExists   = "user already exists"
	msgInvalidCredentials  = "invalid username or password"
	msgInternalServerError = "Internal server error"
)

type UserStore interface {
	Exists(email, username string) (bool, error)
	Create(user *models.User) error
	GetByIdentifier(identifier string) (*models.User, error)
	GetByID(id uint) (*models.User, error)
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func comparePasswords(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

func generateJWT(user *models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"email":    user.Email,
		"username": user.Username,
		"role":     user.Role,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(time.Hour * 24 * 30).Unix(),
	})

	jwtSecret := os.Getenv("JWT_SECRET")
	return token.SignedString([]byte(jwtSecret))
}

// Signup handles customer registration. The role is always "user"; admin
// accounts are provisioned out of band.
func Signup(users UserStore) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var signUpData models.User
		if err := ctx.ShouldBindJSON(&signUpData); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}

		exists, err := users.Exists(signUpData.Email, signUpData.Username)
		if err != nil {
			log.Println("Database error during user check:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
			return
		}
		if exists {
			sendErrorResponse(ctx, http.StatusBadRequest, msgUserAlreadyExists)
			return
		}

		hashedPassword, err := hashPassword(signUpData.Password)
		if err != nil {
			log.Println("Password hashing error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
			return
		}
		signUpData.Password = hashedPassword
		signUpData.Role = models.RoleUser

		if err := users.Create(&signUpData); err != nil {
			log.Println("User creation error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
			return
		}

		sendJSONResponse(ctx, http.StatusCreated, gin.H{"message": "User created successfully."})
	}
}

// Login handles user authentication
func Login(users UserStore) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var loginData models.LoginData
		if err := ctx.ShouldBindJSON(&loginData); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}

		user, err := users.GetByIdentifier(loginData.Identifier)
		if err != nil {
			if errors.Is(err, repositories.ErrUserNotFound) {
				sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidCredentials)
				return
			}
			log.Println("Database error during login:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
			return
		}

		if err := comparePasswords(user.Password, loginData.Password); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidCredentials)
			return
		}

		tokenString, err := generateJWT(user)
		if err != nil {
			log.Println("JWT generation error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "failed to generate token")
			return
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{"token": tokenString})
	}
}

// GetProfile returns the authenticated user's own record.
func GetProfile(users UserStore) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		identity := middlewares.CurrentIdentity(ctx)
		if identity == nil {
			sendErrorResponse(ctx, http.StatusUnauthorized, "Authentication required")
			return
		}

		user, err := users.GetByID(identity.UserID)
		if err != nil {
			respondWithServiceError(ctx, err)
			return
		}

		user.Password = ""
		ctx.JSON(http.StatusOK, gin.H{"user": user})
	}
}
