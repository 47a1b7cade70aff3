package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"campus_hop/internal/middleware"
	"campus_hop/internal/models"
	"campus_hop/internal/store"
)

// AuthController implements the session operations: sign-up, sign-in,
// sign-out and profile maintenance. The signed token it returns is the
// client-held session record; the server keeps no session state.
type AuthController struct {
	store *store.Store
}

func NewAuthController(s *store.Store) *AuthController {
	return &AuthController{store: s}
}

type signupInput struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	StudentID string `json:"student_id"`
}

func (ac *AuthController) Signup(c *gin.Context) {
	var input signupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, exists := ac.store.UserByEmail(input.Email); exists {
		c.JSON(http.StatusConflict, gin.H{"error": "email already in use"})
		return
	}

	hashedPassword, err := hashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not hash password"})
		return
	}

	user, ok := ac.store.AddUser(models.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Role:         models.RoleUser,
		StudentID:    input.StudentID,
		ProfileImage: "/placeholder.svg",
		CreatedAt:    time.Now(),
	})
	if !ok {
		// Lost a race with another registration for the same email.
		c.JSON(http.StatusConflict, gin.H{"error": "email already in use"})
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}

	logrus.WithFields(logrus.Fields{"user_id": user.ID, "email": user.Email}).Info("New user registered")
	c.JSON(http.StatusCreated, gin.H{
		"token": token,
		"user":  prepareUserResponse(user),
	})
}

func (ac *AuthController) Login(c *gin.Context) {
	var body struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, found := ac.store.UserByEmail(body.Email)
	if !found {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found or invalid credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "incorrect password"})
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}

	logrus.WithFields(logrus.Fields{"user_id": user.ID, "role": user.Role}).Info("User logged in")
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  prepareUserResponse(user),
	})
}

// Logout acknowledges sign-out. Disposal of the token is the client's job,
// the same way the original cleared its stored session record.
func (ac *AuthController) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "You have been successfully logged out"})
}

func (ac *AuthController) GetProfile(c *gin.Context) {
	userID := c.MustGet("user_id").(string)
	user, found := ac.store.UserByID(userID)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": prepareUserResponse(user)})
}

func (ac *AuthController) UpdateProfile(c *gin.Context) {
	userID := c.MustGet("user_id").(string)

	var input struct {
		Name         *string `json:"name"`
		StudentID    *string `json:"student_id"`
		ProfileImage *string `json:"profile_image"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, found := ac.store.UpdateUser(userID, store.ProfileUpdate{
		Name:         input.Name,
		StudentID:    input.StudentID,
		ProfileImage: input.ProfileImage,
	})
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Your profile has been updated successfully",
		"user":    prepareUserResponse(user),
	})
}

// ListUsers returns every registered user. Admin use only.
func (ac *AuthController) ListUsers(c *gin.Context) {
	users := ac.store.ListUsers()
	out := make([]gin.H, 0, len(users))
	for _, u := range users {
		out = append(out, prepareUserResponse(u))
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func prepareUserResponse(user models.User) gin.H {
	responseUser := gin.H{
		"id":         user.ID,
		"name":       user.Name,
		"email":      user.Email,
		"role":       user.Role,
		"is_admin":   user.IsAdmin(),
		"created_at": user.CreatedAt,
	}
	if user.StudentID != "" {
		responseUser["student_id"] = user.StudentID
	}
	if user.ProfileImage != "" {
		responseUser["profile_image"] = user.ProfileImage
	}
	return responseUser
}
