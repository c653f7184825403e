package handler

import (
	"net/http"
	"strconv"

	"devconnect/backend/internal/database"
	"devconnect/backend/internal/models"
	"devconnect/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// region --- DTOs ---

// RegisterInput defines the structure for user registration.
type RegisterInput struct {
	Nickname  string `json:"nickname" binding:"required" example:"gopher42"`
	Email     string `json:"email" binding:"required,email" example:"gopher@example.com"`
	Password  string `json:"password" binding:"required,min=8" example:"password123"`
	FirstName string `json:"first_name" example:"Ada"`
	LastName  string `json:"last_name" example:"Lovelace"`
}

// LoginInput defines the structure for user login.
type LoginInput struct {
	Login    string `json:"login" binding:"required" example:"gopher42"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// UpdateProfileInput defines the editable profile fields. Anything not listed
// here cannot be changed through the profile endpoint.
type UpdateProfileInput struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Age       *int    `json:"age" binding:"omitempty,gte=18,lte=120"`
	Gender    *string `json:"gender"`
	Bio       *string `json:"bio"`
	PhotoURL  *string `json:"photo_url"`
	SkillIDs  *[]uint `json:"skill_ids"`
}

// PublicUserResponse defines the structure for a user's public profile.
// Credentials never appear here.
type PublicUserResponse struct {
	ID               uint     `json:"id" example:"1"`
	Nickname         string   `json:"nickname" example:"gopher42"`
	FirstName        string   `json:"first_name"`
	LastName         string   `json:"last_name"`
	Age              int      `json:"age,omitempty"`
	Gender           string   `json:"gender,omitempty"`
	Bio              string   `json:"bio,omitempty"`
	PhotoURL         string   `json:"photo_url,omitempty"`
	Skills           []string `json:"skills"`
	ConnectionsCount int64    `json:"connections_count"`
}

// PrivateUserResponse defines the structure for the authenticated user's own profile.
type PrivateUserResponse struct {
	ID                   uint     `json:"id" example:"1"`
	Nickname             string   `json:"nickname" example:"gopher42"`
	Email                string   `json:"email" example:"gopher@example.com"`
	FirstName            string   `json:"first_name"`
	LastName             string   `json:"last_name"`
	Age                  int      `json:"age,omitempty"`
	Gender               string   `json:"gender,omitempty"`
	Bio                  string   `json:"bio,omitempty"`
	PhotoURL             string   `json:"photo_url,omitempty"`
	Skills               []string `json:"skills"`
	ConnectionsCount     int64    `json:"connections_count"`
	PendingRequestsCount int64    `json:"pending_requests_count"`
}

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// endregion

// region --- Auth Handlers ---

// RegisterUser godoc
// @Summary      Register a new user
// @Description  Creates a new user and returns an authentication token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body RegisterInput true "Registration Info"
// @Success      201  {object}  map[string]string "{"token": "..."}"
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /auth/register [post]
func RegisterUser(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existingUser models.User
	if err := database.DB.Where("nickname = ? OR email = ?", input.Nickname, input.Email).First(&existingUser).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Nickname or email already exists"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		Nickname:     input.Nickname,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	token, err := jwt.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token})
}

// LoginUser godoc
// @Summary      Log in a user
// @Description  Authenticates a user with nickname/email and password, and returns a new token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body LoginInput true "Login Info"
// @Success      200  {object}  map[string]string "{"token": "..."}"
// @Failure      400  {object}  ErrorResponse "Invalid input"
// @Failure      401  {object}  ErrorResponse "Invalid credentials"
// @Failure      404  {object}  ErrorResponse "User not found"
// @Failure      500  {object}  ErrorResponse "Internal server error"
// @Router       /auth/login [post]
func LoginUser(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := database.DB.Where("nickname = ? OR email = ?", input.Login, input.Login).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := jwt.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// endregion

// region --- User Handlers ---

// GetUserByID godoc
// @Summary      Get user by ID
// @Description  Retrieves the public profile for a specific user by their ID.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  PublicUserResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/{id} [get]
func GetUserByID(c *gin.Context) {
	viewerID, _ := c.Get("userID")
	targetUserIDStr := c.Param("id")
	targetUserID, err := strconv.ParseUint(targetUserIDStr, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	// If target is the same as viewer, redirect to /me
	if viewerID.(uint) == uint(targetUserID) {
		GetMe(c)
		return
	}

	var targetUser models.User
	if err := database.DB.Preload("Skills").First(&targetUser, uint(targetUserID)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, buildPublicUserResponse(targetUser))
}

// GetMe godoc
// @Summary      Get current user's info
// @Description  Retrieves the private profile for the currently authenticated user.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  PrivateUserResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/me [get]
func GetMe(c *gin.Context) {
	viewerID, _ := c.Get("userID")

	var user models.User
	if err := database.DB.Preload("Skills").First(&user, viewerID.(uint)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, buildPrivateUserResponse(user))
}

// UpdateMe godoc
// @Summary      Update current user's profile
// @Description  Updates the editable profile fields for the authenticated user. Only the enumerated fields can change.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body UpdateProfileInput true "Profile fields"
// @Success      200  {object}  PrivateUserResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /users/me [patch]
func UpdateMe(c *gin.Context) {
	viewerID, _ := c.Get("userID")

	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := database.DB.First(&user, viewerID.(uint)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	// Explicit allowed-fields enumeration; requests naming anything else
	// are ignored by the JSON binding above.
	updates := map[string]interface{}{}
	if input.FirstName != nil {
		updates["first_name"] = *input.FirstName
	}
	if input.LastName != nil {
		updates["last_name"] = *input.LastName
	}
	if input.Age != nil {
		updates["age"] = *input.Age
	}
	if input.Gender != nil {
		updates["gender"] = *input.Gender
	}
	if input.Bio != nil {
		updates["bio"] = *input.Bio
	}
	if input.PhotoURL != nil {
		updates["photo_url"] = *input.PhotoURL
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&user).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
			return
		}
	}

	if input.SkillIDs != nil {
		var skills []*models.Skill
		if len(*input.SkillIDs) > 0 {
			if err := database.DB.Find(&skills, *input.SkillIDs).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load skills"})
				return
			}
			if len(skills) != len(*input.SkillIDs) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "One or more skill IDs do not exist"})
				return
			}
		}
		if err := database.DB.Model(&user).Association("Skills").Replace(skills); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update skills"})
			return
		}
	}

	if err := database.DB.Preload("Skills").First(&user, user.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reload profile"})
		return
	}

	c.JSON(http.StatusOK, buildPrivateUserResponse(user))
}

// DeleteMe godoc
// @Summary      Delete current user's account
// @Description  Deletes the authenticated user and purges every connection record referencing them.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string "{"message": "Account deleted"}"
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /users/me [delete]
func DeleteMe(c *gin.Context) {
	viewerID, _ := c.Get("userID")

	if err := userDirectory().DeleteWithRelations(viewerID.(uint)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete account"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account deleted"})
}

// endregion

// region --- Helpers ---

func skillNames(skills []*models.Skill) []string {
	names := make([]string, 0, len(skills))
	for _, s := range skills {
		names = append(names, s.Name)
	}
	return names
}

func buildPublicUserResponse(user models.User) PublicUserResponse {
	var connectionsCount int64
	database.DB.Model(&models.ConnectionRequest{}).
		Where("(from_user_id = ? OR to_user_id = ?) AND status = ?", user.ID, user.ID, models.StatusAccepted).
		Count(&connectionsCount)

	return PublicUserResponse{
		ID:               user.ID,
		Nickname:         user.Nickname,
		FirstName:        user.FirstName,
		LastName:         user.LastName,
		Age:              user.Age,
		Gender:           user.Gender,
		Bio:              user.Bio,
		PhotoURL:         user.PhotoURL,
		Skills:           skillNames(user.Skills),
		ConnectionsCount: connectionsCount,
	}
}

func buildPrivateUserResponse(user models.User) PrivateUserResponse {
	var connectionsCount, pendingCount int64
	database.DB.Model(&models.ConnectionRequest{}).
		Where("(from_user_id = ? OR to_user_id = ?) AND status = ?", user.ID, user.ID, models.StatusAccepted).
		Count(&connectionsCount)
	database.DB.Model(&models.ConnectionRequest{}).
		Where("to_user_id = ? AND status = ?", user.ID, models.StatusInterested).
		Count(&pendingCount)

	return PrivateUserResponse{
		ID:                   user.ID,
		Nickname:             user.Nickname,
		Email:                user.Email,
		FirstName:            user.FirstName,
		LastName:             user.LastName,
		Age:                  user.Age,
		Gender:               user.Gender,
		Bio:                  user.Bio,
		PhotoURL:             user.PhotoURL,
		Skills:               skillNames(user.Skills),
		ConnectionsCount:     connectionsCount,
		PendingRequestsCount: pendingCount,
	}
}

// endregion
