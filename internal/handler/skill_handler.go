package handler

import (
	"net/http"
	"strconv"
	"time"

	"devconnect/backend/internal/database"
	"devconnect/backend/internal/models"

	"github.com/gin-gonic/gin"
)

type SkillInput struct {
	Name string `json:"name" binding:"required"`
}

type SkillResponse struct {
	ID        uint      `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `json:"name"`
}

func newSkillResponse(skill models.Skill) SkillResponse {
	return SkillResponse{
		ID:        skill.ID,
		CreatedAt: skill.CreatedAt,
		UpdatedAt: skill.UpdatedAt,
		Name:      skill.Name,
	}
}

// GetSkills godoc
// @Summary      List skills
// @Description  Lists all skill tags users can attach to their profiles.
// @Tags         skills
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   SkillResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /skills [get]
func GetSkills(c *gin.Context) {
	var skills []models.Skill
	if err := database.DB.Order("name").Find(&skills).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch skills"})
		return
	}

	responses := make([]SkillResponse, len(skills))
	for i, skill := range skills {
		responses[i] = newSkillResponse(skill)
	}

	c.JSON(http.StatusOK, responses)
}

// CreateSkill godoc
// @Summary      Create a new skill
// @Description  Creates a new skill tag for user profiles.
// @Tags         admin-skills
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body SkillInput true "Skill Info"
// @Success      201  {object}  SkillResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Failure      409  {object}  ErrorResponse "Skill already exists"
// @Router       /admin/skills [post]
func CreateSkill(c *gin.Context) {
	var input SkillInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	skill := models.Skill{Name: input.Name}
	if err := database.DB.Create(&skill).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Skill already exists or another error occurred"})
		return
	}

	c.JSON(http.StatusCreated, newSkillResponse(skill))
}

// UpdateSkill godoc
// @Summary      Update a skill
// @Description  Renames an existing skill tag.
// @Tags         admin-skills
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int        true  "Skill ID"
// @Param        input body      SkillInput true  "Skill Info"
// @Success      200  {object}  SkillResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Failure      404  {object}  ErrorResponse "Skill not found"
// @Router       /admin/skills/{id} [put]
func UpdateSkill(c *gin.Context) {
	skillID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid skill ID"})
		return
	}

	var input SkillInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var skill models.Skill
	if err := database.DB.First(&skill, uint(skillID)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Skill not found"})
		return
	}

	if err := database.DB.Model(&skill).Update("name", input.Name).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Skill name already exists or another error occurred"})
		return
	}

	c.JSON(http.StatusOK, newSkillResponse(skill))
}

// DeleteSkill godoc
// @Summary      Delete a skill
// @Description  Deletes a skill tag.
// @Tags         admin-skills
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Skill ID"
// @Success      200  {object}  map[string]string "{"message": "Skill deleted"}"
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Failure      404  {object}  ErrorResponse "Skill not found"
// @Router       /admin/skills/{id} [delete]
func DeleteSkill(c *gin.Context) {
	skillID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid skill ID"})
		return
	}

	result := database.DB.Delete(&models.Skill{}, uint(skillID))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete skill"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Skill not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Skill deleted"})
}
