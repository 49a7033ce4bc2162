package controllers

import (
	"net/http"

	"nutriplan/config"
	"nutriplan/models"
	"nutriplan/services"

	"github.com/gin-gonic/gin"
)

// GetDailyTargets recomputes and returns the caller's calorie/macro targets.
// An incomplete profile is a normal state, not an error: the client gets
// complete=false and should send the user back to onboarding.
func GetDailyTargets(c *gin.Context) {
	email := c.MustGet("email").(string)
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	target, ok, err := services.GetDailyTargets(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !ok {
		c.JSON(http.StatusOK, gin.H{"complete": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"complete":              true,
		"bmr":                   target.BMR,
		"tdee":                  target.TDEE,
		"final_target_calories": target.Calories,
		"protein_grams":         target.Protein,
		"carb_grams":            target.Carbs,
		"fat_grams":             target.Fat,
		"diet_goal":             target.DietGoal,
		"activity_level":        target.ActivityLevel,
	})
}

// GetRecommendedProtein serves the standalone protein recommendation, which
// only needs body weight.
func GetRecommendedProtein(c *gin.Context) {
	email := c.MustGet("email").(string)
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	grams, ok := services.RecommendedProtein(&user)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"complete": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"complete": true, "protein_grams": grams})
}

func GetActivityLevels(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"activity_levels": services.ActivityLevels()})
}
