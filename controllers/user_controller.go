package controllers

import (
	"net/http"
	"time"

	"nutriplan/services"

	"github.com/gin-gonic/gin"
)

func GetProfile(c *gin.Context) {
	email := c.GetString("email")
	profile, err := services.GetUserProfile(email)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func UpdateProfile(c *gin.Context) {
	email := c.GetString("email")
	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := services.UpdateUserProfile(email, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "profile updated successfully"})
}

type OnboardingInput struct {
	Gender             string   `json:"gender" binding:"required"`
	Birthday           string   `json:"birthday" binding:"required"` // YYYY-MM-DD
	HeightCm           float64  `json:"height_cm" binding:"required,gt=0"`
	WeightKg           float64  `json:"weight_kg" binding:"required,gt=0"`
	ActivityLevel      string   `json:"activity_level" binding:"required"`
	DietGoal           string   `json:"diet_goal" binding:"required"`
	DietaryPreferences []string `json:"dietary_preferences"`
	Allergies          []string `json:"allergies"`
	ProfilePicture     string   `json:"profile_picture"`
	MFAEnabled         bool     `json:"mfa_enabled"`
}

func CompleteOnboarding(c *gin.Context) {
	email := c.GetString("email")

	var input OnboardingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	birthday, err := time.Parse("2006-01-02", input.Birthday)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid birthday format. Use YYYY-MM-DD"})
		return
	}

	err = services.CompleteUserOnboarding(
		email,
		input.Gender,
		birthday,
		input.HeightCm,
		input.WeightKg,
		input.ActivityLevel,
		input.DietGoal,
		input.DietaryPreferences,
		input.Allergies,
		input.ProfilePicture,
		input.MFAEnabled,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "onboarding complete"})
}

func DeleteAccount(c *gin.Context) {
	email := c.GetString("email")
	if err := services.DeleteUser(email); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
