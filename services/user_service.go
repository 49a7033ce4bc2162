package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"nutriplan/config"
	"nutriplan/models"
	"nutriplan/utils"
)

type ProfileInput struct {
	FirstName          string   `json:"first_name"`
	LastName           string   `json:"last_name"`
	Birthday           string   `json:"birthday"` // sent as YYYY-MM-DD
	Gender             string   `json:"gender"`
	HeightCm           *float64 `json:"height_cm"`
	WeightKg           *float64 `json:"weight_kg"`
	ActivityLevel      string   `json:"activity_level"`
	DietGoal           string   `json:"diet_goal"`
	DietaryPreferences string   `json:"dietary_preferences"`
	Allergies          string   `json:"allergies"`
	ProfilePicture     string   `json:"profile_picture"`
	Onboarded          bool     `json:"onboarded"`
}

func GetUserProfile(email string) (map[string]interface{}, error) {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return nil, errors.New("user not found or disabled")
	}

	age := 0
	if !user.Birthday.IsZero() {
		age = utils.CalculateAge(user.Birthday)
	}

	profile := map[string]interface{}{
		"id":                  user.ID,
		"user_id":             user.UserID,
		"email":               user.Email,
		"first_name":          user.FirstName,
		"last_name":           user.LastName,
		"birthday":            user.Birthday.Format("2006-01-02"),
		"age":                 age,
		"gender":              user.Gender,
		"height_cm":           user.HeightCm,
		"weight_kg":           user.WeightKg,
		"activity_level":      user.ActivityLevel,
		"diet_goal":           user.DietGoal,
		"dietary_preferences": user.DietaryPreferences,
		"allergies":           user.Allergies,
		"profile_picture":     user.ProfilePicture,
		"mfa_enabled":         user.MFAEnabled,
		"onboarded":           user.Onboarded,
	}

	if user.HeightCm != nil && user.WeightKg != nil {
		if bmi, err := utils.CalculateBMI(*user.HeightCm, *user.WeightKg); err == nil {
			profile["bmi"] = bmi
			profile["bmi_category"] = utils.BMICategory(bmi)
		}
	}

	return profile, nil
}

func UpdateUserProfile(email string, input ProfileInput) error {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return errors.New("user not found or disabled")
	}

	if input.FirstName != "" {
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		user.LastName = input.LastName
	}
	if input.Birthday != "" {
		birthday, err := time.Parse("2006-01-02", input.Birthday)
		if err == nil {
			user.Birthday = birthday
		}
	}
	if input.Gender != "" {
		user.Gender = input.Gender
	}
	if input.HeightCm != nil && *input.HeightCm > 0 {
		user.HeightCm = input.HeightCm
	}
	if input.WeightKg != nil && *input.WeightKg > 0 {
		user.WeightKg = input.WeightKg
	}
	if input.ActivityLevel != "" {
		user.ActivityLevel = input.ActivityLevel
	}
	if input.DietGoal != "" {
		user.DietGoal = input.DietGoal
	}
	if input.DietaryPreferences != "" {
		user.DietaryPreferences = input.DietaryPreferences
	}
	if input.Allergies != "" {
		user.Allergies = input.Allergies
	}
	if input.ProfilePicture != "" {
		url, err := utils.UploadBase64ImageToS3(input.ProfilePicture, user.Email)
		if err != nil {
			return fmt.Errorf("failed to upload image: %v", err)
		}
		user.ProfilePicture = url
	}

	user.Onboarded = input.Onboarded

	if err := config.DB.Save(&user).Error; err != nil {
		return err
	}

	// Demographics may have changed; keep the stored targets in sync.
	_, _, err := RefreshDailyTargets(&user)
	return err
}

func CompleteUserOnboarding(
	email string,
	gender string,
	birthday time.Time,
	heightCm, weightKg float64,
	activityLevel, dietGoal string,
	dietaryPreferences, allergies []string,
	profilePictureBase64 string,
	mfaEnabled bool,
) error {
	var user models.User
	if err := config.DB.
		Where("email = ? AND disabled = ?", email, false).
		First(&user).Error; err != nil {
		return errors.New("user not found or disabled")
	}

	user.Gender = gender
	user.Birthday = birthday
	user.HeightCm = &heightCm
	user.WeightKg = &weightKg
	user.ActivityLevel = activityLevel
	user.DietGoal = dietGoal
	user.DietaryPreferences = strings.Join(dietaryPreferences, ",")
	user.Allergies = strings.Join(allergies, ",")
	user.MFAEnabled = mfaEnabled

	if profilePictureBase64 != "" {
		url, err := utils.UploadBase64ImageToS3(profilePictureBase64, "onboarding/"+user.Email)
		if err != nil {
			return fmt.Errorf("failed to upload profile picture: %w", err)
		}
		user.ProfilePicture = url
	}

	user.Onboarded = true

	if err := config.DB.Save(&user).Error; err != nil {
		return err
	}

	_, _, err := RefreshDailyTargets(&user)
	return err
}
