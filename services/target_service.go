package services

import (
	"errors"

	"nutriplan/config"
	"nutriplan/models"
	"nutriplan/nutrition"
	"nutriplan/utils"

	"gorm.io/gorm"
)

// ProfileFromUser maps a stored user onto a calculator profile. Fields the
// user never filled in stay absent so the calculator can signal insufficient
// data instead of computing against zeros.
func ProfileFromUser(user *models.User) nutrition.Profile {
	p := nutrition.Profile{
		Gender:        user.Gender,
		WeightKg:      user.WeightKg,
		HeightCm:      user.HeightCm,
		ActivityLevel: user.ActivityLevel,
		DietGoal:      user.DietGoal,
	}
	if !user.Birthday.IsZero() {
		age := float64(utils.CalculateAge(user.Birthday))
		p.AgeYears = &age
	}
	return p
}

// RefreshDailyTargets recomputes the user's targets from the current profile
// and upserts the stored row. ok=false means the profile is still incomplete;
// any stale row is removed so clients never see targets computed from old
// demographics.
func RefreshDailyTargets(user *models.User) (*models.DailyTarget, bool, error) {
	result, ok := nutrition.Default.ComputeDailyTargets(ProfileFromUser(user))
	if !ok {
		// hard delete: a soft-deleted row would still hold the user_id unique index
		err := config.DB.Unscoped().Where("user_id = ?", user.ID).Delete(&models.DailyTarget{}).Error
		return nil, false, err
	}

	var target models.DailyTarget
	err := config.DB.Where("user_id = ?", user.ID).First(&target).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	target.UserID = user.ID
	target.BMR = result.BMR
	target.TDEE = result.TDEE
	target.Calories = result.FinalTargetCalories
	target.Protein = result.ProteinGrams
	target.Carbs = result.CarbGrams
	target.Fat = result.FatGrams
	target.DietGoal = user.DietGoal
	target.ActivityLevel = user.ActivityLevel

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &target, true, config.DB.Create(&target).Error
	}
	return &target, true, config.DB.Save(&target).Error
}

// GetDailyTargets returns the stored targets, recomputing first so the row
// always reflects the latest profile.
func GetDailyTargets(user *models.User) (*models.DailyTarget, bool, error) {
	return RefreshDailyTargets(user)
}

// RecommendedProtein exposes the weight-only protein target for callers that
// don't need (or can't yet compute) full macro targets.
func RecommendedProtein(user *models.User) (float64, bool) {
	if user.WeightKg == nil {
		return 0, false
	}
	return nutrition.Default.RecommendedProtein(*user.WeightKg, user.ActivityLevel), true
}

// ActivityLevels returns the reference table the onboarding form renders.
func ActivityLevels() []nutrition.ActivityLevel {
	return nutrition.DefaultActivityLevels()
}
