package models

import "gorm.io/gorm"

// DailyTarget is the latest computed calorie/macro target for a user,
// refreshed whenever the profile changes. BMR/TDEE/Calories are stored
// unrounded; the gram columns are whole grams.
type DailyTarget struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex;not null"`

	BMR      float64
	TDEE     float64
	Calories float64 // goal-adjusted daily target
	Protein  float64 // g
	Carbs    float64 // g
	Fat      float64 // g

	DietGoal      string // goal the target was computed for
	ActivityLevel string
}
