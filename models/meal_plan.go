package models

import (
	"time"

	"gorm.io/gorm"
)

// One generated plan (usually a week). PublicID is what clients reference;
// the numeric ID stays internal.
type MealPlan struct {
	gorm.Model
	PublicID string `gorm:"type:varchar(36);uniqueIndex;not null"`
	UserID   uint   `gorm:"index;not null"`

	StartDate time.Time
	Days      int
	Status    string // "generating" | "ready" | "failed"

	// Target snapshot the plan was generated against.
	TargetCalories float64
	TargetProtein  float64
	TargetCarbs    float64
	TargetFat      float64

	Meals []PlannedMeal
}

// PlannedMeal is a single AI-suggested meal with its macro estimate.
type PlannedMeal struct {
	gorm.Model
	MealPlanID uint `gorm:"index;not null"`

	DayIndex int    // 0-based day within the plan
	Slot     string // "breakfast" | "lunch" | "dinner" | "snack"
	Name     string
	Recipe   string // short preparation notes from the model

	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64

	Ingredients string // comma-sep ingredient list
}
