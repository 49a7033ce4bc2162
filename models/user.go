package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	UserID    string `gorm:"uniqueIndex"`
	Email     string `gorm:"uniqueIndex;not null"`
	Password  string `gorm:"not null"`
	FirstName string
	LastName  string

	// Demographics collected during onboarding. Height/weight are pointers so
	// an unfilled form field stays NULL instead of becoming a bogus zero.
	Gender        string
	Birthday      time.Time
	HeightCm      *float64
	WeightKg      *float64
	ActivityLevel string // key into the activity reference table
	DietGoal      string // fat_loss | muscle_gain | recomp | maintain

	DietaryPreferences string // comma-sep, e.g. "vegetarian,low_sodium"
	Allergies          string // comma-sep

	ProfilePicture string
	Onboarded      bool
	Disabled       bool

	MFAEnabled    bool
	MFACode       string
	ResetToken    string
	ResetTokenExp time.Time
}
