package services

import (
	"testing"
	"time"

	"nutriplan/models"
	"nutriplan/nutrition"
)

func TestProfileFromUser_Complete(t *testing.T) {
	h, w := 175.0, 70.0
	user := &models.User{
		Gender:        "male",
		Birthday:      time.Now().AddDate(-30, 0, -1),
		HeightCm:      &h,
		WeightKg:      &w,
		ActivityLevel: "sedentary",
		DietGoal:      "fat_loss",
	}

	p := ProfileFromUser(user)
	if p.AgeYears == nil || *p.AgeYears != 30 {
		t.Fatalf("AgeYears = %v, want 30", p.AgeYears)
	}

	if _, ok := nutrition.Default.ComputeDailyTargets(p); !ok {
		t.Error("complete user should yield computable targets")
	}
}

func TestProfileFromUser_MissingFieldsStayAbsent(t *testing.T) {
	// A user fresh from registration: no demographics at all.
	p := ProfileFromUser(&models.User{})

	if p.WeightKg != nil || p.HeightCm != nil || p.AgeYears != nil {
		t.Errorf("expected nil numerics for an empty user, got %+v", p)
	}
	if _, ok := nutrition.Default.ComputeDailyTargets(p); ok {
		t.Error("empty profile must hit the insufficient-data gate")
	}
}
