package utils

import (
	"math"
	"testing"
	"time"
)

func TestCalculateBMI(t *testing.T) {
	bmi, err := CalculateBMI(175, 70)
	if err != nil {
		t.Fatalf("CalculateBMI: %v", err)
	}
	// 70 / 1.75^2 = 22.857...
	if math.Abs(bmi-22.857) > 0.01 {
		t.Errorf("BMI = %v, want ~22.857", bmi)
	}

	if _, err := CalculateBMI(0, 70); err == nil {
		t.Error("expected error for zero height")
	}
	if _, err := CalculateBMI(175, 500); err == nil {
		t.Error("expected error for implausible weight")
	}
}

func TestBMICategory(t *testing.T) {
	cases := []struct {
		bmi  float64
		want string
	}{
		{17.0, "Underweight"},
		{22.0, "Normal weight"},
		{27.5, "Overweight"},
		{32.0, "Obesity class I"},
		{45.0, "Obesity class III"},
	}
	for _, tc := range cases {
		if got := BMICategory(tc.bmi); got != tc.want {
			t.Errorf("BMICategory(%v) = %q, want %q", tc.bmi, got, tc.want)
		}
	}
}

func TestCalculateAge(t *testing.T) {
	// 30 years ago yesterday: birthday already passed this year.
	b := time.Now().AddDate(-30, 0, -1)
	if got := CalculateAge(b); got != 30 {
		t.Errorf("CalculateAge = %d, want 30", got)
	}

	// 30 years minus a few days: birthday still ahead, so 29.
	b = time.Now().AddDate(-30, 0, 5)
	if got := CalculateAge(b); got != 29 {
		t.Errorf("CalculateAge = %d, want 29", got)
	}

	if got := CalculateAge(time.Now().AddDate(1, 0, 0)); got != 0 {
		t.Errorf("CalculateAge for future birthday = %d, want 0", got)
	}
}
