package nutrition

import (
	"math"
	"testing"
)

func fptr(v float64) *float64 { return &v }

// makeProfile builds a fully-populated profile; individual tests blank out
// fields to exercise the insufficient-data gate.
func makeProfile(gender string, weightKg, heightCm, ageYears float64, activityLevel, dietGoal string) Profile {
	return Profile{
		Gender:        gender,
		WeightKg:      fptr(weightKg),
		HeightCm:      fptr(heightCm),
		AgeYears:      fptr(ageYears),
		ActivityLevel: activityLevel,
		DietGoal:      dietGoal,
	}
}

/* ─── BMR ────────────────────────────────────────────────────────────── */

// TestComputeBMR verifies the Mifflin-St Jeor formula for both sexes and the
// male/female mean used for any other gender value.
//
// Inputs 70kg/175cm/30y: male = 10*70+6.25*175-5*30+5 = 1673.75,
// female = 1507.75, mean = 1590.75.
func TestComputeBMR(t *testing.T) {
	cases := []struct {
		gender string
		want   float64
	}{
		{"male", 1673.75},
		{"female", 1507.75},
		{"other", 1590.75},
		{"", 1590.75},
		{"nonbinary", 1590.75},
	}

	for _, tc := range cases {
		t.Run("gender="+tc.gender, func(t *testing.T) {
			got := Default.ComputeBMR(tc.gender, 70, 175, 30)
			if got != tc.want {
				t.Errorf("ComputeBMR(%q, 70, 175, 30) = %v, want %v", tc.gender, got, tc.want)
			}
		})
	}
}

// TestComputeBMR_NoRangeValidation verifies that out-of-domain inputs pass
// through arithmetically instead of being rejected. Validation belongs to the
// form layer, not here.
func TestComputeBMR_NoRangeValidation(t *testing.T) {
	got := Default.ComputeBMR("male", -70, 175, 30)
	want := 10*(-70.0) + 6.25*175 - 5*30 + 5
	if got != want {
		t.Errorf("ComputeBMR with negative weight = %v, want %v", got, want)
	}
}

/* ─── TDEE ───────────────────────────────────────────────────────────── */

// TestComputeTDEE verifies the activity-factor lookup and the sedentary
// fallback for unknown and empty keys.
func TestComputeTDEE(t *testing.T) {
	cases := []struct {
		level string
		want  float64
	}{
		{"sedentary", 1673.75 * 1.2},
		{"moderate", 1673.75 * 1.55},
		{"very_active", 1673.75 * 1.9},
		{"no_such_level", 1673.75 * 1.2},
		{"", 1673.75 * 1.2},
	}

	for _, tc := range cases {
		t.Run("level="+tc.level, func(t *testing.T) {
			got := Default.ComputeTDEE(1673.75, tc.level)
			if got != tc.want {
				t.Errorf("ComputeTDEE(1673.75, %q) = %v, want %v", tc.level, got, tc.want)
			}
		})
	}
}

func TestComputeTDEE_SedentaryExact(t *testing.T) {
	if got := Default.ComputeTDEE(1673.75, "sedentary"); got != 2008.5 {
		t.Errorf("ComputeTDEE(1673.75, sedentary) = %v, want 2008.5", got)
	}
}

/* ─── Protein recommendation ─────────────────────────────────────────── */

// TestRecommendedProtein verifies the per-kg protein factors and the
// 0.8 g/kg fallback; it must work without a full target computation.
func TestRecommendedProtein(t *testing.T) {
	cases := []struct {
		level string
		want  float64
	}{
		{"sedentary", 70 * 0.8},
		{"active", 70 * 1.6},
		{"no_such_level", 70 * 0.8},
		{"", 70 * 0.8},
	}

	for _, tc := range cases {
		t.Run("level="+tc.level, func(t *testing.T) {
			got := Default.RecommendedProtein(70, tc.level)
			if got != tc.want {
				t.Errorf("RecommendedProtein(70, %q) = %v, want %v", tc.level, got, tc.want)
			}
		})
	}
}

/* ─── Insufficient-data gate ─────────────────────────────────────────── */

// TestComputeDailyTargets_MissingFields verifies that ok=false comes back
// when any required field is absent, regardless of the rest of the profile.
func TestComputeDailyTargets_MissingFields(t *testing.T) {
	cases := []struct {
		name  string
		mutFn func(p *Profile)
	}{
		{"empty Gender", func(p *Profile) { p.Gender = "" }},
		{"nil WeightKg", func(p *Profile) { p.WeightKg = nil }},
		{"nil HeightCm", func(p *Profile) { p.HeightCm = nil }},
		{"nil AgeYears", func(p *Profile) { p.AgeYears = nil }},
		{"empty ActivityLevel", func(p *Profile) { p.ActivityLevel = "" }},
		{"empty DietGoal", func(p *Profile) { p.DietGoal = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := makeProfile("male", 70, 175, 30, "sedentary", GoalFatLoss)
			tc.mutFn(&p)
			result, ok := Default.ComputeDailyTargets(p)
			if ok {
				t.Errorf("expected ok=false when %s, got ok=true", tc.name)
			}
			if result != (TargetResult{}) {
				t.Errorf("expected zero TargetResult with ok=false, got %+v", result)
			}
		})
	}
}

/* ─── Full pipeline ──────────────────────────────────────────────────── */

// TestComputeDailyTargets_FatLoss walks the fat_loss pipeline end to end with
// hand-computed expectations.
//
// male 70kg/175cm/30y sedentary: BMR=1673.75, TDEE=2008.5, target=1508.5.
// protein = round(1508.5*0.35/4) = round(131.99) = 132
// carbs   = round(1508.5*0.35/4) = 132
// fat     = round(1508.5*0.30/9) = round(50.28) = 50
func TestComputeDailyTargets_FatLoss(t *testing.T) {
	p := makeProfile("male", 70, 175, 30, "sedentary", GoalFatLoss)
	r, ok := Default.ComputeDailyTargets(p)
	if !ok {
		t.Fatal("expected ok=true for a complete profile")
	}

	if r.BMR != 1673.75 {
		t.Errorf("BMR = %v, want 1673.75", r.BMR)
	}
	if r.TDEE != 2008.5 {
		t.Errorf("TDEE = %v, want 2008.5", r.TDEE)
	}
	if r.FinalTargetCalories != r.TDEE-500 {
		t.Errorf("FinalTargetCalories = %v, want TDEE-500 = %v", r.FinalTargetCalories, r.TDEE-500)
	}
	if r.ProteinGrams != 132 {
		t.Errorf("ProteinGrams = %v, want 132", r.ProteinGrams)
	}
	if r.CarbGrams != 132 {
		t.Errorf("CarbGrams = %v, want 132", r.CarbGrams)
	}
	if r.FatGrams != 50 {
		t.Errorf("FatGrams = %v, want 50", r.FatGrams)
	}
}

// TestComputeDailyTargets_GoalAdjustments verifies the kcal delta per goal,
// including the maintain/unknown passthrough.
func TestComputeDailyTargets_GoalAdjustments(t *testing.T) {
	cases := []struct {
		goal string
		adj  float64
	}{
		{GoalFatLoss, -500},
		{GoalMuscleGain, 300},
		{GoalRecomp, -200},
		{GoalMaintain, 0},
		{"bulk_hard", 0},
	}

	for _, tc := range cases {
		t.Run("goal="+tc.goal, func(t *testing.T) {
			p := makeProfile("female", 65, 168, 35, "moderate", tc.goal)
			r, ok := Default.ComputeDailyTargets(p)
			if !ok {
				t.Fatal("expected ok=true")
			}
			if r.FinalTargetCalories != r.TDEE+tc.adj {
				t.Errorf("FinalTargetCalories = %v, want TDEE%+v = %v",
					r.FinalTargetCalories, tc.adj, r.TDEE+tc.adj)
			}
		})
	}
}

// TestComputeDailyTargets_MacroRoundTrip reconstructs calories from the
// rounded gram values. Each macro rounds independently, so the sum drifts a
// little; these fixtures were chosen to stay inside the documented slack.
func TestComputeDailyTargets_MacroRoundTrip(t *testing.T) {
	cases := []struct {
		goal  string
		level string
	}{
		{GoalFatLoss, "sedentary"},
		{GoalMuscleGain, "sedentary"},
		{GoalRecomp, "very_active"},
		{GoalMaintain, "moderate"},
	}

	for _, tc := range cases {
		t.Run("goal="+tc.goal, func(t *testing.T) {
			p := makeProfile("male", 60, 160, 28, tc.level, tc.goal)
			r, ok := Default.ComputeDailyTargets(p)
			if !ok {
				t.Fatal("expected ok=true")
			}
			sum := r.ProteinGrams*4 + r.CarbGrams*4 + r.FatGrams*9
			if math.Abs(sum-r.FinalTargetCalories) >= 2 {
				t.Errorf("macro kcal sum %v deviates from target %v by %v",
					sum, r.FinalTargetCalories, math.Abs(sum-r.FinalTargetCalories))
			}
		})
	}
}

// TestComputeDailyTargets_Idempotent verifies two calls with the same
// snapshot are bit-identical; the calculator holds no hidden state.
func TestComputeDailyTargets_Idempotent(t *testing.T) {
	p := makeProfile("female", 58.5, 162.5, 27, "light", GoalRecomp)
	r1, ok1 := Default.ComputeDailyTargets(p)
	r2, ok2 := Default.ComputeDailyTargets(p)
	if ok1 != ok2 || r1 != r2 {
		t.Errorf("results differ across identical calls: %+v vs %+v", r1, r2)
	}
}

// TestComputeDailyTargets_UnroundedRawFields verifies BMR/TDEE/target stay
// unrounded while grams are whole numbers. Downstream display code rounds the
// raw fields itself.
func TestComputeDailyTargets_UnroundedRawFields(t *testing.T) {
	p := makeProfile("male", 70, 175, 30, "sedentary", GoalFatLoss)
	r, _ := Default.ComputeDailyTargets(p)

	if r.BMR == math.Round(r.BMR) {
		t.Errorf("fixture should produce a fractional BMR, got %v", r.BMR)
	}
	for name, g := range map[string]float64{
		"ProteinGrams": r.ProteinGrams,
		"CarbGrams":    r.CarbGrams,
		"FatGrams":     r.FatGrams,
	} {
		if g != math.Round(g) {
			t.Errorf("%s = %v, want a whole number", name, g)
		}
	}
}

/* ─── Injected tables ────────────────────────────────────────────────── */

// TestNewCalculator_SubstitutedTable verifies the table is injected rather
// than global: a custom table changes factors, and keys missing from it fall
// back to the stock defaults.
func TestNewCalculator_SubstitutedTable(t *testing.T) {
	calc := NewCalculator([]ActivityLevel{
		{Value: "desk", ActivityFactor: 1.3, ProteinFactorPerKg: 1.1},
	})

	if got := calc.ComputeTDEE(1000, "desk"); got != 1300 {
		t.Errorf("ComputeTDEE with custom table = %v, want 1300", got)
	}
	if got := calc.ComputeTDEE(1000, "sedentary"); got != 1200 {
		t.Errorf("ComputeTDEE fallback = %v, want 1200", got)
	}
	if got := calc.RecommendedProtein(80, "desk"); got != 88 {
		t.Errorf("RecommendedProtein with custom table = %v, want 88", got)
	}
	if got := calc.RecommendedProtein(80, "sedentary"); got != 64 {
		t.Errorf("RecommendedProtein fallback = %v, want 64", got)
	}
}

/* ─── Per-meal split ─────────────────────────────────────────────────── */

func TestPerMealTargets(t *testing.T) {
	daily := TargetResult{FinalTargetCalories: 2100, ProteinGrams: 150, CarbGrams: 240, FatGrams: 60}

	perMeal := PerMealTargets(daily, 3)
	if perMeal.FinalTargetCalories != 700 || perMeal.ProteinGrams != 50 ||
		perMeal.CarbGrams != 80 || perMeal.FatGrams != 20 {
		t.Errorf("PerMealTargets(3) = %+v", perMeal)
	}

	// mealsPerDay < 1 is treated as a single meal
	whole := PerMealTargets(daily, 0)
	if whole.FinalTargetCalories != 2100 {
		t.Errorf("PerMealTargets(0) calories = %v, want 2100", whole.FinalTargetCalories)
	}
}
