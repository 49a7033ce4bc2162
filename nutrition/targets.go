package nutrition

import "math"

// Fallback factors used when an activity level key is not in the table.
// They match the "sedentary" row and are defined here exactly once.
const (
	defaultActivityFactor  = 1.2
	defaultProteinPerKg    = 0.8
	kcalPerGramProtein     = 4.0
	kcalPerGramCarb        = 4.0
	kcalPerGramFat         = 9.0
)

// Diet goal keys accepted by the calculator. Anything else behaves like
// GoalMaintain.
const (
	GoalFatLoss    = "fat_loss"
	GoalMuscleGain = "muscle_gain"
	GoalRecomp     = "recomp"
	GoalMaintain   = "maintain"
)

// calorieAdjustments maps a diet goal to the kcal delta applied on top of TDEE.
var calorieAdjustments = map[string]float64{
	GoalFatLoss:    -500,
	GoalMuscleGain: 300,
	GoalRecomp:     -200,
}

type macroSplit struct {
	Protein float64
	Carbs   float64
	Fat     float64
}

// macroSplits maps a diet goal to its calorie allocation. Each row sums to 1.0.
var macroSplits = map[string]macroSplit{
	GoalFatLoss:    {Protein: 0.35, Carbs: 0.35, Fat: 0.30},
	GoalMuscleGain: {Protein: 0.30, Carbs: 0.50, Fat: 0.20},
	GoalRecomp:     {Protein: 0.40, Carbs: 0.35, Fat: 0.25},
}

// defaultSplit covers "maintain" and any unrecognised goal.
var defaultSplit = macroSplit{Protein: 0.25, Carbs: 0.50, Fat: 0.25}

// Profile is a snapshot of the fields the calculator needs. Numeric fields are
// pointers so an absent value is distinguishable from an explicit zero; an
// explicit zero (or negative) is passed through arithmetically, not rejected.
type Profile struct {
	Gender        string
	WeightKg      *float64
	HeightCm      *float64
	AgeYears      *float64
	ActivityLevel string
	DietGoal      string
}

// TargetResult is the daily calorie and macro target for one profile.
// BMR, TDEE and FinalTargetCalories are unrounded; the gram fields are each
// rounded to the nearest whole gram, so the reconstructed calorie sum can be
// off by a few kcal.
type TargetResult struct {
	BMR                 float64 `json:"bmr"`
	TDEE                float64 `json:"tdee"`
	FinalTargetCalories float64 `json:"final_target_calories"`
	ProteinGrams        float64 `json:"protein_grams"`
	CarbGrams           float64 `json:"carb_grams"`
	FatGrams            float64 `json:"fat_grams"`
}

// Calculator computes daily targets against an injected activity table.
// It holds no mutable state and is safe for concurrent use.
type Calculator struct {
	levels map[string]ActivityLevel
}

func NewCalculator(levels []ActivityLevel) *Calculator {
	m := make(map[string]ActivityLevel, len(levels))
	for _, l := range levels {
		m[l.Value] = l
	}
	return &Calculator{levels: m}
}

// Default is the process-wide calculator over the stock activity table.
var Default = NewCalculator(DefaultActivityLevels())

// ComputeBMR implements the Mifflin-St Jeor equation. For any gender other
// than "male" or "female" (including empty) it returns the mean of the two
// formulas. Inputs are not range-checked; out-of-domain values propagate.
func (c *Calculator) ComputeBMR(gender string, weightKg, heightCm, ageYears float64) float64 {
	base := 10*weightKg + 6.25*heightCm - 5*ageYears
	switch gender {
	case "male":
		return base + 5
	case "female":
		return base - 161
	default:
		return ((base + 5) + (base - 161)) / 2
	}
}

// ComputeTDEE scales a BMR by the activity factor for the given level key.
// Unknown or empty keys fall back to the sedentary factor.
func (c *Calculator) ComputeTDEE(bmr float64, activityLevel string) float64 {
	return bmr * c.activityFactor(activityLevel)
}

// RecommendedProtein returns a daily protein target in grams from body weight
// alone. Callable without computing a full TargetResult.
func (c *Calculator) RecommendedProtein(weightKg float64, activityLevel string) float64 {
	return weightKg * c.proteinFactor(activityLevel)
}

func (c *Calculator) activityFactor(key string) float64 {
	if l, ok := c.levels[key]; ok {
		return l.ActivityFactor
	}
	return defaultActivityFactor
}

func (c *Calculator) proteinFactor(key string) float64 {
	if l, ok := c.levels[key]; ok {
		return l.ProteinFactorPerKg
	}
	return defaultProteinPerKg
}

// ComputeDailyTargets runs the full profile -> BMR -> TDEE -> goal-adjusted
// calories -> macro grams pipeline. ok is false when any required field is
// absent; that is an "insufficient data" signal for the caller, not an error,
// and the zero TargetResult it comes with must be ignored.
func (c *Calculator) ComputeDailyTargets(p Profile) (TargetResult, bool) {
	if p.Gender == "" || p.WeightKg == nil || p.HeightCm == nil ||
		p.AgeYears == nil || p.ActivityLevel == "" || p.DietGoal == "" {
		return TargetResult{}, false
	}

	bmr := c.ComputeBMR(p.Gender, *p.WeightKg, *p.HeightCm, *p.AgeYears)
	tdee := c.ComputeTDEE(bmr, p.ActivityLevel)
	target := tdee + calorieAdjustments[p.DietGoal]

	split, ok := macroSplits[p.DietGoal]
	if !ok {
		split = defaultSplit
	}

	return TargetResult{
		BMR:                 bmr,
		TDEE:                tdee,
		FinalTargetCalories: target,
		ProteinGrams:        math.Round(target * split.Protein / kcalPerGramProtein),
		CarbGrams:           math.Round(target * split.Carbs / kcalPerGramCarb),
		FatGrams:            math.Round(target * split.Fat / kcalPerGramFat),
	}, true
}

// PerMealTargets divides a daily target evenly across mealsPerDay meals, for
// building per-meal macro lines in plan prompts. mealsPerDay < 1 is treated
// as 1. BMR and TDEE are not meaningful per meal and are zeroed.
func PerMealTargets(t TargetResult, mealsPerDay int) TargetResult {
	if mealsPerDay < 1 {
		mealsPerDay = 1
	}
	n := float64(mealsPerDay)
	return TargetResult{
		FinalTargetCalories: t.FinalTargetCalories / n,
		ProteinGrams:        t.ProteinGrams / n,
		CarbGrams:           t.CarbGrams / n,
		FatGrams:            t.FatGrams / n,
	}
}
