package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"nutriplan/config"
	"nutriplan/models"
	"nutriplan/nutrition"

	"github.com/google/uuid"
)

type MealPlanService struct {
	client  *http.Client
	apiKey  string
	baseURL string
	hub     *RealtimeHub
}

func NewMealPlanService(hub *RealtimeHub) *MealPlanService {
	return &MealPlanService{
		client:  &http.Client{Timeout: 60 * time.Second},
		apiKey:  os.Getenv("GEMINI_API_KEY"),
		baseURL: "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent",
		hub:     hub,
	}
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// planResponse is the JSON shape the prompt asks the model to return.
type planResponse struct {
	Days []struct {
		Meals []struct {
			Slot        string   `json:"slot"`
			Name        string   `json:"name"`
			Recipe      string   `json:"recipe"`
			Calories    float64  `json:"calories"`
			Protein     float64  `json:"protein"`
			Carbs       float64  `json:"carbs"`
			Fat         float64  `json:"fat"`
			Ingredients []string `json:"ingredients"`
		} `json:"meals"`
	} `json:"days"`
}

// GeneratePlan asks the model for a plan hitting the user's current targets
// and persists it. The profile must be complete enough to compute targets.
func (s *MealPlanService) GeneratePlan(user *models.User, days, mealsPerDay int) (*models.MealPlan, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}
	if days < 1 || days > 14 {
		days = 7
	}
	if mealsPerDay < 1 || mealsPerDay > 6 {
		mealsPerDay = 3
	}

	target, ok, err := RefreshDailyTargets(user)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("profile incomplete, cannot compute targets")
	}

	plan := &models.MealPlan{
		PublicID:       uuid.NewString(),
		UserID:         user.ID,
		StartDate:      time.Now(),
		Days:           days,
		Status:         "generating",
		TargetCalories: target.Calories,
		TargetProtein:  target.Protein,
		TargetCarbs:    target.Carbs,
		TargetFat:      target.Fat,
	}
	if err := config.DB.Create(plan).Error; err != nil {
		return nil, err
	}
	s.hub.Broadcast(user.ID, map[string]any{"kind": "mealplan.generating", "plan_id": plan.PublicID})

	prompt := s.buildPlanPrompt(user, target, days, mealsPerDay)
	raw, err := s.prompt(prompt)
	if err != nil {
		s.failPlan(plan, user.ID)
		return nil, err
	}

	var parsed planResponse
	if err := json.Unmarshal([]byte(cleanModelResponse(raw)), &parsed); err != nil {
		s.failPlan(plan, user.ID)
		return nil, fmt.Errorf("decode plan response: %v", err)
	}
	if len(parsed.Days) == 0 {
		s.failPlan(plan, user.ID)
		return nil, fmt.Errorf("empty plan from model")
	}

	for i, day := range parsed.Days {
		if i >= days {
			break
		}
		for _, m := range day.Meals {
			pm := &models.PlannedMeal{
				MealPlanID:  plan.ID,
				DayIndex:    i,
				Slot:        strings.ToLower(m.Slot),
				Name:        m.Name,
				Recipe:      m.Recipe,
				Calories:    m.Calories,
				Protein:     m.Protein,
				Carbs:       m.Carbs,
				Fat:         m.Fat,
				Ingredients: strings.Join(m.Ingredients, ","),
			}
			if err := config.DB.Create(pm).Error; err != nil {
				s.failPlan(plan, user.ID)
				return nil, err
			}
		}
	}

	plan.Status = "ready"
	if err := config.DB.Save(plan).Error; err != nil {
		return nil, err
	}
	s.hub.Broadcast(user.ID, map[string]any{"kind": "mealplan.ready", "plan_id": plan.PublicID})

	var populated models.MealPlan
	if err := config.DB.Preload("Meals").First(&populated, plan.ID).Error; err != nil {
		return nil, err
	}
	return &populated, nil
}

func (s *MealPlanService) failPlan(plan *models.MealPlan, userID uint) {
	plan.Status = "failed"
	_ = config.DB.Save(plan).Error
	s.hub.Broadcast(userID, map[string]any{"kind": "mealplan.failed", "plan_id": plan.PublicID})
}

func (s *MealPlanService) GetPlan(userID uint, publicID string) (*models.MealPlan, error) {
	var plan models.MealPlan
	err := config.DB.Preload("Meals").
		Where("user_id = ? AND public_id = ?", userID, publicID).
		First(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (s *MealPlanService) ListPlans(userID uint) ([]models.MealPlan, error) {
	var plans []models.MealPlan
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&plans).Error
	return plans, err
}

func (s *MealPlanService) buildPlanPrompt(user *models.User, target *models.DailyTarget, days, mealsPerDay int) string {
	perMeal := nutrition.PerMealTargets(nutrition.TargetResult{
		FinalTargetCalories: target.Calories,
		ProteinGrams:        target.Protein,
		CarbGrams:           target.Carbs,
		FatGrams:            target.Fat,
	}, mealsPerDay)

	var sb bytes.Buffer
	sb.WriteString("You are a professional nutritionist. Create a meal plan as strict JSON.\n\n")

	sb.WriteString("USER PROFILE:\n")
	if user.Gender != "" {
		sb.WriteString(fmt.Sprintf("- Gender: %s\n", user.Gender))
	}
	if user.ActivityLevel != "" {
		sb.WriteString(fmt.Sprintf("- Activity level: %s\n", user.ActivityLevel))
	}
	if user.DietGoal != "" {
		sb.WriteString(fmt.Sprintf("- Goal: %s\n", user.DietGoal))
	}
	if user.DietaryPreferences != "" {
		sb.WriteString(fmt.Sprintf("- Dietary preferences: %s\n", user.DietaryPreferences))
	}
	if user.Allergies != "" {
		sb.WriteString(fmt.Sprintf("- Allergies (must avoid): %s\n", user.Allergies))
	}

	sb.WriteString("\nDAILY TARGETS:\n")
	sb.WriteString(fmt.Sprintf("- Calories: %.0f kcal\n", target.Calories))
	sb.WriteString(fmt.Sprintf("- Protein: %.0fg, Carbs: %.0fg, Fat: %.0fg\n",
		target.Protein, target.Carbs, target.Fat))
	sb.WriteString(fmt.Sprintf("- Per meal (approx): %.0f kcal, %.0fg protein, %.0fg carbs, %.0fg fat\n",
		perMeal.FinalTargetCalories, perMeal.ProteinGrams, perMeal.CarbGrams, perMeal.FatGrams))

	sb.WriteString(fmt.Sprintf("\nPLAN: %d days, %d meals per day.\n\n", days, mealsPerDay))
	sb.WriteString(`Respond with ONLY this JSON structure, no markdown, no commentary:
{"days":[{"meals":[{"slot":"breakfast","name":"...","recipe":"...","calories":0,"protein":0,"carbs":0,"fat":0,"ingredients":["..."]}]}]}
`)
	sb.WriteString("Each day's meals should sum close to the daily targets.")

	return sb.String()
}

func (s *MealPlanService) prompt(prompt string) (string, error) {
	body := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	}
	b, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshal request: %v", err)
	}

	url := fmt.Sprintf("%s?key=%s", s.baseURL, s.apiKey)
	req, err := http.NewRequest("POST", url, bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("model request error: %v", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read model response: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("model api error (%d): %s", resp.StatusCode, string(respBytes))
	}

	var out geminiResponse
	if err := json.Unmarshal(respBytes, &out); err != nil {
		return "", fmt.Errorf("decode model response: %v", err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no candidates in model response")
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}

// cleanModelResponse strips markdown fences and trims to the outermost JSON
// object; models wrap JSON in ```json blocks despite instructions.
func cleanModelResponse(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```", "")
	response = strings.TrimSpace(response)

	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start != -1 && end != -1 && end > start {
		response = response[start : end+1]
	}
	return response
}
