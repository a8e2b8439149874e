package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FoodCandidate is a meal item suggested by the model. Never persisted directly.
type FoodCandidate struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

type ExerciseCandidate struct {
	ActivityName    string  `json:"activityName"`
	CaloriesBurned  float64 `json:"caloriesBurned"`
	DurationMinutes float64 `json:"durationMinutes"`
}

// modelNumber accepts a JSON number or a number wrapped in quotes, which
// models emit often enough ("calories": "140").
type modelNumber float64

func (n *modelNumber) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		return nil
	}
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = strings.TrimSpace(unquoted)
		if raw == "" {
			return nil
		}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("not a number: %s", b)
	}
	*n = modelNumber(v)
	return nil
}

func (c *FoodCandidate) UnmarshalJSON(b []byte) error {
	var raw struct {
		Name     string      `json:"name"`
		Calories modelNumber `json:"calories"`
		Protein  modelNumber `json:"protein"`
		Carbs    modelNumber `json:"carbs"`
		Fat      modelNumber `json:"fat"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*c = FoodCandidate{
		Name:     raw.Name,
		Calories: float64(raw.Calories),
		Protein:  float64(raw.Protein),
		Carbs:    float64(raw.Carbs),
		Fat:      float64(raw.Fat),
	}
	return nil
}

func (c *ExerciseCandidate) UnmarshalJSON(b []byte) error {
	var raw struct {
		ActivityName    string      `json:"activityName"`
		CaloriesBurned  modelNumber `json:"caloriesBurned"`
		DurationMinutes modelNumber `json:"durationMinutes"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*c = ExerciseCandidate{
		ActivityName:    raw.ActivityName,
		CaloriesBurned:  float64(raw.CaloriesBurned),
		DurationMinutes: float64(raw.DurationMinutes),
	}
	return nil
}

type AIService struct {
	gen        Generator
	recognizer Recognizer
}

// NewAIService wires a generator and an optional photo recognizer.
func NewAIService(gen Generator, recognizer Recognizer) *AIService {
	return &AIService{gen: gen, recognizer: recognizer}
}

func foodPrompt(text string) string {
	return fmt.Sprintf(`You are a nutritionist API. Analyze the text: %q.
Identify food items. Estimate calories, protein, carbs, and fat.

IMPORTANT: Return ONLY a valid JSON array. Do not use Markdown. Do not write explanations.

Example Output:
[
    { "name": "Boiled Egg (2)", "calories": 140, "protein": 12, "carbs": 1, "fat": 10 },
    { "name": "Toast (1 slice)", "calories": 80, "protein": 3, "carbs": 15, "fat": 1 }
]`, text)
}

func exercisePrompt(text string) string {
	return fmt.Sprintf(`You are a fitness API. Analyze the text: %q.
Identify the activity. If reps are given, estimate duration and calories.

IMPORTANT: Return ONLY a valid JSON array. Do not use Markdown. Do not write explanations.

Example Output:
[ { "activityName": "Pushups", "caloriesBurned": 50, "durationMinutes": 10 } ]`, text)
}

// CleanModelJSON strips markdown code fences and surrounding whitespace.
func CleanModelJSON(reply string) string {
	reply = strings.ReplaceAll(reply, "```json", "")
	reply = strings.ReplaceAll(reply, "```JSON", "")
	reply = strings.ReplaceAll(reply, "```", "")
	return strings.TrimSpace(reply)
}

// parseCandidates decodes a JSON array, accepting a lone object as a one-item array.
func parseCandidates[T any](reply string) ([]T, error) {
	cleaned := CleanModelJSON(reply)

	var items []T
	if err := json.Unmarshal([]byte(cleaned), &items); err == nil {
		if items == nil {
			items = []T{}
		}
		return items, nil
	}

	var single T
	if strings.HasPrefix(cleaned, "{") {
		if err := json.Unmarshal([]byte(cleaned), &single); err == nil {
			return []T{single}, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrAIUnparseable, preview([]byte(cleaned)))
}

func (s *AIService) AnalyzeFood(ctx context.Context, text string) ([]FoodCandidate, error) {
	reply, err := s.gen.Generate(ctx, foodPrompt(text))
	if err != nil {
		return nil, err
	}
	return parseCandidates[FoodCandidate](reply)
}

func (s *AIService) AnalyzeExercise(ctx context.Context, text string) ([]ExerciseCandidate, error) {
	reply, err := s.gen.Generate(ctx, exercisePrompt(text))
	if err != nil {
		return nil, err
	}
	return parseCandidates[ExerciseCandidate](reply)
}

// AnalyzeFoodPhoto labels the photo and feeds the labels through AnalyzeFood.
func (s *AIService) AnalyzeFoodPhoto(ctx context.Context, dataURI string) ([]FoodCandidate, error) {
	if s.recognizer == nil {
		return nil, ErrRecognitionDisabled
	}
	labels, err := s.recognizer.Labels(ctx, dataURI)
	if err != nil {
		return nil, err
	}
	return s.AnalyzeFood(ctx, "A photo of a meal showing: "+strings.Join(labels, ", "))
}
