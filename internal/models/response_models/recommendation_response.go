package response_models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

type StartSessionResponse struct {
	SessionID    string `json:"session_id"`
	NextQuestion string `json:"next_question"`
}

// CostBreakdown itemizes the five estimated cost components of a trip.
type CostBreakdown struct {
	Transportation decimal.Decimal `json:"transportation"`
	Destination    decimal.Decimal `json:"destination"`
	Hotel          decimal.Decimal `json:"hotel"`
	Meals          decimal.Decimal `json:"meals"`
	LocalTransport decimal.Decimal `json:"local_transport"`
	Total          decimal.Decimal `json:"total"`
}

type MealSummary struct {
	Name    string          `json:"name"`
	Cuisine string          `json:"cuisine,omitempty"`
	Price   decimal.Decimal `json:"price"`
}

type DayMealPlan struct {
	Breakfast *MealSummary `json:"breakfast,omitempty"`
	Lunch     *MealSummary `json:"lunch,omitempty"`
	Dinner    *MealSummary `json:"dinner,omitempty"`
	Snack     *MealSummary `json:"snack,omitempty"`
}

type ItineraryActivity struct {
	Time          string          `json:"time"`
	Description   string          `json:"description"`
	DurationHours float64         `json:"duration_hours,omitempty"`
	Transport     string          `json:"transport,omitempty"`
	Cost          decimal.Decimal `json:"cost"`
}

// ItineraryDay is one day of the generated plan. DailyCost sums activity
// costs only; meal costs are carried in the breakdown.
type ItineraryDay struct {
	Day            int                 `json:"day"`
	Activities     []ItineraryActivity `json:"activities"`
	Meals          DayMealPlan         `json:"meals"`
	LocalTransport string              `json:"local_transport"`
	DailyCost      decimal.Decimal     `json:"daily_cost"`
}

type BonusAttraction struct {
	Name       string          `json:"name"`
	DistanceKM float64         `json:"distance_km"`
	Cost       decimal.Decimal `json:"cost"`
}

type BudgetSuggestion struct {
	Type            string          `json:"type"`
	Message         string          `json:"message"`
	EstimatedSaving decimal.Decimal `json:"estimated_saving"`
}

// Recommendation is the narrative half of the result, persisted as one opaque
// JSON blob on the session.
type Recommendation struct {
	Outcome          string            `json:"outcome"`
	Narrative        string            `json:"narrative"`
	Budget           decimal.Decimal   `json:"budget"`
	TotalCost        decimal.Decimal   `json:"total_cost"`
	RemainingBudget  decimal.Decimal   `json:"remaining_budget"`
	Breakdown        CostBreakdown     `json:"breakdown"`
	BonusAttractions []BonusAttraction `json:"bonus_attractions,omitempty"`
	Suggestions      []BudgetSuggestion `json:"suggestions,omitempty"`
	GeneratedAt      string            `json:"generated_at"`
}

type RecommendationResult struct {
	SessionID      string         `json:"session_id"`
	Recommendation Recommendation `json:"recommendation"`
	Itinerary      []ItineraryDay `json:"itinerary"`
}

// StoredRecommendation replays a previously persisted result. The blobs are
// passed through untouched so repeated reads are bit-for-bit identical.
type StoredRecommendation struct {
	SessionID          string          `json:"session_id"`
	Recommendation     json.RawMessage `json:"recommendation"`
	Itinerary          json.RawMessage `json:"itinerary"`
	TotalCost          decimal.Decimal `json:"total_cost"`
	MealCost           decimal.Decimal `json:"meal_cost"`
	LocalTransportCost decimal.Decimal `json:"local_transport_cost"`
}

type SubmitAnswerResponse struct {
	SessionID    string                `json:"session_id"`
	Complete     bool                  `json:"complete"`
	NextQuestion *QuestionResponse     `json:"next_question,omitempty"`
	Result       *RecommendationResult `json:"result,omitempty"`
}
