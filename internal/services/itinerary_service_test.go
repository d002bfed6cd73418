package services

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/HeangSokmeng/camtour-api-sub000/internal/models/db_models"
)

func newTestItineraryService() ItineraryServiceInterface {
	return NewItineraryService(&fakeMealRepo{meals: testMeals()})
}

func TestItineraryDayCountMatchesDuration(t *testing.T) {
	svc := newTestItineraryService()
	destination := testDestinations()

	for _, duration := range []int{1, 2, 3, 7} {
		session := scenarioASession()
		session.DurationDays = duration

		days, err := svc.BuildItinerary(context.Background(), session, &destination[0])
		if err != nil {
			t.Fatalf("BuildItinerary failed for duration %d: %v", duration, err)
		}
		if len(days) != duration {
			t.Errorf("duration %d: expected %d days, got %d", duration, duration, len(days))
		}
		for i, day := range days {
			if day.Day != i+1 {
				t.Errorf("day numbering broken: index %d has day %d", i, day.Day)
			}
		}
	}
}

func TestItineraryTemplatesAreDistinct(t *testing.T) {
	svc := newTestItineraryService()
	destination := testDestinations()
	session := scenarioASession() // 3 days

	days, err := svc.BuildItinerary(context.Background(), session, &destination[0])
	if err != nil {
		t.Fatalf("BuildItinerary failed: %v", err)
	}

	first, middle, last := days[0], days[1], days[2]

	if first.Activities[0].Description != "Depart from Phnom Penh" {
		t.Errorf("first day should start with departure, got %q", first.Activities[0].Description)
	}
	if !strings.Contains(first.Activities[2].Description, "Angkor Wat") {
		t.Errorf("first day should visit the primary destination, got %q", first.Activities[2].Description)
	}

	// Middle day runs the fixed 40/0/30/5 template.
	wantCosts := []int64{40, 0, 30, 5}
	if len(middle.Activities) != len(wantCosts) {
		t.Fatalf("expected %d middle-day activities, got %d", len(wantCosts), len(middle.Activities))
	}
	for i, want := range wantCosts {
		if !middle.Activities[i].Cost.Equal(decimal.NewFromInt(want)) {
			t.Errorf("middle-day activity %d: expected cost %d, got %s", i, want, middle.Activities[i].Cost)
		}
	}
	if !middle.DailyCost.Equal(decimal.NewFromInt(75)) {
		t.Errorf("expected middle-day cost 75, got %s", middle.DailyCost)
	}

	lastActivity := last.Activities[len(last.Activities)-1]
	if !strings.Contains(lastActivity.Description, "Return journey") {
		t.Errorf("last day should end with the return journey, got %q", lastActivity.Description)
	}
	if !lastActivity.Cost.IsZero() {
		t.Errorf("no activity cost after departure, got %s", lastActivity.Cost)
	}
}

// A one-day trip is simultaneously first and last day; the arrival template
// wins.
func TestOneDayTripUsesArrivalTemplate(t *testing.T) {
	svc := newTestItineraryService()
	destination := testDestinations()
	session := scenarioASession()
	session.DurationDays = 1

	days, err := svc.BuildItinerary(context.Background(), session, &destination[0])
	if err != nil {
		t.Fatalf("BuildItinerary failed: %v", err)
	}
	if len(days) != 1 {
		t.Fatalf("expected 1 day, got %d", len(days))
	}
	if days[0].Activities[0].Description != "Depart from Phnom Penh" {
		t.Errorf("one-day trip should use the arrival template, got %q", days[0].Activities[0].Description)
	}
}

func TestItineraryWithoutDestinationStillBuilds(t *testing.T) {
	svc := newTestItineraryService()
	session := scenarioASession()

	days, err := svc.BuildItinerary(context.Background(), session, nil)
	if err != nil {
		t.Fatalf("BuildItinerary failed: %v", err)
	}
	if len(days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(days))
	}
	if !strings.Contains(days[0].Activities[2].Description, TripDestinationCity) {
		t.Errorf("unmatched destination should fall back to the city name, got %q", days[0].Activities[2].Description)
	}
}

func TestSelectMealByPreference(t *testing.T) {
	lunches := []db_models.Meal{}
	for _, m := range testMeals() {
		if m.Category == db_models.MealCategoryLunch {
			lunches = append(lunches, m)
		}
	}

	tests := []struct {
		preference string
		wantName   string
	}{
		// Cheapest street-food Khmer dish.
		{MealPrefBudgetLocal, "Bai sach chrouk"},
		// Most expensive at or under $8.
		{MealPrefMixedDining, "Lok lak with rice"},
		// Most expensive restaurant meal at or under $15.
		{MealPrefComfortDining, "Riverside bistro lunch"},
		// Most expensive at or over $15.
		{MealPrefPremiumDining, "Chef's tasting lunch"},
		// Unknown preference: cheapest in category.
		{"whatever", "Bai sach chrouk"},
	}

	for _, tt := range tests {
		meal := SelectMealByPreference(lunches, tt.preference)
		if meal == nil {
			t.Errorf("%s: expected a meal, got nil", tt.preference)
			continue
		}
		if meal.Name != tt.wantName {
			t.Errorf("%s: expected %q, got %q", tt.preference, tt.wantName, meal.Name)
		}
	}
}

func TestSelectMealByPreferenceNoMatch(t *testing.T) {
	// Only a premium dish available; budget_local finds nothing.
	meals := []db_models.Meal{
		{Name: "Caviar service", Category: db_models.MealCategorySnack, Cuisine: "western", VenueType: db_models.MealVenueRestaurant, PricePerPerson: decimal.NewFromInt(40)},
	}
	if meal := SelectMealByPreference(meals, MealPrefBudgetLocal); meal != nil {
		t.Errorf("expected nil for unsatisfiable rule, got %q", meal.Name)
	}
}

func TestItineraryMealPlanFollowsPreference(t *testing.T) {
	svc := newTestItineraryService()
	session := scenarioASession()
	session.MealPreference = MealPrefBudgetLocal

	days, err := svc.BuildItinerary(context.Background(), session, nil)
	if err != nil {
		t.Fatalf("BuildItinerary failed: %v", err)
	}

	meals := days[0].Meals
	if meals.Breakfast == nil || meals.Breakfast.Name != "Num banh chok" {
		t.Errorf("expected street-food Khmer breakfast, got %+v", meals.Breakfast)
	}
	if meals.Dinner == nil || meals.Dinner.Name != "Night market grill skewers" {
		t.Errorf("expected street-food Khmer dinner, got %+v", meals.Dinner)
	}
}
