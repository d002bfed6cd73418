package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/HeangSokmeng/camtour-api-sub000/internal/models/db_models"
	"github.com/HeangSokmeng/camtour-api-sub000/internal/models/response_models"
	"github.com/HeangSokmeng/camtour-api-sub000/internal/repositories"
)

type ItineraryServiceInterface interface {
	// BuildItinerary produces one entry per trip day. destination may be
	// nil when the answer matched no catalog row.
	BuildItinerary(ctx context.Context, session *db_models.TripSession, destination *db_models.Destination) ([]response_models.ItineraryDay, error)
}

type ItineraryService struct {
	mealRepo repositories.MealRepository
}

func NewItineraryService(mealRepo repositories.MealRepository) ItineraryServiceInterface {
	return &ItineraryService{mealRepo: mealRepo}
}

type dayPosition int

const (
	dayFirst dayPosition = iota
	dayMiddle
	dayLast
)

// positionFor decides which template a day uses. The first-day check comes
// before the last-day check, so a one-day trip gets the arrival template.
func positionFor(day, totalDays int) dayPosition {
	switch {
	case day == 1:
		return dayFirst
	case day == totalDays:
		return dayLast
	default:
		return dayMiddle
	}
}

// templateInput carries everything a day template is allowed to read, so
// templates stay swappable without touching the generator's control flow.
type templateInput struct {
	session     *db_models.TripSession
	destination *db_models.Destination
}

type dayTemplate func(in templateInput) []response_models.ItineraryActivity

var dayTemplates = map[dayPosition]dayTemplate{
	dayFirst:  firstDayActivities,
	dayMiddle: middleDayActivities,
	dayLast:   lastDayActivities,
}

func firstDayActivities(in templateInput) []response_models.ItineraryActivity {
	destinationName := TripDestinationCity
	visitCost := decimal.NewFromInt(35)
	if in.destination != nil {
		destinationName = in.destination.Name
		visitCost = in.destination.VisitCost()
	}

	return []response_models.ItineraryActivity{
		{
			Time:          "07:00",
			Description:   fmt.Sprintf("Depart from %s", in.session.Departure),
			DurationHours: 5,
			Transport:     in.session.Transportation,
			Cost:          decimal.Zero,
		},
		{
			Time:        "12:30",
			Description: "Arrive in Siem Reap and check in at the hotel",
			Cost:        decimal.Zero,
		},
		{
			Time:          "14:30",
			Description:   fmt.Sprintf("Visit %s", destinationName),
			DurationHours: 3.5,
			Transport:     LocalTransportDisplayName(in.session.LocalTransport),
			Cost:          visitCost,
		},
		{
			Time:        "18:30",
			Description: "Evening walk through the night market",
			Cost:        decimal.NewFromInt(5),
		},
	}
}

// Middle days run a fixed-cost template; the 40/0/30/5 placeholders are not
// data-driven yet.
func middleDayActivities(in templateInput) []response_models.ItineraryActivity {
	local := LocalTransportDisplayName(in.session.LocalTransport)
	return []response_models.ItineraryActivity{
		{
			Time:          "08:00",
			Description:   "Morning temple circuit",
			DurationHours: 4,
			Transport:     local,
			Cost:          decimal.NewFromInt(40),
		},
		{
			Time:        "12:00",
			Description: "Lunch break and rest",
			Cost:        decimal.Zero,
		},
		{
			Time:          "14:00",
			Description:   "Afternoon attraction visit",
			DurationHours: 3,
			Transport:     local,
			Cost:          decimal.NewFromInt(30),
		},
		{
			Time:        "18:30",
			Description: "Evening market and street snacks",
			Cost:        decimal.NewFromInt(5),
		},
	}
}

func lastDayActivities(in templateInput) []response_models.ItineraryActivity {
	return []response_models.ItineraryActivity{
		{
			Time:        "08:00",
			Description: "Breakfast and souvenir shopping",
			Cost:        decimal.NewFromInt(10),
		},
		{
			Time:        "11:00",
			Description: "Check out from the hotel",
			Cost:        decimal.Zero,
		},
		{
			Time:          "12:00",
			Description:   fmt.Sprintf("Return journey to %s", in.session.Departure),
			DurationHours: 5,
			Transport:     in.session.Transportation,
			Cost:          decimal.Zero,
		},
	}
}

func (s *ItineraryService) BuildItinerary(ctx context.Context, session *db_models.TripSession, destination *db_models.Destination) ([]response_models.ItineraryDay, error) {
	// The meal selection is deterministic per preference, so build the day
	// meal plan once and share it across days.
	mealPlan := s.buildDayMealPlan(ctx, session.MealPreference)
	local := LocalTransportDisplayName(session.LocalTransport)
	in := templateInput{session: session, destination: destination}

	days := make([]response_models.ItineraryDay, 0, session.DurationDays)
	for day := 1; day <= session.DurationDays; day++ {
		activities := dayTemplates[positionFor(day, session.DurationDays)](in)

		dailyCost := decimal.Zero
		for _, a := range activities {
			dailyCost = dailyCost.Add(a.Cost)
		}

		days = append(days, response_models.ItineraryDay{
			Day:            day,
			Activities:     activities,
			Meals:          mealPlan,
			LocalTransport: local,
			DailyCost:      dailyCost,
		})
	}
	return days, nil
}

func (s *ItineraryService) buildDayMealPlan(ctx context.Context, preference string) response_models.DayMealPlan {
	return response_models.DayMealPlan{
		Breakfast: s.pickMeal(ctx, db_models.MealCategoryBreakfast, preference),
		Lunch:     s.pickMeal(ctx, db_models.MealCategoryLunch, preference),
		Dinner:    s.pickMeal(ctx, db_models.MealCategoryDinner, preference),
		Snack:     s.pickMeal(ctx, db_models.MealCategorySnack, preference),
	}
}

func (s *ItineraryService) pickMeal(ctx context.Context, category, preference string) *response_models.MealSummary {
	meals, err := s.mealRepo.ListByCategory(ctx, category)
	if err != nil {
		// Soft gap: a day plan without this category beats failing the
		// whole itinerary.
		log.Printf("meal lookup failed for category %s: %v", category, err)
		return nil
	}
	meal := SelectMealByPreference(meals, preference)
	if meal == nil {
		return nil
	}
	return &response_models.MealSummary{
		Name:    meal.Name,
		Cuisine: meal.Cuisine,
		Price:   meal.PricePerPerson,
	}
}

// SelectMealByPreference applies the per-preference selection rule over meals
// of a single category. Returns nil when nothing satisfies the rule.
func SelectMealByPreference(meals []db_models.Meal, preference string) *db_models.Meal {
	switch preference {
	case MealPrefBudgetLocal:
		return cheapestMeal(meals, func(m *db_models.Meal) bool {
			return m.VenueType == db_models.MealVenueStreetFood && strings.EqualFold(m.Cuisine, "khmer")
		})
	case MealPrefMixedDining:
		return priciestMeal(meals, func(m *db_models.Meal) bool {
			return m.PricePerPerson.LessThanOrEqual(decimal.NewFromInt(8))
		})
	case MealPrefComfortDining:
		return priciestMeal(meals, func(m *db_models.Meal) bool {
			return m.VenueType == db_models.MealVenueRestaurant &&
				m.PricePerPerson.LessThanOrEqual(decimal.NewFromInt(15))
		})
	case MealPrefPremiumDining:
		return priciestMeal(meals, func(m *db_models.Meal) bool {
			return m.PricePerPerson.GreaterThanOrEqual(decimal.NewFromInt(15))
		})
	default:
		return cheapestMeal(meals, nil)
	}
}

func cheapestMeal(meals []db_models.Meal, match func(*db_models.Meal) bool) *db_models.Meal {
	var best *db_models.Meal
	for i := range meals {
		m := &meals[i]
		if match != nil && !match(m) {
			continue
		}
		if best == nil || m.PricePerPerson.LessThan(best.PricePerPerson) {
			best = m
		}
	}
	return best
}

func priciestMeal(meals []db_models.Meal, match func(*db_models.Meal) bool) *db_models.Meal {
	var best *db_models.Meal
	for i := range meals {
		m := &meals[i]
		if match != nil && !match(m) {
			continue
		}
		if best == nil || m.PricePerPerson.GreaterThan(best.PricePerPerson) {
			best = m
		}
	}
	return best
}
