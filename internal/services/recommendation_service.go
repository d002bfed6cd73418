package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/HeangSokmeng/camtour-api-sub000/internal/models/db_models"
	"github.com/HeangSokmeng/camtour-api-sub000/internal/models/response_models"
	"github.com/HeangSokmeng/camtour-api-sub000/pkg/utils"
)

const (
	OutcomeWithinBudget = "within_budget"
	OutcomeOverBudget   = "over_budget"

	SuggestionMealPreference = "meal_preference"
	SuggestionLocalTransport = "local_transport"
	SuggestionHotel          = "hotel"
	SuggestionDuration       = "duration"
)

type RecommendationServiceInterface interface {
	// Compose runs the cost calculator and itinerary generator for a
	// completed session and decides the budget outcome. It does not
	// persist anything; the session layer owns that.
	Compose(ctx context.Context, session *db_models.TripSession) (*response_models.RecommendationResult, error)
}

type RecommendationService struct {
	costService      CostServiceInterface
	itineraryService ItineraryServiceInterface
}

func NewRecommendationService(
	costService CostServiceInterface,
	itineraryService ItineraryServiceInterface,
) RecommendationServiceInterface {
	return &RecommendationService{
		costService:      costService,
		itineraryService: itineraryService,
	}
}

func (s *RecommendationService) Compose(ctx context.Context, session *db_models.TripSession) (*response_models.RecommendationResult, error) {
	breakdown, err := s.costService.ComputeBreakdown(ctx, session)
	if err != nil {
		return nil, err
	}

	destination, err := s.costService.ResolveDestination(ctx, session)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	itinerary, err := s.itineraryService.BuildItinerary(ctx, session, destination)
	if err != nil {
		return nil, err
	}

	recommendation := response_models.Recommendation{
		Budget:      session.Budget,
		TotalCost:   breakdown.Total,
		Breakdown:   *breakdown,
		GeneratedAt: utils.FormatRFC3339KH(utils.FromUnixSecondsKH(utils.NowUnixSeconds())),
	}

	if breakdown.Total.LessThanOrEqual(session.Budget) {
		remaining := session.Budget.Sub(breakdown.Total)
		recommendation.Outcome = OutcomeWithinBudget
		recommendation.RemainingBudget = remaining
		recommendation.BonusAttractions = pickBonusAttractions(destination, remaining)
		recommendation.Narrative = withinBudgetNarrative(session, breakdown, remaining)
	} else {
		recommendation.Outcome = OutcomeOverBudget
		recommendation.RemainingBudget = decimal.Zero
		suggestions, err := s.buildSuggestions(ctx, session, breakdown)
		if err != nil {
			return nil, err
		}
		recommendation.Suggestions = suggestions
		recommendation.Narrative = overBudgetNarrative(session, breakdown)
	}

	return &response_models.RecommendationResult{
		SessionID:      session.ID.String(),
		Recommendation: recommendation,
		Itinerary:      itinerary,
	}, nil
}

// pickBonusAttractions walks the attractions in catalog order, first-fit:
// each affordable one is accepted and its cost deducted; skipped ones are
// never revisited. No attempt at optimal packing.
func pickBonusAttractions(destination *db_models.Destination, remaining decimal.Decimal) []response_models.BonusAttraction {
	if destination == nil {
		return nil
	}
	var bonus []response_models.BonusAttraction
	for _, attraction := range destination.Attractions {
		if attraction.Cost.GreaterThan(remaining) {
			continue
		}
		bonus = append(bonus, response_models.BonusAttraction{
			Name:       attraction.Name,
			DistanceKM: attraction.DistanceKM,
			Cost:       attraction.Cost,
		})
		remaining = remaining.Sub(attraction.Cost)
	}
	return bonus
}

// buildSuggestions runs the fixed downgrade cascade. Every applicable rule
// contributes; order is the cascade's, not by saving size.
func (s *RecommendationService) buildSuggestions(ctx context.Context, session *db_models.TripSession, breakdown *response_models.CostBreakdown) ([]response_models.BudgetSuggestion, error) {
	var suggestions []response_models.BudgetSuggestion
	partyDays := decimal.NewFromInt(int64(session.PartySize * session.DurationDays))
	days := decimal.NewFromInt(int64(session.DurationDays))

	if session.MealPreference != MealPrefBudgetLocal {
		saving := MealRateFor(session.MealPreference).
			Sub(MealRateFor(MealPrefBudgetLocal)).
			Mul(partyDays)
		if saving.IsPositive() {
			suggestions = append(suggestions, response_models.BudgetSuggestion{
				Type:            SuggestionMealPreference,
				Message:         fmt.Sprintf("Switch to budget local dining to save around $%s", saving.StringFixed(2)),
				EstimatedSaving: saving,
			})
		}
	}

	if session.LocalTransport != "motorbike" {
		currentDaily, err := s.costService.DailyLocalTransportRate(ctx, session.LocalTransport)
		if err != nil {
			return nil, err
		}
		motorbikeDaily, err := s.costService.DailyLocalTransportRate(ctx, "motorbike")
		if err != nil {
			return nil, err
		}
		if motorbikeDaily.LessThan(currentDaily) {
			saving := currentDaily.Sub(motorbikeDaily).Mul(days)
			suggestions = append(suggestions, response_models.BudgetSuggestion{
				Type:            SuggestionLocalTransport,
				Message:         fmt.Sprintf("Rent a motorbike instead of %s to save around $%s", LocalTransportDisplayName(session.LocalTransport), saving.StringFixed(2)),
				EstimatedSaving: saving,
			})
		}
	}

	if session.HotelStar > 1 {
		currentNightly, err := s.costService.NightlyHotelRate(ctx, session.HotelStar)
		if err != nil {
			return nil, err
		}
		oneStarNightly, err := s.costService.NightlyHotelRate(ctx, 1)
		if err != nil {
			return nil, err
		}
		rooms := int64((session.PartySize + 1) / 2)
		saving := currentNightly.Sub(oneStarNightly).
			Mul(decimal.NewFromInt(rooms)).
			Mul(days)
		if saving.IsPositive() {
			suggestions = append(suggestions, response_models.BudgetSuggestion{
				Type:            SuggestionHotel,
				Message:         fmt.Sprintf("Stay in a 1-star guesthouse instead of %d-star to save around $%s", session.HotelStar, saving.StringFixed(2)),
				EstimatedSaving: saving,
			})
		}
	}

	if session.DurationDays > 1 {
		perDay := breakdown.Total.Div(days)
		suggestions = append(suggestions, response_models.BudgetSuggestion{
			Type:            SuggestionDuration,
			Message:         fmt.Sprintf("Shorten the trip by one day to save around $%s", perDay.StringFixed(2)),
			EstimatedSaving: perDay,
		})
	}

	return suggestions, nil
}

func withinBudgetNarrative(session *db_models.TripSession, breakdown *response_models.CostBreakdown, remaining decimal.Decimal) string {
	return fmt.Sprintf(
		"Your %d-day trip to %s for %d traveler(s) fits the $%s budget. "+
			"Estimated costs: transportation $%s, destination $%s, hotel $%s, meals $%s, local transport $%s. "+
			"About $%s remains for extras.",
		session.DurationDays, TripDestinationCity, session.PartySize,
		session.Budget.StringFixed(2),
		breakdown.Transportation.StringFixed(2),
		breakdown.Destination.StringFixed(2),
		breakdown.Hotel.StringFixed(2),
		breakdown.Meals.StringFixed(2),
		breakdown.LocalTransport.StringFixed(2),
		remaining.StringFixed(2),
	)
}

func overBudgetNarrative(session *db_models.TripSession, breakdown *response_models.CostBreakdown) string {
	over := breakdown.Total.Sub(session.Budget)
	return fmt.Sprintf(
		"The estimated total of $%s exceeds your $%s budget by $%s. "+
			"Here are some ways to bring the trip within budget.",
		breakdown.Total.StringFixed(2),
		session.Budget.StringFixed(2),
		over.StringFixed(2),
	)
}
