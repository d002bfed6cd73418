package services

import (
	"context"
	"log"

	"github.com/shopspring/decimal"

	"github.com/HeangSokmeng/camtour-api-sub000/internal/models/db_models"
	"github.com/HeangSokmeng/camtour-api-sub000/internal/models/response_models"
	"github.com/HeangSokmeng/camtour-api-sub000/internal/repositories"
	"github.com/HeangSokmeng/camtour-api-sub000/pkg/utils"
)

// TripDestinationCity is where every supported trip ends; route lookups
// always price departure -> here.
const TripDestinationCity = "Siem Reap"

// Fallback tables for the soft data-gap policy: when the catalog has no
// matching row the engine still produces a number instead of failing.
var defaultHotelNightly = map[int]decimal.Decimal{
	1: decimal.NewFromInt(15),
	2: decimal.NewFromInt(35),
	3: decimal.NewFromInt(80),
}

const (
	MealPrefBudgetLocal   = "budget_local"
	MealPrefMixedDining   = "mixed_dining"
	MealPrefComfortDining = "comfort_dining"
	MealPrefPremiumDining = "premium_dining"
)

// Daily meal spend per person by preference.
var dailyMealRates = map[string]decimal.Decimal{
	MealPrefBudgetLocal:   decimal.NewFromFloat(6.5),
	MealPrefMixedDining:   decimal.NewFromFloat(15.0),
	MealPrefComfortDining: decimal.NewFromFloat(25.0),
	MealPrefPremiumDining: decimal.NewFromFloat(42.5),
}

var defaultDailyMealRate = decimal.NewFromFloat(15.0)

// Answer key -> catalog display name, and the per-day fallback when the
// catalog has no matching option.
var localTransportNames = map[string]string{
	"tuk_tuk":     "Tuk Tuk",
	"motorbike":   "Motorbike",
	"bicycle":     "Bicycle",
	"private_car": "Private Car",
}

var defaultLocalTransportDaily = map[string]decimal.Decimal{
	"tuk_tuk":     decimal.NewFromInt(18),
	"motorbike":   decimal.NewFromInt(10),
	"bicycle":     decimal.NewFromInt(3),
	"private_car": decimal.NewFromInt(45),
}

// LocalTransportDisplayName resolves the catalog display name for a local
// transport answer key, falling back to the raw key.
func LocalTransportDisplayName(key string) string {
	if name, ok := localTransportNames[key]; ok {
		return name
	}
	return key
}

func MealRateFor(preference string) decimal.Decimal {
	if rate, ok := dailyMealRates[preference]; ok {
		return rate
	}
	return defaultDailyMealRate
}

// CostServiceInterface itemizes the five trip cost components. Every method
// is a pure function of the completed session and catalog state; components
// never depend on each other, so callers may compute them in any order.
type CostServiceInterface interface {
	TransportationCost(ctx context.Context, session *db_models.TripSession) (decimal.Decimal, error)
	DestinationCost(ctx context.Context, session *db_models.TripSession) (decimal.Decimal, error)
	HotelCost(ctx context.Context, session *db_models.TripSession) (decimal.Decimal, error)
	MealCost(session *db_models.TripSession) decimal.Decimal
	LocalTransportCost(ctx context.Context, session *db_models.TripSession) (decimal.Decimal, error)
	ComputeBreakdown(ctx context.Context, session *db_models.TripSession) (*response_models.CostBreakdown, error)

	ResolveDestination(ctx context.Context, session *db_models.TripSession) (*db_models.Destination, error)
	NightlyHotelRate(ctx context.Context, star int) (decimal.Decimal, error)
	DailyLocalTransportRate(ctx context.Context, key string) (decimal.Decimal, error)
}

type CostService struct {
	routeRepo       repositories.TransportationCostRepository
	hotelRepo       repositories.HotelRepository
	localRepo       repositories.LocalTransportRepository
	destinationRepo repositories.DestinationRepository
}

func NewCostService(
	routeRepo repositories.TransportationCostRepository,
	hotelRepo repositories.HotelRepository,
	localRepo repositories.LocalTransportRepository,
	destinationRepo repositories.DestinationRepository,
) CostServiceInterface {
	return &CostService{
		routeRepo:       routeRepo,
		hotelRepo:       hotelRepo,
		localRepo:       localRepo,
		destinationRepo: destinationRepo,
	}
}

func (s *CostService) TransportationCost(ctx context.Context, session *db_models.TripSession) (decimal.Decimal, error) {
	route, err := s.routeRepo.FindRoute(ctx, session.Departure, TripDestinationCity, session.Transportation)
	if err != nil {
		return decimal.Zero, utils.ErrDatabaseError
	}
	if route == nil {
		// No priced route means zero, not an error. Flagged as a known
		// gap: a silent $0 leg is likely unintended in production.
		log.Printf("no transportation cost for %s -> %s by %s, using 0",
			session.Departure, TripDestinationCity, session.Transportation)
		return decimal.Zero, nil
	}
	return route.Cost.Mul(decimal.NewFromInt(int64(session.PartySize))), nil
}

// ResolveDestination prefers the id resolved at answer-submission time and
// keeps the substring match only as a compatibility shim for sessions that
// never resolved one.
func (s *CostService) ResolveDestination(ctx context.Context, session *db_models.TripSession) (*db_models.Destination, error) {
	if session.DestinationID != nil {
		return s.destinationRepo.GetDestinationByID(ctx, *session.DestinationID)
	}
	if session.Destination == "" {
		return nil, nil
	}
	return s.destinationRepo.FindByName(ctx, session.Destination)
}

func (s *CostService) DestinationCost(ctx context.Context, session *db_models.TripSession) (decimal.Decimal, error) {
	destination, err := s.ResolveDestination(ctx, session)
	if err != nil {
		return decimal.Zero, utils.ErrDatabaseError
	}
	if destination == nil {
		log.Printf("no destination matching %q, using 0", session.Destination)
		return decimal.Zero, nil
	}
	return destination.VisitCost().Mul(decimal.NewFromInt(int64(session.PartySize))), nil
}

func (s *CostService) NightlyHotelRate(ctx context.Context, star int) (decimal.Decimal, error) {
	hotel, err := s.hotelRepo.CheapestByStar(ctx, star)
	if err != nil {
		return decimal.Zero, utils.ErrDatabaseError
	}
	if hotel != nil {
		return hotel.PricePerNight, nil
	}
	if nightly, ok := defaultHotelNightly[star]; ok {
		return nightly, nil
	}
	return decimal.Zero, nil
}

func (s *CostService) HotelCost(ctx context.Context, session *db_models.TripSession) (decimal.Decimal, error) {
	nightly, err := s.NightlyHotelRate(ctx, session.HotelStar)
	if err != nil {
		return decimal.Zero, err
	}
	rooms := (session.PartySize + 1) / 2 // two guests per room
	return nightly.
		Mul(decimal.NewFromInt(int64(rooms))).
		Mul(decimal.NewFromInt(int64(session.DurationDays))), nil
}

func (s *CostService) MealCost(session *db_models.TripSession) decimal.Decimal {
	return MealRateFor(session.MealPreference).
		Mul(decimal.NewFromInt(int64(session.PartySize))).
		Mul(decimal.NewFromInt(int64(session.DurationDays)))
}

func (s *CostService) DailyLocalTransportRate(ctx context.Context, key string) (decimal.Decimal, error) {
	name, known := localTransportNames[key]
	if known {
		option, err := s.localRepo.FindByName(ctx, name)
		if err != nil {
			return decimal.Zero, utils.ErrDatabaseError
		}
		if option != nil {
			return option.DailyCost(), nil
		}
	}
	if daily, ok := defaultLocalTransportDaily[key]; ok {
		return daily, nil
	}
	log.Printf("no local transport pricing for %q, using 0", key)
	return decimal.Zero, nil
}

func (s *CostService) LocalTransportCost(ctx context.Context, session *db_models.TripSession) (decimal.Decimal, error) {
	daily, err := s.DailyLocalTransportRate(ctx, session.LocalTransport)
	if err != nil {
		return decimal.Zero, err
	}
	return daily.Mul(decimal.NewFromInt(int64(session.DurationDays))), nil
}

// ComputeBreakdown evaluates all five components, even those that come back
// zero, and totals them.
func (s *CostService) ComputeBreakdown(ctx context.Context, session *db_models.TripSession) (*response_models.CostBreakdown, error) {
	transportation, err := s.TransportationCost(ctx, session)
	if err != nil {
		return nil, err
	}
	destination, err := s.DestinationCost(ctx, session)
	if err != nil {
		return nil, err
	}
	hotel, err := s.HotelCost(ctx, session)
	if err != nil {
		return nil, err
	}
	meals := s.MealCost(session)
	localTransport, err := s.LocalTransportCost(ctx, session)
	if err != nil {
		return nil, err
	}

	total := transportation.Add(destination).Add(hotel).Add(meals).Add(localTransport)
	return &response_models.CostBreakdown{
		Transportation: transportation,
		Destination:    destination,
		Hotel:          hotel,
		Meals:          meals,
		LocalTransport: localTransport,
		Total:          total,
	}, nil
}
