package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/HeangSokmeng/camtour-api-sub000/internal/models/db_models"
)

// In-memory repository fakes. They mirror the gorm implementations' contract:
// default value plus nil error when nothing matches.

type fakeRouteRepo struct {
	routes []db_models.TransportationCost
}

func (f *fakeRouteRepo) FindRoute(_ context.Context, from, to, mode string) (*db_models.TransportationCost, error) {
	for i := range f.routes {
		r := &f.routes[i]
		if strings.EqualFold(r.FromLocation, from) &&
			strings.EqualFold(r.ToLocation, to) &&
			strings.EqualFold(r.Mode, mode) {
			return r, nil
		}
	}
	return nil, nil
}

type fakeHotelRepo struct {
	hotels []db_models.Hotel
}

func (f *fakeHotelRepo) CheapestByStar(_ context.Context, star int) (*db_models.Hotel, error) {
	var best *db_models.Hotel
	for i := range f.hotels {
		h := &f.hotels[i]
		if h.Star != star || !h.IsActive {
			continue
		}
		if best == nil || h.PricePerNight.LessThan(best.PricePerNight) {
			best = h
		}
	}
	return best, nil
}

type fakeMealRepo struct {
	meals []db_models.Meal
}

func (f *fakeMealRepo) ListByCategory(_ context.Context, category string) ([]db_models.Meal, error) {
	var out []db_models.Meal
	for _, m := range f.meals {
		if m.Category == category {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeLocalRepo struct {
	options []db_models.LocalTransportOption
}

func (f *fakeLocalRepo) FindByName(_ context.Context, name string) (*db_models.LocalTransportOption, error) {
	for i := range f.options {
		o := &f.options[i]
		if o.IsActive && strings.Contains(strings.ToLower(o.Name), strings.ToLower(name)) {
			return o, nil
		}
	}
	return nil, nil
}

type fakeDestinationRepo struct {
	destinations []db_models.Destination
}

func (f *fakeDestinationRepo) GetDestinationByID(_ context.Context, id uuid.UUID) (*db_models.Destination, error) {
	for i := range f.destinations {
		if f.destinations[i].ID == id {
			return &f.destinations[i], nil
		}
	}
	return nil, nil
}

func (f *fakeDestinationRepo) FindByName(_ context.Context, name string) (*db_models.Destination, error) {
	for i := range f.destinations {
		d := &f.destinations[i]
		if d.IsActive && strings.Contains(strings.ToLower(d.Name), strings.ToLower(name)) {
			return d, nil
		}
	}
	return nil, nil
}

type fakeQuestionRepo struct {
	questions []db_models.Question
}

func (f *fakeQuestionRepo) ListActiveQuestions(_ context.Context) ([]db_models.Question, error) {
	var out []db_models.Question
	for _, q := range f.questions {
		if q.IsActive {
			out = append(out, q)
		}
	}
	return out, nil
}

func (f *fakeQuestionRepo) GetQuestionByDimension(_ context.Context, dimension string) (*db_models.Question, error) {
	for i := range f.questions {
		q := &f.questions[i]
		if q.IsActive && q.Dimension == dimension {
			return q, nil
		}
	}
	return nil, nil
}

type fakeSessionRepo struct {
	sessions map[string]*db_models.TripSession
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*db_models.TripSession)}
}

func (f *fakeSessionRepo) CreateSession(_ context.Context, session *db_models.TripSession) error {
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	f.sessions[session.ID.String()] = session
	return nil
}

func (f *fakeSessionRepo) GetSessionByID(_ context.Context, id string) (*db_models.TripSession, error) {
	session, ok := f.sessions[id]
	if !ok {
		return nil, nil
	}
	return session, nil
}

func (f *fakeSessionRepo) SaveSession(_ context.Context, session *db_models.TripSession) error {
	f.sessions[session.ID.String()] = session
	return nil
}

// Reference data shared across the engine tests.

func testRoutes() []db_models.TransportationCost {
	return []db_models.TransportationCost{
		{FromLocation: "Phnom Penh", ToLocation: "Siem Reap", Mode: "car", Cost: decimal.NewFromInt(30), DurationHours: 5},
		{FromLocation: "Phnom Penh", ToLocation: "Siem Reap", Mode: "bus", Cost: decimal.NewFromInt(12), DurationHours: 6.5},
		{FromLocation: "Battambang", ToLocation: "Siem Reap", Mode: "car", Cost: decimal.NewFromInt(20), DurationHours: 2.5},
	}
}

func testHotels() []db_models.Hotel {
	return []db_models.Hotel{
		{Name: "Riverside Inn", Star: 1, PricePerNight: decimal.NewFromInt(12), IsActive: true},
		{Name: "Golden Temple Hotel", Star: 2, PricePerNight: decimal.NewFromInt(30), IsActive: true},
		{Name: "Siem Reap Garden Lodge", Star: 2, PricePerNight: decimal.NewFromInt(38), IsActive: true},
		{Name: "Borei Angkor Resort", Star: 3, PricePerNight: decimal.NewFromInt(85), IsActive: true},
	}
}

func testMeals() []db_models.Meal {
	return []db_models.Meal{
		{Name: "Num banh chok", Category: db_models.MealCategoryBreakfast, Cuisine: "khmer", VenueType: db_models.MealVenueStreetFood, PricePerPerson: decimal.NewFromFloat(1.5)},
		{Name: "Hotel breakfast buffet", Category: db_models.MealCategoryBreakfast, Cuisine: "western", VenueType: db_models.MealVenueRestaurant, PricePerPerson: decimal.NewFromInt(8)},
		{Name: "Cafe brunch set", Category: db_models.MealCategoryBreakfast, Cuisine: "western", VenueType: db_models.MealVenueRestaurant, PricePerPerson: decimal.NewFromInt(16)},

		{Name: "Bai sach chrouk", Category: db_models.MealCategoryLunch, Cuisine: "khmer", VenueType: db_models.MealVenueStreetFood, PricePerPerson: decimal.NewFromFloat(2.5)},
		{Name: "Lok lak with rice", Category: db_models.MealCategoryLunch, Cuisine: "khmer", VenueType: db_models.MealVenueRestaurant, PricePerPerson: decimal.NewFromFloat(6.5)},
		{Name: "Riverside bistro lunch", Category: db_models.MealCategoryLunch, Cuisine: "western", VenueType: db_models.MealVenueRestaurant, PricePerPerson: decimal.NewFromInt(14)},
		{Name: "Chef's tasting lunch", Category: db_models.MealCategoryLunch, Cuisine: "fusion", VenueType: db_models.MealVenueRestaurant, PricePerPerson: decimal.NewFromInt(22)},

		{Name: "Night market grill skewers", Category: db_models.MealCategoryDinner, Cuisine: "khmer", VenueType: db_models.MealVenueStreetFood, PricePerPerson: decimal.NewFromInt(3)},
		{Name: "Khmer barbecue", Category: db_models.MealCategoryDinner, Cuisine: "khmer", VenueType: db_models.MealVenueRestaurant, PricePerPerson: decimal.NewFromInt(8)},
		{Name: "Apsara dinner show", Category: db_models.MealCategoryDinner, Cuisine: "khmer", VenueType: db_models.MealVenueRestaurant, PricePerPerson: decimal.NewFromInt(15)},
		{Name: "Fine dining tasting menu", Category: db_models.MealCategoryDinner, Cuisine: "fusion", VenueType: db_models.MealVenueRestaurant, PricePerPerson: decimal.NewFromInt(28)},

		{Name: "Fried banana fritters", Category: db_models.MealCategorySnack, Cuisine: "khmer", VenueType: db_models.MealVenueStreetFood, PricePerPerson: decimal.NewFromInt(1)},
	}
}

func testLocalOptions() []db_models.LocalTransportOption {
	perDay := func(v float64) *decimal.Decimal {
		d := decimal.NewFromFloat(v)
		return &d
	}
	return []db_models.LocalTransportOption{
		{Type: "driver", Name: "Tuk Tuk with driver", PricePerDay: perDay(18), IsActive: true},
		{Type: "rental", Name: "Motorbike rental", PricePerDay: perDay(8), IsActive: true},
	}
}

func testDestinations() []db_models.Destination {
	angkor := db_models.Destination{
		Name:          "Angkor Wat",
		Province:      "Siem Reap",
		EntranceFee:   decimal.NewFromInt(37),
		TransportFee:  decimal.NewFromInt(5),
		GuideFee:      decimal.NewFromInt(15),
		RequiresGuide: false,
		IsActive:      true,
		Attractions: []db_models.DestinationAttraction{
			{Name: "Angkor National Museum", DistanceKM: 2.5, Cost: decimal.NewFromInt(12), SortOrder: 1},
			{Name: "Ta Prohm tree temple", DistanceKM: 3.5, Cost: decimal.NewFromInt(14), SortOrder: 2},
			{Name: "Tonle Sap floating village tour", DistanceKM: 15, Cost: decimal.NewFromInt(20), SortOrder: 3},
			{Name: "Banteay Srei citadel", DistanceKM: 35, Cost: decimal.NewFromInt(25), SortOrder: 4},
		},
	}
	angkor.ID = uuid.New()
	return []db_models.Destination{angkor}
}

func newTestCostService() CostServiceInterface {
	return NewCostService(
		&fakeRouteRepo{routes: testRoutes()},
		&fakeHotelRepo{hotels: testHotels()},
		&fakeLocalRepo{options: testLocalOptions()},
		&fakeDestinationRepo{destinations: testDestinations()},
	)
}

// scenarioASession is the canonical happy-path booking: $500 budget, two
// travelers, three days, Angkor Wat by car from Phnom Penh, tuk tuk, mixed
// dining, 2-star hotel.
func scenarioASession() *db_models.TripSession {
	s := &db_models.TripSession{
		Budget: decimal.NewFromInt(500),
		Answers: db_models.AnswerMap{
			db_models.DimTransportation:      "car",
			db_models.DimDeparture:           "Phnom Penh",
			db_models.DimDuration:            "3",
			db_models.DimPartySize:           "2",
			db_models.DimAgeRange:            "18_30",
			db_models.DimDestination:         "Angkor Wat",
			db_models.DimLocalTransportation: "tuk_tuk",
			db_models.DimMealPreference:      "mixed_dining",
			db_models.DimHotel:               "star2",
		},
		Transportation: "car",
		Departure:      "Phnom Penh",
		DurationDays:   3,
		PartySize:      2,
		AgeRange:       "18_30",
		Destination:    "Angkor Wat",
		LocalTransport: "tuk_tuk",
		MealPreference: "mixed_dining",
		HotelStar:      2,
	}
	s.ID = uuid.New()
	return s
}

// scenarioBSession wants everything premium on a $20 budget.
func scenarioBSession() *db_models.TripSession {
	s := scenarioASession()
	s.Budget = decimal.NewFromInt(20)
	s.MealPreference = MealPrefPremiumDining
	s.HotelStar = 3
	s.Answers[db_models.DimMealPreference] = MealPrefPremiumDining
	s.Answers[db_models.DimHotel] = "star3"
	return s
}
