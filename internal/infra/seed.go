package infra

import (
	"log"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/HeangSokmeng/camtour-api-sub000/internal/models/db_models"
)

func usd(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func usdPtr(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

// SeedCatalogs loads the reference data the engine reads: the nine planning
// questions, route fares into Siem Reap, hotels, meals, local transport
// options and destinations. Idempotent; a non-empty question table skips the
// whole seed.
func SeedCatalogs(db *gorm.DB) error {
	var count int64
	if err := db.Model(&db_models.Question{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Catalogs already seeded, skipping")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, seed := range []func(*gorm.DB) error{
			seedQuestions,
			seedTransportationCosts,
			seedHotels,
			seedMeals,
			seedLocalTransport,
			seedDestinations,
		} {
			if err := seed(tx); err != nil {
				return err
			}
		}
		log.Println("Reference catalogs seeded")
		return nil
	})
}

func seedQuestions(tx *gorm.DB) error {
	questions := []db_models.Question{
		{
			Dimension:   db_models.DimTransportation,
			Title:       "How will you travel to Siem Reap?",
			Description: "Pick the transportation mode for the main journey.",
			SortOrder:   1,
			IsActive:    true,
			Options: []db_models.QuestionOption{
				{Value: "bus", Label: "Bus", Price: usdPtr(12), SortOrder: 1, IsActive: true},
				{Value: "van", Label: "Shared van", Price: usdPtr(25), SortOrder: 2, IsActive: true},
				{Value: "car", Label: "Private car", Price: usdPtr(30), SortOrder: 3, IsActive: true},
				{Value: "flight", Label: "Domestic flight", Price: usdPtr(90), SortOrder: 4, IsActive: true},
			},
		},
		{
			Dimension:   db_models.DimDeparture,
			Title:       "Where are you departing from?",
			SortOrder:   2,
			IsActive:    true,
			Options: []db_models.QuestionOption{
				{Value: "Phnom Penh", Label: "Phnom Penh", SortOrder: 1, IsActive: true},
				{Value: "Battambang", Label: "Battambang", SortOrder: 2, IsActive: true},
				{Value: "Sihanoukville", Label: "Sihanoukville", SortOrder: 3, IsActive: true},
				{
					Value:     "Phnom Penh Airport",
					Label:     "Phnom Penh International Airport",
					SortOrder: 4,
					IsActive:  true,
					// Advisory for the client UI only; never enforced here.
					Conditions: datatypes.JSON([]byte(`{"dimension":"transportation","equals":"flight"}`)),
				},
			},
		},
		{
			Dimension: db_models.DimDuration,
			Title:     "How many days will you stay?",
			SortOrder: 3,
			IsActive:  true,
			Options: []db_models.QuestionOption{
				{Value: "1", Label: "1 day", SortOrder: 1, IsActive: true},
				{Value: "2", Label: "2 days", SortOrder: 2, IsActive: true},
				{Value: "3", Label: "3 days", SortOrder: 3, IsActive: true},
				{Value: "5", Label: "5 days", SortOrder: 4, IsActive: true},
				{Value: "7", Label: "1 week", SortOrder: 5, IsActive: true},
			},
		},
		{
			Dimension: db_models.DimPartySize,
			Title:     "How many people are traveling?",
			SortOrder: 4,
			IsActive:  true,
			Options: []db_models.QuestionOption{
				{Value: "1", Label: "Just me", SortOrder: 1, IsActive: true},
				{Value: "2", Label: "2 people", SortOrder: 2, IsActive: true},
				{Value: "4", Label: "4 people", SortOrder: 3, IsActive: true},
				{Value: "6", Label: "6 people", SortOrder: 4, IsActive: true},
			},
		},
		{
			Dimension: db_models.DimAgeRange,
			Title:     "What is the age range of your group?",
			SortOrder: 5,
			IsActive:  true,
			Options: []db_models.QuestionOption{
				{Value: "under_18", Label: "Under 18", SortOrder: 1, IsActive: true},
				{Value: "18_30", Label: "18 to 30", SortOrder: 2, IsActive: true},
				{Value: "31_50", Label: "31 to 50", SortOrder: 3, IsActive: true},
				{Value: "over_50", Label: "Over 50", SortOrder: 4, IsActive: true},
			},
		},
		{
			Dimension:   db_models.DimDestination,
			Title:       "Which destination do you most want to see?",
			Description: "The primary destination anchors the first day of the itinerary.",
			SortOrder:   6,
			IsActive:    true,
			Options: []db_models.QuestionOption{
				{Value: "Angkor Wat", Label: "Angkor Wat", SortOrder: 1, IsActive: true},
				{Value: "Tonle Sap Lake", Label: "Tonle Sap floating villages", SortOrder: 2, IsActive: true},
				{Value: "Kulen Mountain", Label: "Phnom Kulen waterfalls", SortOrder: 3, IsActive: true},
			},
		},
		{
			Dimension: db_models.DimLocalTransportation,
			Title:     "How do you want to get around town?",
			SortOrder: 7,
			IsActive:  true,
			Options: []db_models.QuestionOption{
				{Value: "tuk_tuk", Label: "Tuk tuk with driver", SortOrder: 1, IsActive: true},
				{
					Value:      "motorbike",
					Label:      "Rented motorbike",
					SortOrder:  2,
					IsActive:   true,
					Conditions: datatypes.JSON([]byte(`{"dimension":"age_range","not":"under_18"}`)),
				},
				{Value: "bicycle", Label: "Bicycle", SortOrder: 3, IsActive: true},
				{Value: "private_car", Label: "Private car with driver", SortOrder: 4, IsActive: true},
			},
		},
		{
			Dimension: db_models.DimMealPreference,
			Title:     "What is your dining style?",
			SortOrder: 8,
			IsActive:  true,
			Options: []db_models.QuestionOption{
				{Value: "budget_local", Label: "Street food and local eateries", SortOrder: 1, IsActive: true},
				{Value: "mixed_dining", Label: "Mix of local and restaurants", SortOrder: 2, IsActive: true},
				{Value: "comfort_dining", Label: "Comfortable restaurants", SortOrder: 3, IsActive: true},
				{Value: "premium_dining", Label: "Premium dining", SortOrder: 4, IsActive: true},
			},
		},
		{
			Dimension: db_models.DimHotel,
			Title:     "What standard of hotel do you prefer?",
			SortOrder: 9,
			IsActive:  true,
			Options: []db_models.QuestionOption{
				{Value: "star1", Label: "Guesthouse (1 star)", SortOrder: 1, IsActive: true},
				{Value: "star2", Label: "Mid-range (2 star)", SortOrder: 2, IsActive: true},
				{Value: "star3", Label: "Boutique (3 star)", SortOrder: 3, IsActive: true},
			},
		},
	}
	return tx.Create(&questions).Error
}

func seedTransportationCosts(tx *gorm.DB) error {
	routes := []db_models.TransportationCost{
		{FromLocation: "Phnom Penh", ToLocation: "Siem Reap", Mode: "bus", Cost: usd(12), DurationHours: 6.5},
		{FromLocation: "Phnom Penh", ToLocation: "Siem Reap", Mode: "van", Cost: usd(25), DurationHours: 5.5},
		{FromLocation: "Phnom Penh", ToLocation: "Siem Reap", Mode: "car", Cost: usd(30), DurationHours: 5},
		{FromLocation: "Phnom Penh", ToLocation: "Siem Reap", Mode: "flight", Cost: usd(90), DurationHours: 1},
		{FromLocation: "Battambang", ToLocation: "Siem Reap", Mode: "bus", Cost: usd(8), DurationHours: 3.5},
		{FromLocation: "Battambang", ToLocation: "Siem Reap", Mode: "car", Cost: usd(20), DurationHours: 2.5},
		{FromLocation: "Sihanoukville", ToLocation: "Siem Reap", Mode: "bus", Cost: usd(18), DurationHours: 10},
		{FromLocation: "Sihanoukville", ToLocation: "Siem Reap", Mode: "car", Cost: usd(45), DurationHours: 8},
		{FromLocation: "Sihanoukville", ToLocation: "Siem Reap", Mode: "flight", Cost: usd(110), DurationHours: 1.2},
	}
	return tx.Create(&routes).Error
}

func seedHotels(tx *gorm.DB) error {
	hotels := []db_models.Hotel{
		{Name: "Angkor Smile Guesthouse", Star: 1, PricePerNight: usd(12), Address: "Wat Bo Road", IsActive: true},
		{Name: "Riverside Inn", Star: 1, PricePerNight: usd(15), Address: "Old Market area", IsActive: true},
		{Name: "Golden Temple Hotel", Star: 2, PricePerNight: usd(30), Address: "Sok San Road", IsActive: true},
		{Name: "Siem Reap Garden Lodge", Star: 2, PricePerNight: usd(38), Address: "Charles de Gaulle Ave", IsActive: true},
		{Name: "Tara Angkor Hotel", Star: 3, PricePerNight: usd(75), Address: "Vithei Charles de Gaulle", IsActive: true},
		{Name: "Borei Angkor Resort", Star: 3, PricePerNight: usd(85), Address: "National Road 6", IsActive: true},
	}
	return tx.Create(&hotels).Error
}

func seedMeals(tx *gorm.DB) error {
	meals := []db_models.Meal{
		{Name: "Num banh chok", Category: db_models.MealCategoryBreakfast, Cuisine: "khmer", VenueType: db_models.MealVenueStreetFood, PricePerPerson: usd(1.5), IsPopular: true},
		{Name: "Kuy teav noodle soup", Category: db_models.MealCategoryBreakfast, Cuisine: "khmer", VenueType: db_models.MealVenueStreetFood, PricePerPerson: usd(2)},
		{Name: "Hotel breakfast buffet", Category: db_models.MealCategoryBreakfast, Cuisine: "western", VenueType: db_models.MealVenueRestaurant, PricePerPerson: usd(8)},
		{Name: "Cafe brunch set", Category: db_models.MealCategoryBreakfast, Cuisine: "western", VenueType: db_models.MealVenueRestaurant, PricePerPerson: usd(16)},

		{Name: "Bai sach chrouk", Category: db_models.MealCategoryLunch, Cuisine: "khmer", VenueType: db_models.MealVenueStreetFood, PricePerPerson: usd(2.5), IsPopular: true},
		{Name: "Lok lak with rice", Category: db_models.MealCategoryLunch, Cuisine: "khmer", VenueType: db_models.MealVenueRestaurant, PricePerPerson: usd(6.5), IsPopular: true},
		{Name: "Amok trey", Category: db_models.MealCategoryLunch, Cuisine: "khmer", VenueType: db_models.MealVenueRestaurant, PricePerPerson: usd(7.5), IsPopular: true},
		{Name: "Riverside bistro lunch", Category: db_models.MealCategoryLunch, Cuisine: "western", VenueType: db_models.MealVenueRestaurant, PricePerPerson: usd(14)},
		{Name: "Chef's tasting lunch", Category: db_models.MealCategoryLunch, Cuisine: "fusion", VenueType: db_models.MealVenueRestaurant, PricePerPerson: usd(22)},

		{Name: "Night market grill skewers", Category: db_models.MealCategoryDinner, Cuisine: "khmer", VenueType: db_models.MealVenueStreetFood, PricePerPerson: usd(3), IsPopular: true},
		{Name: "Khmer barbecue", Category: db_models.MealCategoryDinner, Cuisine: "khmer", VenueType: db_models.MealVenueRestaurant, PricePerPerson: usd(8)},
		{Name: "Traditional apsara dinner show", Category: db_models.MealCategoryDinner, Cuisine: "khmer", VenueType: db_models.MealVenueRestaurant, PricePerPerson: usd(15)},
		{Name: "Fine dining tasting menu", Category: db_models.MealCategoryDinner, Cuisine: "fusion", VenueType: db_models.MealVenueRestaurant, PricePerPerson: usd(28)},

		{Name: "Fried banana fritters", Category: db_models.MealCategorySnack, Cuisine: "khmer", VenueType: db_models.MealVenueStreetFood, PricePerPerson: usd(1), IsPopular: true},
		{Name: "Sugarcane juice", Category: db_models.MealCategorySnack, Cuisine: "khmer", VenueType: db_models.MealVenueStreetFood, PricePerPerson: usd(0.75)},
		{Name: "Gelato and coffee", Category: db_models.MealCategorySnack, Cuisine: "western", VenueType: db_models.MealVenueRestaurant, PricePerPerson: usd(4.5)},
	}
	return tx.Create(&meals).Error
}

func seedLocalTransport(tx *gorm.DB) error {
	options := []db_models.LocalTransportOption{
		{Type: "driver", Name: "Tuk Tuk with driver", PricePerDay: usdPtr(18), IsActive: true},
		{Type: "rental", Name: "Motorbike rental", PricePerDay: usdPtr(8), IsActive: true},
		{Type: "rental", Name: "Bicycle rental", PricePerDay: usdPtr(2.5), IsActive: true},
		{Type: "driver", Name: "Private Car with driver", PricePerDay: usdPtr(45), IsActive: true},
		{Type: "driver", Name: "Cyclo ride", PricePerTrip: usdPtr(1.5), IsActive: true},
		{Type: "driver", Name: "Moto taxi", PricePerHour: usdPtr(2), IsActive: true},
	}
	return tx.Create(&options).Error
}

func seedDestinations(tx *gorm.DB) error {
	destinations := []db_models.Destination{
		{
			Name:             "Angkor Wat",
			Province:         "Siem Reap",
			Description:      "The largest religious monument in the world, heart of the Angkor Archaeological Park.",
			EntranceFee:      usd(37),
			TransportFee:     usd(5),
			GuideFee:         usd(15),
			RequiresGuide:    false,
			RecommendedHours: 6,
			Highlights:       pq.StringArray{"sunrise over the towers", "bas-relief galleries", "Bakan upper terrace"},
			IsActive:         true,
			Attractions: []db_models.DestinationAttraction{
				{Name: "Angkor National Museum", DistanceKM: 2.5, Cost: usd(12), SortOrder: 1},
				{Name: "Ta Prohm tree temple", DistanceKM: 3.5, Cost: usd(14), SortOrder: 2},
				{Name: "Tonle Sap floating village tour", DistanceKM: 15, Cost: usd(20), SortOrder: 3},
				{Name: "Banteay Srei citadel", DistanceKM: 35, Cost: usd(25), SortOrder: 4},
			},
		},
		{
			Name:             "Tonle Sap Lake",
			Province:         "Siem Reap",
			Description:      "Southeast Asia's largest freshwater lake with stilted floating villages.",
			EntranceFee:      usd(20),
			TransportFee:     usd(8),
			GuideFee:         usd(10),
			RequiresGuide:    true,
			RecommendedHours: 4,
			Highlights:       pq.StringArray{"Kampong Phluk stilt houses", "flooded forest by paddle boat"},
			IsActive:         true,
			Attractions: []db_models.DestinationAttraction{
				{Name: "Crocodile farm visit", DistanceKM: 1, Cost: usd(5), SortOrder: 1},
				{Name: "Sunset boat deck", DistanceKM: 2, Cost: usd(10), SortOrder: 2},
			},
		},
		{
			Name:             "Kulen Mountain",
			Province:         "Siem Reap",
			Description:      "Sacred mountain with waterfalls and the river of a thousand lingas.",
			EntranceFee:      usd(20),
			TransportFee:     usd(12),
			GuideFee:         usd(12),
			RequiresGuide:    false,
			RecommendedHours: 7,
			Highlights:       pq.StringArray{"two-tier waterfall", "reclining Buddha", "carved riverbed"},
			IsActive:         true,
			Attractions: []db_models.DestinationAttraction{
				{Name: "Preah Ang Thom pagoda", DistanceKM: 1.5, Cost: usd(3), SortOrder: 1},
				{Name: "Thousand lingas river walk", DistanceKM: 2, Cost: usd(4), SortOrder: 2},
			},
		},
	}
	return tx.Create(&destinations).Error
}
