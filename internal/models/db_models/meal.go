package db_models

import "github.com/shopspring/decimal"

const (
	MealCategoryBreakfast = "breakfast"
	MealCategoryLunch     = "lunch"
	MealCategoryDinner    = "dinner"
	MealCategorySnack     = "snack"

	MealVenueStreetFood = "street_food"
	MealVenueRestaurant = "restaurant"
)

type Meal struct {
	BaseModel
	Name           string
	Category       string `gorm:"index"`
	Cuisine        string
	VenueType      string
	PricePerPerson decimal.Decimal `gorm:"type:numeric(12,2)"`
	IsPopular      bool
}
