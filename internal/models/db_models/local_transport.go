package db_models

import "github.com/shopspring/decimal"

// Assumed usage when deriving a daily rate from hourly or per-trip pricing.
const (
	localTransportHoursPerDay = 8
	localTransportTripsPerDay = 4
)

// LocalTransportOption is one way of getting around town once at the
// destination. A row carries whichever of the three price variants the vendor
// quotes; DailyCost normalizes them.
type LocalTransportOption struct {
	BaseModel
	Type         string
	Name         string
	PricePerHour *decimal.Decimal `gorm:"type:numeric(12,2)"`
	PricePerDay  *decimal.Decimal `gorm:"type:numeric(12,2)"`
	PricePerTrip *decimal.Decimal `gorm:"type:numeric(12,2)"`
	IsActive     bool             `gorm:"default:true"`
}

// DailyCost derives the cost of one day of use: the per-day quote when
// present, otherwise 8 hours of hourly pricing, otherwise 4 trips of per-trip
// pricing. Zero when the row carries no price at all.
func (o *LocalTransportOption) DailyCost() decimal.Decimal {
	switch {
	case o.PricePerDay != nil:
		return *o.PricePerDay
	case o.PricePerHour != nil:
		return o.PricePerHour.Mul(decimal.NewFromInt(localTransportHoursPerDay))
	case o.PricePerTrip != nil:
		return o.PricePerTrip.Mul(decimal.NewFromInt(localTransportTripsPerDay))
	default:
		return decimal.Zero
	}
}
