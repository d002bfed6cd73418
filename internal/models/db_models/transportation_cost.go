package db_models

import "github.com/shopspring/decimal"

// TransportationCost is one priced route leg, e.g. Phnom Penh -> Siem Reap by
// car. Cost is per person, one way.
type TransportationCost struct {
	BaseModel
	FromLocation  string `gorm:"index:idx_route"`
	ToLocation    string `gorm:"index:idx_route"`
	Mode          string `gorm:"index:idx_route"`
	Cost          decimal.Decimal `gorm:"type:numeric(12,2)"`
	DurationHours float64
}
