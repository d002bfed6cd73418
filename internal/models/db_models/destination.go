package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type Destination struct {
	BaseModel
	Name             string `gorm:"index"`
	Province         string
	Description      string
	EntranceFee      decimal.Decimal `gorm:"type:numeric(12,2)"`
	TransportFee     decimal.Decimal `gorm:"type:numeric(12,2)"`
	GuideFee         decimal.Decimal `gorm:"type:numeric(12,2)"`
	RequiresGuide    bool
	RecommendedHours float64
	Highlights       pq.StringArray `gorm:"type:text[]"`
	IsActive         bool           `gorm:"default:true"`

	Attractions []DestinationAttraction `gorm:"foreignKey:DestinationID"`
}

// DestinationAttraction is a nearby site a visitor can add on. Attractions
// are walked in SortOrder when handing out bonus suggestions.
type DestinationAttraction struct {
	BaseModel
	DestinationID uuid.UUID `gorm:"type:uuid;index"`
	Name          string
	DistanceKM    float64
	Cost          decimal.Decimal `gorm:"type:numeric(12,2)"`
	SortOrder     int
}

// VisitCost is the per-person cost of visiting: entrance plus on-site
// transport, plus the guide fee when a guide is mandatory.
func (d *Destination) VisitCost() decimal.Decimal {
	cost := d.EntranceFee.Add(d.TransportFee)
	if d.RequiresGuide {
		cost = cost.Add(d.GuideFee)
	}
	return cost
}
