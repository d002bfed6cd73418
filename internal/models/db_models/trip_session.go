package db_models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// The nine preference dimensions every planning session must answer.
// DimensionOrder is the order the question flow walks them in.
const (
	DimTransportation       = "transportation"
	DimDeparture            = "departure"
	DimDuration             = "duration"
	DimPartySize            = "party_size"
	DimAgeRange             = "age_range"
	DimDestination          = "destination"
	DimLocalTransportation  = "local_transportation"
	DimMealPreference       = "meal_preference"
	DimHotel                = "hotel"
)

var DimensionOrder = []string{
	DimTransportation,
	DimDeparture,
	DimDuration,
	DimPartySize,
	DimAgeRange,
	DimDestination,
	DimLocalTransportation,
	DimMealPreference,
	DimHotel,
}

func IsKnownDimension(dimension string) bool {
	for _, d := range DimensionOrder {
		if d == dimension {
			return true
		}
	}
	return false
}

// AnswerMap stores one scalar answer per dimension as a jsonb column.
type AnswerMap map[string]string

func (m AnswerMap) Value() (driver.Value, error) {
	if m == nil {
		m = AnswerMap{}
	}
	return json.Marshal(m)
}

func (m *AnswerMap) Scan(value interface{}) error {
	if value == nil {
		*m = AnswerMap{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return fmt.Errorf("unsupported answer map source type %T", value)
	}
}

// TripSession accumulates one traveler's questionnaire answers and, once all
// dimensions are answered, the computed recommendation.
//
// Answers is the source of truth; the typed columns next to it are filled from
// a dimension-to-field mapping when an answer is submitted, so the cost engine
// never re-parses raw answer strings.
type TripSession struct {
	BaseModel
	Budget  decimal.Decimal `gorm:"type:numeric(12,2)"`
	Answers AnswerMap       `gorm:"type:jsonb"`

	Transportation string
	Departure      string
	DurationDays   int
	PartySize      int
	AgeRange       string
	Destination    string
	// DestinationID is resolved from the destination answer against the
	// catalog at submit time. Nil when no catalog row matched; the cost
	// calculator then falls back to the substring match shim.
	DestinationID  *uuid.UUID `gorm:"type:uuid"`
	LocalTransport string
	MealPreference string
	HotelStar      int

	TotalCost          decimal.Decimal `gorm:"type:numeric(12,2)"`
	MealCost           decimal.Decimal `gorm:"type:numeric(12,2)"`
	LocalTransportCost decimal.Decimal `gorm:"type:numeric(12,2)"`
	RecommendationJSON datatypes.JSON
	ItineraryJSON      datatypes.JSON
	CompletedAt        int64
}

// SetAnswer merges one answer into the map, overwriting any prior value for
// the same dimension.
func (s *TripSession) SetAnswer(dimension, value string) {
	if s.Answers == nil {
		s.Answers = AnswerMap{}
	}
	s.Answers[dimension] = value
}

// IsComplete reports whether every required dimension has a non-empty answer.
func (s *TripSession) IsComplete() bool {
	return s.FirstUnanswered() == ""
}

// FirstUnanswered returns the first dimension in DimensionOrder that has no
// non-empty answer, or "" when the session is complete.
func (s *TripSession) FirstUnanswered() string {
	for _, dim := range DimensionOrder {
		if s.Answers[dim] == "" {
			return dim
		}
	}
	return ""
}
