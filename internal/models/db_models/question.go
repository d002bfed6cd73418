package db_models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Question struct {
	BaseModel
	Dimension   string `gorm:"uniqueIndex"`
	Title       string
	Description string
	SortOrder   int
	IsActive    bool `gorm:"default:true"`

	Options []QuestionOption `gorm:"foreignKey:QuestionID"`
}

type QuestionOption struct {
	BaseModel
	QuestionID uuid.UUID `gorm:"type:uuid;index"`
	Value      string
	Label      string
	Price      *decimal.Decimal `gorm:"type:numeric(12,2)"`
	// Conditions is advisory metadata for the client UI (e.g. show this
	// option only when another dimension took a given value). The engine
	// never enforces it.
	Conditions datatypes.JSON
	SortOrder  int
	IsActive   bool `gorm:"default:true"`
}
