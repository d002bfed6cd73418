package db_models

import "github.com/shopspring/decimal"

type Hotel struct {
	BaseModel
	Name          string
	Star          int `gorm:"index"`
	PricePerNight decimal.Decimal `gorm:"type:numeric(12,2)"`
	Address       string
	IsActive      bool `gorm:"default:true"`
}
