package response_models

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/HeangSokmeng/camtour-api-sub000/internal/models/db_models"
)

type OptionResponse struct {
	ID         string           `json:"id"`
	Value      string           `json:"value"`
	Label      string           `json:"label"`
	Price      *decimal.Decimal `json:"price,omitempty"`
	Conditions json.RawMessage  `json:"conditions,omitempty"`
}

type QuestionResponse struct {
	ID          string           `json:"id,omitempty"`
	Dimension   string           `json:"dimension"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	Options     []OptionResponse `json:"options"`
}

func BuildQuestionResponse(q *db_models.Question) QuestionResponse {
	options := make([]OptionResponse, 0, len(q.Options))
	for _, opt := range q.Options {
		options = append(options, OptionResponse{
			ID:         opt.ID.String(),
			Value:      opt.Value,
			Label:      opt.Label,
			Price:      opt.Price,
			Conditions: json.RawMessage(opt.Conditions),
		})
	}
	return QuestionResponse{
		ID:          q.ID.String(),
		Dimension:   q.Dimension,
		Title:       q.Title,
		Description: q.Description,
		Options:     options,
	}
}
