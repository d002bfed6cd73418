package request_models

import "github.com/shopspring/decimal"

type StartSessionRequest struct {
	Budget decimal.Decimal `json:"budget"`
}

type SubmitAnswerRequest struct {
	SessionID string `json:"session_id"`
	Dimension string `json:"dimension"`
	Value     string `json:"value"`
}
