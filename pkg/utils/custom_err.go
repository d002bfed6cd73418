package utils

import "errors"

var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrInvalidBudget          = errors.New("invalid budget")
	ErrUnknownDimension       = errors.New("unknown question dimension")
	ErrEmptyAnswer            = errors.New("empty answer value")
	ErrQuestionNotFound       = errors.New("question not found")
	ErrSessionNotFound        = errors.New("session not found")
	ErrRecommendationNotReady = errors.New("recommendation not computed yet")
	ErrDatabaseError          = errors.New("database error")
)
