package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HeangSokmeng/camtour-api-sub000/internal/models/request_models"
	"github.com/HeangSokmeng/camtour-api-sub000/internal/services"
	"github.com/HeangSokmeng/camtour-api-sub000/pkg/utils"
)

type TripController struct {
	sessionService services.SessionServiceInterface
}

func NewTripController(sessionService services.SessionServiceInterface) *TripController {
	return &TripController{
		sessionService: sessionService,
	}
}

// StartSession godoc
// @Summary Start a trip planning session
// @Description Create a new planning session with a fixed budget
// @Tags Trip
// @Accept json
// @Produce json
// @Param request body request_models.StartSessionRequest true "Trip budget in USD"
// @Success 200 {object} response_models.StartSessionResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/trip/start [post]
func (t *TripController) StartSession(c *gin.Context) {
	var req request_models.StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "A numeric budget is required")
		return
	}

	session, err := t.sessionService.StartSession(c.Request.Context(), req.Budget)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, session, "Session started successfully")
}

// SubmitAnswer godoc
// @Summary Submit one questionnaire answer
// @Description Merge one answer into the session; returns the next question, or the computed recommendation once all dimensions are answered
// @Tags Trip
// @Accept json
// @Produce json
// @Param request body request_models.SubmitAnswerRequest true "Session ID, dimension, answer value"
// @Success 200 {object} response_models.SubmitAnswerResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/trip/answer [post]
func (t *TripController) SubmitAnswer(c *gin.Context) {
	var req request_models.SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "session_id, dimension and value are required")
		return
	}

	answer, err := t.sessionService.SubmitAnswer(c.Request.Context(), req.SessionID, req.Dimension, req.Value)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	message := "Answer recorded"
	if answer.Complete {
		message = "Recommendation computed"
	}
	utils.RespondSuccess(c, answer, message)
}

// GetRecommendation godoc
// @Summary Get a computed recommendation
// @Description Fetch the previously computed recommendation for a completed session
// @Tags Trip
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} response_models.StoredRecommendation
// @Failure 404 {object} utils.APIResponse
// @Router /api/trip/recommendation/{sessionId} [get]
func (t *TripController) GetRecommendation(c *gin.Context) {
	sessionID := c.Param("sessionId")
	if sessionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Session ID is required")
		return
	}

	recommendation, err := t.sessionService.GetRecommendation(c.Request.Context(), sessionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, recommendation, "Recommendation fetched successfully")
}
