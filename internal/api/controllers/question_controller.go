package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/HeangSokmeng/camtour-api-sub000/internal/services"
	"github.com/HeangSokmeng/camtour-api-sub000/pkg/utils"
)

type QuestionController struct {
	questionService services.QuestionServiceInterface
}

func NewQuestionController(questionService services.QuestionServiceInterface) *QuestionController {
	return &QuestionController{
		questionService: questionService,
	}
}

// GetQuestions godoc
// @Summary List planning questions
// @Description Fetch the ordered list of active preference questions with their active options
// @Tags Trip
// @Produce json
// @Success 200 {array} response_models.QuestionResponse
// @Router /api/trip/questions [get]
func (q *QuestionController) GetQuestions(c *gin.Context) {
	questions, err := q.questionService.GetQuestions(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, questions, "Questions fetched successfully")
}

// GetQuestionByDimension godoc
// @Summary Get one planning question
// @Description Fetch a single question by its preference dimension
// @Tags Trip
// @Produce json
// @Param dimension path string true "Preference dimension"
// @Success 200 {object} response_models.QuestionResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/trip/questions/{dimension} [get]
func (q *QuestionController) GetQuestionByDimension(c *gin.Context) {
	dimension := c.Param("dimension")

	question, err := q.questionService.GetQuestionByDimension(c.Request.Context(), dimension)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, question, "Question fetched successfully")
}
