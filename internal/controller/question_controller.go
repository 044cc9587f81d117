package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gmorandi/parlaquiz/internal/dto"
	"github.com/gmorandi/parlaquiz/internal/service"
	"github.com/rs/zerolog/log"
)

type QuestionController struct {
	questionService service.QuestionService
}

func NewQuestionController(questionService service.QuestionService) *QuestionController {
	return &QuestionController{questionService: questionService}
}

// GetQuestions godoc
// @Summary List all placement test questions
// @Description Returns the full question catalog without correctness flags.
// @Tags Questions
// @Produce json
// @Success 200 {object} dto.QuestionsListResponse
// @Success 204 "Catalog is empty"
// @Failure 500 {object} dto.ErrorResponse
// @Router /questions [get]
func (c *QuestionController) GetQuestions(ctx *gin.Context) {
	resp, err := c.questionService.GetAllQuestions()
	if err != nil {
		log.Error().Err(err).Msg("GetQuestions: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve questions"})
		return
	}
	if len(resp.Items) == 0 {
		ctx.Status(http.StatusNoContent)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetQuestionByID godoc
// @Summary Get a single question
// @Description Returns one question plus a counter with the catalog total and the question's position.
// @Tags Questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.QuestionsListResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid question ID"
// @Failure 404 {object} dto.ErrorResponse "No such question"
// @Failure 500 {object} dto.ErrorResponse
// @Router /questions/{id} [get]
func (c *QuestionController) GetQuestionByID(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid question ID format"})
		return
	}

	resp, err := c.questionService.GetQuestion(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "No such question"})
			return
		}
		log.Error().Err(err).Int("questionID", id).Msg("GetQuestionByID: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve question"})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
