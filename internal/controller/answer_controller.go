package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gmorandi/parlaquiz/internal/dto"
	"github.com/gmorandi/parlaquiz/internal/service"
	"github.com/rs/zerolog/log"
)

type AnswerController struct {
	quizService service.QuizService
	authService service.AuthService
}

func NewAnswerController(quizService service.QuizService, authService service.AuthService) *AnswerController {
	return &AnswerController{quizService: quizService, authService: authService}
}

// SubmitAnswer godoc
// @Summary Submit an answer for a session
// @Description Records the answer, grades it and advances the session's progress. Progress is never advanced when persistence fails.
// @Tags Answers
// @Accept json
// @Produce json
// @Param answer body dto.SubmitAnswerRequest true "Answer payload"
// @Success 200 {object} dto.AnswerAckResponse
// @Failure 400 {object} dto.ErrorResponse "Malformed body or unknown question/option"
// @Failure 401 {object} dto.ErrorResponse "Bad token or unknown session"
// @Failure 500 {object} dto.ErrorResponse "Persistence failure"
// @Router /answers [post]
func (c *AnswerController) SubmitAnswer(ctx *gin.Context) {
	var req dto.SubmitAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	if !c.authService.ValidateToken(req.Token) {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Unauthorized"})
		return
	}

	outcome, err := c.quizService.SubmitAnswer(req.SessionID, req.UserID, *req.QuestionID, *req.OptionID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnauthorized):
			ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Unauthorized"})
		case errors.Is(err, service.ErrValidation):
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		default:
			log.Error().Err(err).Str("sessionID", req.SessionID).Msg("SubmitAnswer: service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to save answer"})
		}
		return
	}

	ctx.JSON(http.StatusOK, dto.AnswerAckResponse{Status: "ok", Correct: outcome.Correct})
}

// GetStats godoc
// @Summary Placement results for a session
// @Description Returns totals, percentage, letter grade and CEFR proficiency band for a session's answer log.
// @Tags Answers
// @Accept json
// @Produce json
// @Param stats body dto.StatsRequest true "Stats payload"
// @Success 200 {object} dto.ScoreReportResponse
// @Failure 400 {object} dto.ErrorResponse "Malformed body"
// @Failure 401 {object} dto.ErrorResponse "Bad token"
// @Failure 404 {object} dto.ErrorResponse "No statistics for this session"
// @Failure 500 {object} dto.ErrorResponse
// @Router /answers/stats [post]
func (c *AnswerController) GetStats(ctx *gin.Context) {
	var req dto.StatsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	if !c.authService.ValidateToken(req.Token) {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Unauthorized"})
		return
	}

	report, err := c.quizService.SessionReport(req.SessionID, req.UserID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "No statistics found for this user or session"})
			return
		}
		log.Error().Err(err).Str("sessionID", req.SessionID).Msg("GetStats: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to fetch statistics"})
		return
	}
	ctx.JSON(http.StatusOK, report)
}

// GetUserHistory godoc
// @Summary Answer history for a user
// @Description All answers a user submitted across their sessions, oldest first.
// @Tags Answers
// @Produce json
// @Param user_id path string true "User key"
// @Success 200 {object} dto.AnswerHistoryResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /users/{user_id}/history [get]
func (c *AnswerController) GetUserHistory(ctx *gin.Context) {
	userID := ctx.Param("user_id")

	items, err := c.quizService.History(userID)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("GetUserHistory: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to fetch history"})
		return
	}
	ctx.JSON(http.StatusOK, dto.AnswerHistoryResponse{
		Items:   items,
		Counter: dto.Counter{Total: len(items)},
	})
}
