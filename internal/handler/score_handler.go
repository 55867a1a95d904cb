package handler

import (
	"trivia-board/internal/domain"
	"trivia-board/internal/dto"
	"trivia-board/internal/service"
	"trivia-board/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ScoreHandler handles score submission and the leaderboard.
type ScoreHandler struct {
	scoreService service.ScoreService
	validator    *validation.Validator
}

func NewScoreHandler(scoreService service.ScoreService) *ScoreHandler {
	return &ScoreHandler{
		scoreService: scoreService,
		validator:    validation.NewValidator(),
	}
}

// SubmitScore godoc
// @Summary Submit a score
// @Description Records a completed quiz for an existing user
// @Tags scores
// @Accept json
// @Produce json
// @Param request body dto.SubmitScoreRequest true "Score details"
// @Success 201 {object} dto.SubmitScoreResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /scores [post]
func (h *ScoreHandler) SubmitScore(c *fiber.Ctx) error {
	var req dto.SubmitScoreRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if errs := h.validator.ValidateSubmitScoreRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.scoreService.SubmitScore(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetLeaderboard godoc
// @Summary Get the leaderboard
// @Description Highest score first, faster time breaks ties. A zero or missing filter is not applied.
// @Tags scores
// @Produce json
// @Param username query string false "Exact username"
// @Param score query int false "Minimum score"
// @Param time query number false "Maximum time in seconds"
// @Param amount query int false "Number of questions"
// @Param category query string false "Category"
// @Param difficulty query string false "Difficulty"
// @Param type query string false "Question type"
// @Success 200 {object} dto.LeaderboardResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /leaderboard [get]
func (h *ScoreHandler) GetLeaderboard(c *fiber.Ctx) error {
	var query dto.LeaderboardQuery
	if err := c.QueryParser(&query); err != nil {
		return domain.NewInvalidInputError("Invalid leaderboard filter")
	}
	if errs := h.validator.ValidateLeaderboardQuery(&query); len(errs) > 0 {
		return errs
	}

	resp, err := h.scoreService.Leaderboard(c.UserContext(), &query)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
