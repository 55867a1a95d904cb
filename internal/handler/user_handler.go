package handler

import (
	"net/url"

	"trivia-board/internal/domain"
	"trivia-board/internal/dto"
	"trivia-board/internal/service"
	"trivia-board/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles user-related HTTP requests.
type UserHandler struct {
	userService service.UserService
	validator   *validation.Validator
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
		validator:   validation.NewValidator(),
	}
}

// ListUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {object} dto.UsersResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	resp, err := h.userService.ListUsers(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetUser godoc
// @Summary Get a user by username
// @Description Usernames are matched exactly, including case
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /users/{username} [get]
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	username, err := url.PathUnescape(c.Params("username"))
	if err != nil {
		return domain.ValidationErrors{domain.NewInvalidFormatError("username", c.Params("username"))}
	}

	resp, err := h.userService.GetUser(c.UserContext(), username)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// CreateUser godoc
// @Summary Create a user
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "Username"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /users [post]
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if errs := h.validator.ValidateUsername(req.Username); len(errs) > 0 {
		return errs
	}

	resp, err := h.userService.CreateUser(c.UserContext(), req.Username)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}
