package dto

import "trivia-board/internal/domain"

// GenerateQuizRequest represents the quiz parameters in the API request
// @Description Request body for generating a quiz
type GenerateQuizRequest struct {
	Amount     float64 `json:"amount" example:"10"`
	Category   string  `json:"category,omitempty" example:"science: computers"`
	Difficulty string  `json:"difficulty,omitempty" example:"easy"`
	Type       string  `json:"type,omitempty" example:"multiple"`
}

// ToDomain converts the request body into the loosely typed domain request.
func (r GenerateQuizRequest) ToDomain() domain.QuizRequest {
	return domain.QuizRequest{
		Amount:     r.Amount,
		Category:   r.Category,
		Difficulty: r.Difficulty,
		Type:       r.Type,
	}
}

// QuizResponse represents a generated quiz in the API response
// @Description Generated quiz questions
type QuizResponse struct {
	Questions []domain.Question `json:"questions"`
}

// CategoryResponse represents a category in the API response
// @Description Category information
type CategoryResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CategoriesResponse wraps the category list
type CategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// MessageResponse represents a generic message response.
// @Description Generic message response
type MessageResponse struct {
	Message string `json:"message"`
}
