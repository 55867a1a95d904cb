package service

import (
	"context"

	"trivia-board/internal/domain"
	"trivia-board/internal/dto"
	"trivia-board/internal/logger"

	"go.uber.org/zap"
)

// QuizService defines the interface for quiz-related operations
type QuizService interface {
	GenerateQuiz(ctx context.Context, req *dto.GenerateQuizRequest) (*dto.QuizResponse, error)
	GetCategories() *dto.CategoriesResponse
}

// quizService implements QuizService
type quizService struct {
	source    domain.QuestionSource
	assembler *domain.Assembler
}

// NewQuizService creates a new instance of quizService
func NewQuizService(source domain.QuestionSource, assembler *domain.Assembler) QuizService {
	return &quizService{
		source:    source,
		assembler: assembler,
	}
}

// GenerateQuiz normalizes the request, fetches matching questions and
// reshapes them. An invalid amount fails before the source is called.
func (s *quizService) GenerateQuiz(ctx context.Context, req *dto.GenerateQuizRequest) (*dto.QuizResponse, error) {
	filter, err := domain.NormalizeQuizRequest(req.ToDomain())
	if err != nil {
		return nil, err
	}

	result, err := s.source.FetchQuestions(ctx, filter)
	if err != nil {
		return nil, domain.Wrap(err, domain.CodeSourceUnavailable, "Error fetching quiz questions from trivia API.")
	}

	if result.Outcome != domain.OutcomeSuccess {
		logger.Get().Warn("Question source returned no questions",
			zap.Int("response_code", result.ResponseCode),
			zap.String("outcome", string(result.Outcome)),
			zap.Int("amount", filter.Amount),
			zap.String("difficulty", string(filter.Difficulty)),
			zap.String("type", string(filter.Type)),
		)
		return nil, domain.NewSourceNoMatchError(result.ResponseCode, result.Outcome)
	}

	return &dto.QuizResponse{
		Questions: s.assembler.Assemble(result.Questions),
	}, nil
}

// GetCategories lists the category names the normalizer understands.
func (s *quizService) GetCategories() *dto.CategoriesResponse {
	categories := domain.Categories()
	resp := &dto.CategoriesResponse{Categories: make([]dto.CategoryResponse, len(categories))}
	for i, c := range categories {
		resp.Categories[i] = dto.CategoryResponse{ID: c.ID, Name: c.Name}
	}
	return resp
}
