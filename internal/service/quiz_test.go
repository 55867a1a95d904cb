package service

import (
	"context"
	"errors"
	"math"
	"net/http"
	"testing"

	"trivia-board/internal/adapter/opentdb"
	"trivia-board/internal/domain"
	"trivia-board/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestQuizService_GenerateQuiz_Success(t *testing.T) {
	source := new(MockQuestionSource)
	svc := NewQuizService(source, domain.NewAssembler(false))

	computers := 18
	expectedFilter := domain.QuestionFilter{
		Amount:     1,
		Category:   &computers,
		Difficulty: domain.DifficultyEasy,
		Type:       domain.TypeMultiple,
	}
	source.On("FetchQuestions", mock.Anything, expectedFilter).Return(&domain.SourceResult{
		Outcome: domain.OutcomeSuccess,
		Questions: []domain.RawQuestion{{
			Type:             domain.TypeMultiple,
			Question:         "What is the capital of France?",
			CorrectAnswer:    "Paris",
			IncorrectAnswers: []string{"London", "Berlin", "Rome"},
		}},
	}, nil)

	resp, err := svc.GenerateQuiz(context.Background(), &dto.GenerateQuizRequest{
		Amount:     1,
		Category:   "Science: Computers",
		Difficulty: "EASY",
		Type:       "Multiple",
	})
	require.NoError(t, err)
	require.Len(t, resp.Questions, 1)

	q := resp.Questions[0]
	assert.Equal(t, "What is the capital of France?", q.Text)
	assert.Equal(t, domain.TypeMultiple, q.Type)
	require.Len(t, q.Answers, 4)

	var correct []string
	for _, a := range q.Answers {
		if a.IsCorrect {
			correct = append(correct, a.Text)
		}
	}
	assert.Equal(t, []string{"Paris"}, correct)
	source.AssertExpectations(t)
}

func TestQuizService_GenerateQuiz_UnknownFiltersAreOmitted(t *testing.T) {
	source := new(MockQuestionSource)
	svc := NewQuizService(source, domain.NewAssembler(true))

	source.On("FetchQuestions", mock.Anything, domain.QuestionFilter{Amount: 3}).
		Return(&domain.SourceResult{Outcome: domain.OutcomeSuccess}, nil)

	resp, err := svc.GenerateQuiz(context.Background(), &dto.GenerateQuizRequest{
		Amount:     3,
		Category:   "underwater basket weaving",
		Difficulty: "impossible",
		Type:       "essay",
	})
	require.NoError(t, err)
	assert.NotNil(t, resp.Questions)
	assert.Empty(t, resp.Questions)
	source.AssertExpectations(t)
}

func TestQuizService_GenerateQuiz_InvalidAmountSkipsSource(t *testing.T) {
	for _, amount := range []float64{0, -3, 2.5, math.NaN(), math.Inf(1)} {
		source := new(MockQuestionSource)
		svc := NewQuizService(source, domain.NewAssembler(true))

		resp, err := svc.GenerateQuiz(context.Background(), &dto.GenerateQuizRequest{Amount: amount})
		assert.Nil(t, resp)
		assert.True(t, domain.IsCode(err, domain.CodeInvalidAmount), "amount %v", amount)
		source.AssertNotCalled(t, "FetchQuestions", mock.Anything, mock.Anything)
	}
}

func TestQuizService_GenerateQuiz_NoMatch(t *testing.T) {
	source := new(MockQuestionSource)
	svc := NewQuizService(source, domain.NewAssembler(true))

	source.On("FetchQuestions", mock.Anything, mock.Anything).
		Return(&domain.SourceResult{Outcome: domain.OutcomeNoMatch, ResponseCode: 1}, nil)

	resp, err := svc.GenerateQuiz(context.Background(), &dto.GenerateQuizRequest{Amount: 50, Category: "art"})
	assert.Nil(t, resp)

	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeSourceNoMatch, domainErr.Code)
	assert.Equal(t, 1, domainErr.Context["response_code"])
	assert.Equal(t, "no_match", domainErr.Context["outcome"])
}

func TestQuizService_GenerateQuiz_RateLimitedIsNoMatch(t *testing.T) {
	source := new(MockQuestionSource)
	svc := NewQuizService(source, domain.NewAssembler(true))

	source.On("FetchQuestions", mock.Anything, mock.Anything).
		Return(&domain.SourceResult{Outcome: domain.OutcomeRateLimited, ResponseCode: 5}, nil)

	_, err := svc.GenerateQuiz(context.Background(), &dto.GenerateQuizRequest{Amount: 10})

	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeSourceNoMatch, domainErr.Code)
	assert.Equal(t, "rate_limited", domainErr.Context["outcome"])
}

func TestQuizService_GenerateQuiz_SourceErrorPassesThrough(t *testing.T) {
	source := new(MockQuestionSource)
	svc := NewQuizService(source, domain.NewAssembler(true))

	sourceErr := domain.NewSourceUnavailableError(errors.New("i/o timeout"))
	source.On("FetchQuestions", mock.Anything, mock.Anything).Return(nil, sourceErr)

	_, err := svc.GenerateQuiz(context.Background(), &dto.GenerateQuizRequest{Amount: 10})
	assert.Same(t, sourceErr, err)
}

type failingTransport struct{ err error }

func (f failingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, f.err
}

func TestQuizService_GenerateQuiz_TransportErrorTextIsHidden(t *testing.T) {
	dialErr := errors.New("dial tcp 104.26.0.1:443: connect: connection refused")
	client := opentdb.NewClient("https://opentdb.test/api.php", &http.Client{Transport: failingTransport{err: dialErr}}, nil)
	svc := NewQuizService(client, domain.NewAssembler(true))

	resp, err := svc.GenerateQuiz(context.Background(), &dto.GenerateQuizRequest{Amount: 3})
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, domain.IsCode(err, domain.CodeSourceUnavailable))
	assert.NotContains(t, err.Error(), "connection refused")
	assert.ErrorIs(t, err, dialErr)
}

func TestQuizService_GenerateQuiz_UnexpectedErrorIsWrapped(t *testing.T) {
	source := new(MockQuestionSource)
	svc := NewQuizService(source, domain.NewAssembler(true))

	rawErr := errors.New("boom")
	source.On("FetchQuestions", mock.Anything, mock.Anything).Return(nil, rawErr)

	_, err := svc.GenerateQuiz(context.Background(), &dto.GenerateQuizRequest{Amount: 10})
	assert.True(t, domain.IsCode(err, domain.CodeSourceUnavailable))
	assert.ErrorIs(t, err, rawErr)
}

func TestQuizService_GetCategories(t *testing.T) {
	svc := NewQuizService(new(MockQuestionSource), domain.NewAssembler(true))

	resp := svc.GetCategories()
	require.Len(t, resp.Categories, 24)
	assert.Equal(t, 9, resp.Categories[0].ID)
	assert.Equal(t, 32, resp.Categories[len(resp.Categories)-1].ID)
}
