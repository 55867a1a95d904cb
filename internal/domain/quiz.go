package domain

import "context"

// Difficulty is an OpenTDB difficulty filter. The empty value means "no filter".
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// QuestionType is an OpenTDB question type filter. The empty value means "no filter".
type QuestionType string

const (
	TypeMultiple QuestionType = "multiple"
	TypeBoolean  QuestionType = "boolean"
)

// QuizRequest is the loosely typed input for generating a quiz.
// Amount is a float so that fractional input reaches validation.
type QuizRequest struct {
	Amount     float64
	Category   string
	Difficulty string
	Type       string
}

// QuestionFilter is a QuizRequest after normalization. Amount is always >= 1;
// a nil Category or empty Difficulty/Type leaves the choice to the question source.
type QuestionFilter struct {
	Amount     int
	Category   *int
	Difficulty Difficulty
	Type       QuestionType
}

// RawQuestion is one question as returned by the question source.
type RawQuestion struct {
	Type             QuestionType
	Difficulty       string
	Category         string
	Question         string
	CorrectAnswer    string
	IncorrectAnswers []string
}

// Answer is one answer choice. Correctness is carried only by IsCorrect.
type Answer struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"isCorrect"`
}

// Question is the client-facing question with exactly one correct answer.
type Question struct {
	Text    string       `json:"text"`
	Type    QuestionType `json:"type"`
	Answers []Answer     `json:"answers"`
}

// SourceOutcome classifies the response_code a question source embeds in a 200 body.
type SourceOutcome string

const (
	OutcomeSuccess        SourceOutcome = "success"
	OutcomeNoMatch        SourceOutcome = "no_match"
	OutcomeInvalidRequest SourceOutcome = "invalid_request"
	OutcomeRateLimited    SourceOutcome = "rate_limited"
	OutcomeUnknown        SourceOutcome = "unknown"
)

// SourceResult is a classified question source response. Questions is only
// populated when Outcome is OutcomeSuccess.
type SourceResult struct {
	Outcome      SourceOutcome
	ResponseCode int
	Questions    []RawQuestion
}

// QuestionSource fetches raw questions matching a normalized filter. Transport
// failures are returned as errors; soft failures are reported through the result.
type QuestionSource interface {
	FetchQuestions(ctx context.Context, filter QuestionFilter) (*SourceResult, error)
}
