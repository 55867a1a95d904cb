package validation

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"trivia-board/internal/domain"
	"trivia-board/internal/dto"
)

const MaxUsernameLength = 50

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateUsername checks a username before it is stored or looked up.
// Usernames are case-sensitive and kept exactly as given.
func (v *Validator) ValidateUsername(username string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(username) == "" {
		errors = append(errors, domain.NewMissingFieldError("username"))
		return errors
	}

	if n := utf8.RuneCountInString(username); n > MaxUsernameLength {
		errors = append(errors, domain.NewOutOfRangeError("username", n, 1, MaxUsernameLength))
	}
	if !isValidUsername(username) {
		errors = append(errors, domain.NewInvalidFormatError("username", username))
	}

	return errors
}

// ValidateSubmitScoreRequest validates a score submission. The quiz data is
// recorded as sent and is not checked here.
func (v *Validator) ValidateSubmitScoreRequest(req *dto.SubmitScoreRequest) domain.ValidationErrors {
	errors := v.ValidateUsername(req.Username)

	if req.Score < 0 {
		errors = append(errors, domain.NewOutOfRangeError("score", req.Score, 0, math.MaxInt32))
	}
	if math.IsNaN(req.Time) || math.IsInf(req.Time, 0) || req.Time < 0 {
		errors = append(errors, domain.NewInvalidFormatError("time", req.Time))
	}

	return errors
}

// ValidateLeaderboardQuery rejects negative thresholds.
func (v *Validator) ValidateLeaderboardQuery(q *dto.LeaderboardQuery) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if q.Score < 0 {
		errors = append(errors, domain.NewOutOfRangeError("score", q.Score, 0, math.MaxInt32))
	}
	if math.IsNaN(q.Time) || math.IsInf(q.Time, 0) || q.Time < 0 {
		errors = append(errors, domain.NewInvalidFormatError("time", q.Time))
	}
	if q.Amount < 0 {
		errors = append(errors, domain.NewOutOfRangeError("amount", q.Amount, 0, math.MaxInt32))
	}

	return errors
}

// isValidUsername disallows surrounding whitespace and control characters.
func isValidUsername(s string) bool {
	if s != strings.TrimSpace(s) {
		return false
	}
	for _, r := range s {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}
