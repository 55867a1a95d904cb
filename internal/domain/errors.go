package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrorCode is the stable, machine-readable kind of a DomainError.
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeValidation   ErrorCode = "VALIDATION_ERROR"

	// Quiz generation
	CodeInvalidAmount     ErrorCode = "INVALID_AMOUNT"
	CodeSourceUnavailable ErrorCode = "SOURCE_UNAVAILABLE"
	CodeSourceNoMatch     ErrorCode = "SOURCE_NO_MATCH"

	// Users and scores
	CodeUserNotFound           ErrorCode = "USER_NOT_FOUND"
	CodeUsernameTaken          ErrorCode = "USERNAME_TAKEN"
	CodeScoreSubmissionFailed  ErrorCode = "SCORE_SUBMISSION_FAILED"
	CodePersistenceUnavailable ErrorCode = "PERSISTENCE_UNAVAILABLE"
)

// DomainError represents a domain-specific error. Cause is logged but never serialized.
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"-"`
}

// Error returns only Message. Causes can carry transport or driver text and are
// reached through Unwrap or logged where the error is handled.
func (e *DomainError) Error() string {
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// WithContext attaches a detail that is returned to clients alongside the code.
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Wrap converts err into a DomainError of the given code. An err that already carries a
// DomainError is returned unchanged so the original kind survives enclosing layers.
func Wrap(err error, code ErrorCode, message string) error {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return err
	}
	return NewError(code, message, err)
}

// IsCode reports whether err carries a DomainError with the given code.
func IsCode(err error, code ErrorCode) bool {
	var domainErr *DomainError
	return errors.As(err, &domainErr) && domainErr.Code == code
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(CodeInternal, message, err)
}

func NewInvalidAmountError() *DomainError {
	return NewError(CodeInvalidAmount, "Invalid amount specified. Amount must be a positive integer.", nil)
}

// NewSourceUnavailableError keeps the transport failure as the cause only; the message is generic.
func NewSourceUnavailableError(cause error) *DomainError {
	return NewError(CodeSourceUnavailable, "Error fetching quiz questions from trivia API.", cause)
}

func NewSourceNoMatchError(responseCode int, outcome SourceOutcome) *DomainError {
	return NewError(CodeSourceNoMatch, "The trivia API could not provide questions for this request.", nil).
		WithContext("response_code", responseCode).
		WithContext("outcome", string(outcome))
}

func NewUserNotFoundError(username string) *DomainError {
	return NewError(CodeUserNotFound, fmt.Sprintf("User %q not found.", username), nil)
}

func NewUsernameTakenError(username string) *DomainError {
	return NewError(CodeUsernameTaken, fmt.Sprintf("Username %q already exists.", username), nil)
}

func NewScoreSubmissionFailedError(err error) *DomainError {
	return NewError(CodeScoreSubmissionFailed, "Failed to submit the score.", err)
}

func NewPersistenceUnavailableError(message string, err error) *DomainError {
	return NewError(CodePersistenceUnavailable, message, err)
}

// ValidationError describes one invalid request field.
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is returned by request validators and rendered as a 400.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

func NewMissingFieldError(field string) ValidationError {
	return ValidationError{Field: field, Message: "field is required"}
}

func NewInvalidFormatError(field string, value interface{}) ValidationError {
	return ValidationError{Field: field, Message: "invalid format", Value: value}
}

func NewOutOfRangeError(field string, value interface{}, min, max int) ValidationError {
	return ValidationError{Field: field, Message: fmt.Sprintf("must be between %d and %d", min, max), Value: value}
}
