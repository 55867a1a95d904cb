package opentdb

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"

	"trivia-board/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewReader([]byte(body))),
		Header:     make(http.Header),
	}
}

func newTestClient(rt http.RoundTripper) *Client {
	return NewClient("https://opentdb.test/api.php", &http.Client{Transport: rt}, nil)
}

func TestFetchQuestions_OnlyPresentParamsAreSent(t *testing.T) {
	var seen url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"response_code":0,"results":[]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client(), nil)

	_, err := client.FetchQuestions(context.Background(), domain.QuestionFilter{Amount: 5})
	require.NoError(t, err)
	assert.Equal(t, url.Values{"amount": {"5"}}, seen)

	category := 18
	_, err = client.FetchQuestions(context.Background(), domain.QuestionFilter{
		Amount:     10,
		Category:   &category,
		Difficulty: domain.DifficultyHard,
		Type:       domain.TypeBoolean,
	})
	require.NoError(t, err)
	assert.Equal(t, "10", seen.Get("amount"))
	assert.Equal(t, "18", seen.Get("category"))
	assert.Equal(t, "hard", seen.Get("difficulty"))
	assert.Equal(t, "boolean", seen.Get("type"))
}

func TestFetchQuestions_Success(t *testing.T) {
	client := newTestClient(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{
			"response_code": 0,
			"results": [{
				"type": "multiple",
				"difficulty": "easy",
				"category": "Geography",
				"question": "What is the capital of France?",
				"correct_answer": "Paris",
				"incorrect_answers": ["London", "Berlin", "Rome"]
			}, {
				"type": "boolean",
				"difficulty": "medium",
				"category": "Science &amp; Nature",
				"question": "&quot;H2O&quot; is water.",
				"correct_answer": "True",
				"incorrect_answers": ["False"]
			}]
		}`), nil
	}))

	result, err := client.FetchQuestions(context.Background(), domain.QuestionFilter{Amount: 2})
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSuccess, result.Outcome)
	require.Len(t, result.Questions, 2)

	assert.Equal(t, domain.RawQuestion{
		Type:             domain.TypeMultiple,
		Difficulty:       "easy",
		Category:         "Geography",
		Question:         "What is the capital of France?",
		CorrectAnswer:    "Paris",
		IncorrectAnswers: []string{"London", "Berlin", "Rome"},
	}, result.Questions[0])
	assert.Equal(t, `"H2O" is water.`, result.Questions[1].Question)
	assert.Equal(t, "Science & Nature", result.Questions[1].Category)
	assert.Equal(t, domain.TypeBoolean, result.Questions[1].Type)
}

func TestFetchQuestions_NonZeroResponseCodes(t *testing.T) {
	tests := []struct {
		code int
		want domain.SourceOutcome
	}{
		{1, domain.OutcomeNoMatch},
		{2, domain.OutcomeInvalidRequest},
		{5, domain.OutcomeRateLimited},
		{4, domain.OutcomeUnknown},
	}

	for _, tt := range tests {
		client := newTestClient(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
			// results present but must not be surfaced
			return jsonResponse(http.StatusOK, `{"response_code":`+strconv.Itoa(tt.code)+`,"results":[{"question":"ignored"}]}`), nil
		}))

		result, err := client.FetchQuestions(context.Background(), domain.QuestionFilter{Amount: 3})
		require.NoError(t, err)
		assert.Equal(t, tt.want, result.Outcome)
		assert.Equal(t, tt.code, result.ResponseCode)
		assert.Nil(t, result.Questions)
	}
}

func TestFetchQuestions_TransportErrorIsHidden(t *testing.T) {
	transportErr := errors.New("dial tcp 104.26.0.1:443: connect: connection refused")
	client := newTestClient(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		return nil, transportErr
	}))

	result, err := client.FetchQuestions(context.Background(), domain.QuestionFilter{Amount: 3})
	require.Error(t, err)
	assert.Nil(t, result)

	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeSourceUnavailable, domainErr.Code)
	assert.NotContains(t, domainErr.Message, "connection refused")
	assert.NotContains(t, err.Error(), "connection refused")
	assert.ErrorIs(t, err, transportErr)
}

func TestFetchQuestions_NonOKStatus(t *testing.T) {
	client := newTestClient(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusBadGateway, ""), nil
	}))

	_, err := client.FetchQuestions(context.Background(), domain.QuestionFilter{Amount: 5})
	assert.True(t, domain.IsCode(err, domain.CodeSourceUnavailable))
}

func TestFetchQuestions_JSONDecodeError(t *testing.T) {
	client := newTestClient(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, "not-json"), nil
	}))

	_, err := client.FetchQuestions(context.Background(), domain.QuestionFilter{Amount: 3})
	assert.True(t, domain.IsCode(err, domain.CodeSourceUnavailable))
}

func TestFetchQuestions_InvalidBaseURL(t *testing.T) {
	client := NewClient("://bad-url", nil, nil)

	_, err := client.FetchQuestions(context.Background(), domain.QuestionFilter{Amount: 3})
	assert.True(t, domain.IsCode(err, domain.CodeSourceUnavailable))
}
