package opentdb

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"net/url"
	"strconv"

	"trivia-board/internal/domain"
	"trivia-board/internal/metrics"

	"go.uber.org/zap"
)

// OpenTDB response codes.
const (
	codeSuccess      = 0
	codeNoResults    = 1
	codeInvalidParam = 2
	codeRateLimited  = 5
)

const outcomeTransportError = "transport_error"

type rawQuestion struct {
	Type             string   `json:"type"`
	Difficulty       string   `json:"difficulty"`
	Category         string   `json:"category"`
	Question         string   `json:"question"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
}

type apiResponse struct {
	ResponseCode int           `json:"response_code"`
	Results      []rawQuestion `json:"results"`
}

// Client calls the Open Trivia Database question endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a Client for baseURL. A nil httpClient uses http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{baseURL: baseURL, httpClient: httpClient, logger: logger}
}

var _ domain.QuestionSource = (*Client)(nil)

// FetchQuestions requests questions for filter. Transport problems are returned as a
// SOURCE_UNAVAILABLE error whose message does not include the underlying cause;
// a non-zero response_code is reported through the result's Outcome.
func (c *Client) FetchQuestions(ctx context.Context, filter domain.QuestionFilter) (*domain.SourceResult, error) {
	reqURL, err := c.buildURL(filter)
	if err != nil {
		return nil, c.transportError("failed to build question source url", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, c.transportError("failed to build question source request", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.transportError("question source request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.transportError("question source returned non-2xx status",
			fmt.Errorf("opentdb returned status %d", resp.StatusCode))
	}

	var payload apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, c.transportError("failed to decode question source response", err)
	}

	outcome := classify(payload.ResponseCode)
	metrics.QuestionSourceFetches.WithLabelValues(string(outcome)).Inc()

	result := &domain.SourceResult{Outcome: outcome, ResponseCode: payload.ResponseCode}
	if outcome != domain.OutcomeSuccess {
		c.logger.Warn("Question source reported a soft failure",
			zap.Int("response_code", payload.ResponseCode),
			zap.String("outcome", string(outcome)),
		)
		return result, nil
	}

	result.Questions = make([]domain.RawQuestion, 0, len(payload.Results))
	for _, rq := range payload.Results {
		result.Questions = append(result.Questions, toDomain(rq))
	}
	return result, nil
}

func (c *Client) buildURL(filter domain.QuestionFilter) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", err
	}

	params := u.Query()
	params.Set("amount", strconv.Itoa(filter.Amount))
	if filter.Category != nil {
		params.Set("category", strconv.Itoa(*filter.Category))
	}
	if filter.Difficulty != "" {
		params.Set("difficulty", string(filter.Difficulty))
	}
	if filter.Type != "" {
		params.Set("type", string(filter.Type))
	}
	u.RawQuery = params.Encode()
	return u.String(), nil
}

func (c *Client) transportError(msg string, cause error) error {
	metrics.QuestionSourceFetches.WithLabelValues(outcomeTransportError).Inc()
	c.logger.Error(msg, zap.String("base_url", c.baseURL), zap.Error(cause))
	return domain.NewSourceUnavailableError(cause)
}

func classify(responseCode int) domain.SourceOutcome {
	switch responseCode {
	case codeSuccess:
		return domain.OutcomeSuccess
	case codeNoResults:
		return domain.OutcomeNoMatch
	case codeInvalidParam:
		return domain.OutcomeInvalidRequest
	case codeRateLimited:
		return domain.OutcomeRateLimited
	default:
		return domain.OutcomeUnknown
	}
}

// OpenTDB HTML-encodes question and answer text by default.
func toDomain(rq rawQuestion) domain.RawQuestion {
	incorrect := make([]string, len(rq.IncorrectAnswers))
	for i, a := range rq.IncorrectAnswers {
		incorrect[i] = html.UnescapeString(a)
	}
	return domain.RawQuestion{
		Type:             domain.QuestionType(rq.Type),
		Difficulty:       rq.Difficulty,
		Category:         html.UnescapeString(rq.Category),
		Question:         html.UnescapeString(rq.Question),
		CorrectAnswer:    html.UnescapeString(rq.CorrectAnswer),
		IncorrectAnswers: incorrect,
	}
}
