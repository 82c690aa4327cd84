package opentdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const (
	apiURL        = "https://opentdb.com/api.php"
	defaultAmount = 10
	maxAmount     = 50
)

var (
	ErrNoResults        = errors.New("opentdb: not enough questions for query")
	ErrInvalidParameter = errors.New("opentdb: invalid query parameter")
	ErrRateLimited      = errors.New("opentdb: rate limited")
	ErrUnexpectedReply  = errors.New("opentdb: unexpected reply")
)

// Query narrows a trivia batch. Zero values leave the filter off.
type Query struct {
	Amount     int
	Category   int
	Difficulty string
}

// normalized applies the default amount and the per-call cap.
func (q Query) normalized() Query {
	if q.Amount <= 0 {
		q.Amount = defaultAmount
	}
	if q.Amount > maxAmount {
		q.Amount = maxAmount
	}
	q.Difficulty = strings.ToLower(strings.TrimSpace(q.Difficulty))
	return q
}

func (q Query) values() url.Values {
	values := url.Values{}
	values.Set("amount", strconv.Itoa(q.Amount))
	values.Set("type", "multiple")
	if q.Category > 0 {
		values.Set("category", strconv.Itoa(q.Category))
	}
	if q.Difficulty != "" {
		values.Set("difficulty", q.Difficulty)
	}
	return values
}

// Trivia is one multiple-choice item as OpenTriviaDB sends it, HTML-escaped.
type Trivia struct {
	Difficulty       string   `json:"difficulty"`
	Category         string   `json:"category"`
	Question         string   `json:"question"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
}

type batch struct {
	ResponseCode int      `json:"response_code"`
	Results      []Trivia `json:"results"`
}

// responseError maps the documented response_code values.
func responseError(code int) error {
	switch code {
	case 0:
		return nil
	case 1:
		return ErrNoResults
	case 2:
		return ErrInvalidParameter
	case 5:
		return ErrRateLimited
	default:
		return fmt.Errorf("%w: response_code=%d", ErrUnexpectedReply, code)
	}
}

type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    apiURL,
	}
}

func (c *Client) Trivia(ctx context.Context, query Query) ([]Trivia, error) {
	query = query.normalized()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.values().Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, ErrRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrUnexpectedReply, resp.StatusCode)
	}

	var reply batch
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedReply, err)
	}
	if err := responseError(reply.ResponseCode); err != nil {
		return nil, err
	}
	return reply.Results, nil
}
