package questions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dtnitsch/url-keywords/models"
	"github.com/microcosm-cc/bluemonday"
)

var (
	// ErrMissingAPIKey is returned when no SerpAPI key is configured.
	ErrMissingAPIKey = errors.New("SerpAPI key is not set")
	// ErrServiceFailed wraps transport errors and unusable responses.
	ErrServiceFailed = errors.New("related-question lookup failed")
)

// SerpAPIClient queries the SerpAPI Google engine and reads the
// related_questions block of the response.
type SerpAPIClient struct {
	client   *http.Client
	endpoint string
	apiKey   string
	policy   *bluemonday.Policy
}

type serpResponse struct {
	Error            string `json:"error"`
	RelatedQuestions []struct {
		Question string `json:"question"`
	} `json:"related_questions"`
}

func NewSerpAPIClient(cfg models.QuestionsConfig) *SerpAPIClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &SerpAPIClient{
		client:   &http.Client{Timeout: timeout},
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
		policy:   bluemonday.StrictPolicy(),
	}
}

// Related returns up to limit questions for query, cleaned of markup.
func (c *SerpAPIClient) Related(ctx context.Context, query string, limit int) ([]string, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	params := url.Values{}
	params.Set("engine", "google")
	params.Set("q", query)
	params.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrServiceFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrServiceFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status code %d", ErrServiceFailed, resp.StatusCode)
	}

	var body serpResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 4<<20)).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %w", ErrServiceFailed, err)
	}
	if body.Error != "" {
		return nil, fmt.Errorf("%w: %s", ErrServiceFailed, body.Error)
	}

	out := make([]string, 0, len(body.RelatedQuestions))
	for _, rq := range body.RelatedQuestions {
		if limit > 0 && len(out) == limit {
			break
		}
		if q := c.clean(rq.Question); q != "" {
			out = append(out, q)
		}
	}
	return out, nil
}

func (c *SerpAPIClient) clean(s string) string {
	s = html.UnescapeString(c.policy.Sanitize(s))
	return strings.Join(strings.Fields(s), " ")
}
