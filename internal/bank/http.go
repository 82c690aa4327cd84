package bank

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"quiz-session/internal/quiz"
)

const maxDocumentBytes = 8 << 20

// HTTPSource fetches a bank document, typically the /questions resource of
// the bank service or a static file host.
type HTTPSource struct {
	url        string
	httpClient *http.Client
}

func NewHTTPSource(url string, httpClient *http.Client) *HTTPSource {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPSource{url: url, httpClient: httpClient}
}

func (h *HTTPSource) Load(ctx context.Context) (quiz.Bank, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", quiz.ErrLoadFailure, err)
	}
	req.Header.Set("Accept", "application/json, application/yaml")

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", quiz.ErrLoadFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s returned status %d", quiz.ErrLoadFailure, h.url, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", quiz.ErrLoadFailure, err)
	}

	return Decode(data, formatForResponse(resp, h.url))
}

func (h *HTTPSource) String() string {
	return h.url
}

func formatForResponse(resp *http.Response, url string) Format {
	mediaType, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err == nil && strings.Contains(mediaType, "yaml") {
		return FormatYAML
	}
	if err == nil && strings.Contains(mediaType, "json") {
		return FormatJSON
	}
	return FormatForPath(url)
}
