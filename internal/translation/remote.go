package translation

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/poultrymitra/mitra_backend/internal/apperrors"
	"github.com/poultrymitra/mitra_backend/internal/utils/retry"
)

// Remote translates English text into a target language.
type Remote interface {
	Translate(ctx context.Context, text string, lang string) (string, error)
}

// HTTPRemote calls a JSON translation API of the form
// GET {url}?q=...&source=en&target=...&key=... -> {"translatedText": "..."}.
type HTTPRemote struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

// NewHTTPRemote creates a remote translator. A nil client gets a 5s timeout.
func NewHTTPRemote(endpoint, apiKey string, client *http.Client) *HTTPRemote {
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	return &HTTPRemote{endpoint: endpoint, apiKey: apiKey, client: client}
}

var _ Remote = (*HTTPRemote)(nil)

type remoteResponse struct {
	TranslatedText string `json:"translatedText"`
}

func (r *HTTPRemote) Translate(ctx context.Context, text string, lang string) (string, error) {
	u, err := url.Parse(r.endpoint)
	if err != nil {
		return "", retry.Permanent(fmt.Errorf("invalid translation endpoint: %w", err))
	}
	q := u.Query()
	q.Set("q", text)
	q.Set("source", LangEnglish)
	q.Set("target", lang)
	if r.apiKey != "" {
		q.Set("key", r.apiKey)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", retry.Permanent(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("translation request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
		return "", fmt.Errorf("translation API returned %d", resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return "", retry.Permanent(fmt.Errorf("%w: translation API returned %d", apperrors.ErrValidation, resp.StatusCode))
	}

	var body remoteResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&body); err != nil {
		return "", retry.Permanent(fmt.Errorf("decode translation response: %w", err))
	}
	if body.TranslatedText == "" {
		return "", retry.Permanent(fmt.Errorf("translation API returned empty text"))
	}
	return body.TranslatedText, nil
}
