package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// Client is a Translator backed by an HTTP translation service. Transient
// transport failures are retried inside the underlying client; provider
// rejections are surfaced as sentinel errors.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithAPIKey sets the provider API key sent on each request.
func WithAPIKey(key string) ClientOption {
	return func(c *Client) { c.apiKey = key }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// NewClient creates a Client for the translation service at baseURL.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 3
	retryClient.Logger = nil

	c := &Client{
		baseURL:    baseURL,
		httpClient: retryClient.StandardClient(),
	}
	c.httpClient.Timeout = 30 * time.Second

	for _, opt := range opts {
		opt(c)
	}
	return c
}

type translateRequest struct {
	Text               string `json:"text"`
	SourceLanguageCode string `json:"sourceLanguageCode"`
	TargetLanguageCode string `json:"targetLanguageCode"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
}

type providerError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Translate implements Translator against the provider's POST /translate
// endpoint.
func (c *Client) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	payload, err := json.Marshal(translateRequest{
		Text:               text,
		SourceLanguageCode: sourceLang,
		TargetLanguageCode: targetLang,
	})
	if err != nil {
		return "", fmt.Errorf("marshal translate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/translate", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build translate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("x-api-key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call translation provider: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read provider response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", c.decodeError(resp.StatusCode, body)
	}

	var out translateResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("decode provider response: %w", err)
	}
	return out.TranslatedText, nil
}

// decodeError maps the provider's error codes onto the package sentinels.
// Unknown codes and statuses come back as plain errors, which callers treat
// as internal failures.
func (c *Client) decodeError(status int, body []byte) error {
	var pe providerError
	if err := json.Unmarshal(body, &pe); err == nil {
		switch pe.Code {
		case "UnsupportedLanguagePairException":
			return fmt.Errorf("%w: %s", ErrUnsupportedLanguagePair, pe.Message)
		case "InvalidParameterValueException":
			return fmt.Errorf("%w: %s", ErrInvalidLanguageCode, pe.Message)
		}
	}
	return fmt.Errorf("translation provider returned status %d: %s", status, body)
}
