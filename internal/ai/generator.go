package ai

import (
	"errors"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

var (
	// ErrGenerationFailed covers transport errors, non-2xx responses and a missing API key.
	ErrGenerationFailed = errors.New("generation failed")
	// ErrEmptyCompletion means the provider answered but returned no content.
	ErrEmptyCompletion = errors.New("no content generated")
)

// Settings configures the completion client.
type Settings struct {
	APIKey      string
	BaseURL     string // OpenAI-compatible endpoint, e.g. https://openrouter.ai/api/v1
	Model       string
	Temperature float32 // zero leaves the provider default
	Referer     string  // optional HTTP-Referer attribution header
	Title       string  // optional X-Title attribution header
	Timeout     time.Duration
	HTTPClient  *http.Client
}

type Generator struct {
	client      *openai.Client
	apiKey      string
	model       string
	temperature float32
	timeout     time.Duration
}

func NewGenerator(s Settings) *Generator {
	config := openai.DefaultConfig(s.APIKey)
	if s.BaseURL != "" {
		config.BaseURL = s.BaseURL
	}

	httpClient := s.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	headers := map[string]string{}
	if s.Referer != "" {
		headers["HTTP-Referer"] = s.Referer
	}
	if s.Title != "" {
		headers["X-Title"] = s.Title
	}
	if len(headers) > 0 {
		base := httpClient.Transport
		if base == nil {
			base = http.DefaultTransport
		}
		wrapped := *httpClient
		wrapped.Transport = &headerTransport{base: base, headers: headers}
		httpClient = &wrapped
	}
	config.HTTPClient = httpClient

	model := s.Model
	if model == "" {
		model = openai.GPT4oMini
	}

	return &Generator{
		client:      openai.NewClientWithConfig(config),
		apiKey:      s.APIKey,
		model:       model,
		temperature: s.Temperature,
		timeout:     s.Timeout,
	}
}

// headerTransport adds fixed headers to every outbound request.
type headerTransport struct {
	base    http.RoundTripper
	headers map[string]string
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	for k, v := range t.headers {
		req.Header.Set(k, v)
	}
	return t.base.RoundTrip(req)
}
