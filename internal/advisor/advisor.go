package advisor

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"

	"github.com/cognisync/go-engine/internal/alert"
	"github.com/cognisync/go-engine/internal/signal"
)

// #region config

const (
	// DefaultModel balances latency and quality for 1-2 sentence output.
	DefaultModel = "gpt-4o-mini"

	maxOutputTokens = 120
	temperature     = 0.85

	// RequestTimeout caps one advisory call; past it the engine's selector
	// answers instead.
	RequestTimeout = 5 * time.Second
)

// #endregion config

// #region client

// responseCreator is the slice of the OpenAI client the advisor uses.
// Injected in tests.
type responseCreator interface {
	New(ctx context.Context, body responses.ResponseNewParams, opts ...option.RequestOption) (*responses.Response, error)
}

// Client produces generative tactical advice over the OpenAI Responses API.
type Client struct {
	svc   responseCreator
	model string
}

// NewClient builds an advisory client. An empty model selects DefaultModel.
func NewClient(apiKey, model string) *Client {
	if model == "" {
		model = DefaultModel
	}
	oc := openai.NewClient(option.WithAPIKey(apiKey))
	return &Client{svc: &oc.Responses, model: model}
}

// NewClientWithService creates a Client with an injected response service.
// Used for testing without real API calls.
func NewClientWithService(svc responseCreator, model string) *Client {
	if model == "" {
		model = DefaultModel
	}
	return &Client{svc: svc, model: model}
}

// #endregion client

// #region advise

// Advise requests one tactical intervention for the current frame. Errors,
// timeouts and empty completions surface to the caller, which falls back to
// the deterministic selector.
func (c *Client) Advise(ctx context.Context, current signal.Snapshot, history []signal.Snapshot, alerts []alert.Alert) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	prompt := BuildPrompt(current, history, alerts)

	resp, err := c.svc.New(ctx, responses.ResponseNewParams{
		Model:           c.model,
		MaxOutputTokens: openai.Int(maxOutputTokens),
		Temperature:     openai.Float(temperature),
		Instructions:    openai.String(SystemPrompt),
		Input: responses.ResponseNewParamsInputUnion{
			OfString: openai.String(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("advisory request: %w", err)
	}

	text := strings.TrimSpace(resp.OutputText())
	if text == "" {
		log.Printf("[ADVISOR] model %s returned empty output", c.model)
	}
	return text, nil
}

// #endregion advise
