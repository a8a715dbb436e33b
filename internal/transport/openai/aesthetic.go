package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/kailas-cloud/designdex/internal/domain"
)

const aestheticPrompt = `You are a design direction generator. Invent one distinctive,
memorable visual aesthetic for a digital product. Avoid generic "clean and modern"
answers. Respond with a single JSON object and nothing else:
{"name": "<snake_case identifier>", "description": "<one sentence>", "differentiation": "<the memorable elements, comma separated>"}`

// Generator produces aesthetic directions via an OpenAI-compatible
// chat completion API.
type Generator struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

// Config holds the aesthetic provider settings.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Logger  *zap.Logger
}

// NewGenerator creates an OpenAI-compatible aesthetic generator.
func NewGenerator(cfg *Config) *Generator {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	return &Generator{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
		logger: cfg.Logger,
	}
}

// Generate requests one direction from the model. All failures are
// wrapped with domain.ErrAestheticProviderError so callers can fall
// back uniformly.
func (g *Generator) Generate(ctx context.Context) (domain.AestheticDirection, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: aestheticPrompt},
		},
		Temperature: 1.0,
	})
	if err != nil {
		return domain.AestheticDirection{}, parseAPIError(err)
	}
	if len(resp.Choices) == 0 {
		return domain.AestheticDirection{}, fmt.Errorf("empty completion response: %w", domain.ErrAestheticProviderError)
	}

	dir, err := parseDirection(resp.Choices[0].Message.Content)
	if err != nil {
		g.logger.Warn("Unparseable aesthetic completion",
			zap.String("model", g.model),
			zap.Error(err),
		)
		return domain.AestheticDirection{}, err
	}
	return dir, nil
}

// parseDirection extracts the direction JSON from the completion text,
// tolerating markdown code fences around the object.
func parseDirection(content string) (domain.AestheticDirection, error) {
	content = strings.TrimSpace(content)
	if start := strings.Index(content, "{"); start >= 0 {
		if end := strings.LastIndex(content, "}"); end > start {
			content = content[start : end+1]
		}
	}

	var dir domain.AestheticDirection
	if err := json.Unmarshal([]byte(content), &dir); err != nil {
		return domain.AestheticDirection{}, fmt.Errorf("parse direction: %v: %w", err, domain.ErrAestheticProviderError)
	}
	if dir.Name == "" || dir.Description == "" {
		return domain.AestheticDirection{}, fmt.Errorf("incomplete direction: %w", domain.ErrAestheticProviderError)
	}
	return dir, nil
}

// parseAPIError extracts a human-readable error from the API response.
// All errors are wrapped with domain.ErrAestheticProviderError.
func parseAPIError(err error) error {
	wrap := domain.ErrAestheticProviderError

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return fmt.Errorf("aesthetic API error %d: %s: %w",
			reqErr.HTTPStatusCode, string(reqErr.Body), wrap)
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("aesthetic API error %d: %s: %w",
			apiErr.HTTPStatusCode, apiErr.Message, wrap)
	}

	return fmt.Errorf("aesthetic request failed: %w", wrap)
}
