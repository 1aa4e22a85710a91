package openai_provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/drbombe/researchpal/config"
	"github.com/drbombe/researchpal/models"
)

const defaultBaseURL = "https://api.openai.com/v1"

// ErrUnknownModelClass is returned when a model class has no routing entry.
var ErrUnknownModelClass = errors.New("unknown model class")

// Client implements the provider interface using OpenAI's API.
type Client struct {
	apiKey         string
	baseURL        string
	models         map[string]config.LLMModel
	routing        config.LLMRoutingConfig
	embeddingModel string
	httpClient     *http.Client
}

// NewClient creates a new OpenAI client from provider and routing config.
func NewClient(cfg config.LLMProvider, routing config.LLMRoutingConfig) *Client {
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 90 * time.Second
	}
	return &Client{
		apiKey:         apiKey,
		baseURL:        baseURL,
		models:         cfg.Models,
		routing:        routing,
		embeddingModel: routing.Embedding,
		httpClient:     &http.Client{Timeout: timeout},
	}
}

// resolve maps a model class to its configured model via the routing table.
func (c *Client) resolve(class models.ModelClass) (config.LLMModel, error) {
	var key string
	switch class {
	case models.Reasoning:
		key = c.routing.Reasoning
	case models.Summarizing:
		key = c.routing.Summarizing
	case models.Drafting:
		key = c.routing.Drafting
	default:
		return config.LLMModel{}, fmt.Errorf("%w: %q", ErrUnknownModelClass, class)
	}
	m, ok := c.models[key]
	if !ok {
		return config.LLMModel{}, fmt.Errorf("model %q not configured for class %q", key, class)
	}
	return m, nil
}

type chatRequest struct {
	Model       string           `json:"model"`
	Messages    []models.Message `json:"messages"`
	Temperature *float64         `json:"temperature,omitempty"`
	MaxTokens   int              `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Generate sends the conversation to the chat completions endpoint using the
// model routed for the given class.
func (c *Client) Generate(ctx context.Context, messages []models.Message, class models.ModelClass) (string, error) {
	if c.apiKey == "" {
		return "", errors.New("OpenAI API key not configured")
	}
	m, err := c.resolve(class)
	if err != nil {
		return "", err
	}

	reqBody := chatRequest{
		Model:     m.Name,
		Messages:  messages,
		MaxTokens: m.MaxTokens,
	}
	// Reasoning models reject an explicit temperature; only set it when the
	// model config declares one.
	if m.Temperature > 0 || class == models.Summarizing {
		t := m.Temperature
		reqBody.Temperature = &t
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API returned status: %d", resp.StatusCode)
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", errors.New("no choices in response")
	}
	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}

// CreateEmbedding generates embeddings for the given texts.
func (c *Client) CreateEmbedding(ctx context.Context, texts []string) ([][]float64, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	if c.apiKey == "" {
		return nil, errors.New("OpenAI API key not configured")
	}

	requestBody := map[string]interface{}{
		"model": c.embeddingModel,
		"input": texts,
	}
	jsonData, err := json.Marshal(requestBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/embeddings", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status: %d", resp.StatusCode)
	}

	var openaiResp struct {
		Data []struct {
			Embedding []float64 `json:"embedding"`
			Index     int       `json:"index"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&openaiResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	vecs := make([][]float64, len(texts))
	for _, d := range openaiResp.Data {
		if d.Index >= 0 && d.Index < len(vecs) {
			vecs[d.Index] = d.Embedding
		}
	}
	return vecs, nil
}
