package provider

import (
	"context"
	"errors"
	"fmt"

	"github.com/drbombe/researchpal/config"
	"github.com/drbombe/researchpal/models"
	openai_provider "github.com/drbombe/researchpal/provider/openai"
)

// ErrUnknownModelClass is returned for a class the routing table does not name.
var ErrUnknownModelClass = openai_provider.ErrUnknownModelClass

// Provider is the interface that all LLM implementations must satisfy.
// Generate returns an explicit error on transport or provider failure;
// callers decide their own fallback policy.
type Provider interface {
	Generate(ctx context.Context, messages []models.Message, class models.ModelClass) (string, error)
	CreateEmbedding(ctx context.Context, texts []string) ([][]float64, error)
}

// NewProvider creates an LLM client from the provided configuration.
func NewProvider(cfg config.LLMConfig) (Provider, error) {
	if len(cfg.Providers) == 0 {
		return nil, errors.New("no LLM providers configured")
	}
	for _, p := range cfg.Providers {
		switch p.Type {
		case "openai":
			return openai_provider.NewClient(p, cfg.Routing), nil
		case "anthropic":
			return nil, errors.New("anthropic client not implemented yet")
		default:
			return nil, fmt.Errorf("unsupported LLM provider type: %s", p.Type)
		}
	}
	return nil, errors.New("no valid LLM providers found")
}
