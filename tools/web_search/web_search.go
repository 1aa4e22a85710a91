package web_search

import (
	"context"
	"errors"

	"github.com/drbombe/researchpal/tools/web_search/brave"
	"github.com/drbombe/researchpal/tools/web_search/models"
	"github.com/drbombe/researchpal/tools/web_search/serper"
)

// WebSearcher executes one query and returns up to k results in provider
// order. Duplicates are not removed here; callers dedupe at a higher level.
type WebSearcher interface {
	Search(ctx context.Context, q string, k int) ([]models.Result, error)
}

type Provider string

const (
	SerperProvider Provider = "serper"
	BraveProvider  Provider = "brave"
)

var ErrUnsupportedProvider = errors.New("unsupported search provider")

func NewWebSearcher(provider Provider, apiKey string) (WebSearcher, error) {
	switch provider {
	case SerperProvider:
		return serper.Search{ApiKey: apiKey}, nil
	case BraveProvider:
		return brave.Search{ApiKey: apiKey}, nil
	default:
		return nil, ErrUnsupportedProvider
	}
}
