package app

import (
	"context"
	"time"

	"github.com/drbombe/researchpal/models"
	"github.com/drbombe/researchpal/provider"
	"github.com/drbombe/researchpal/tools/web_search"
	searchmodels "github.com/drbombe/researchpal/tools/web_search/models"
)

// timeoutProvider bounds every generation and embedding call with the
// configured default timeout so one hung call cannot stall a fan-out.
type timeoutProvider struct {
	inner   provider.Provider
	timeout time.Duration
}

func (t timeoutProvider) Generate(ctx context.Context, messages []models.Message, class models.ModelClass) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.inner.Generate(ctx, messages, class)
}

func (t timeoutProvider) CreateEmbedding(ctx context.Context, texts []string) ([][]float64, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.inner.CreateEmbedding(ctx, texts)
}

type timeoutSearcher struct {
	inner   web_search.WebSearcher
	timeout time.Duration
}

func (t timeoutSearcher) Search(ctx context.Context, q string, k int) ([]searchmodels.Result, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.inner.Search(ctx, q, k)
}
