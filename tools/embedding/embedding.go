package embedding

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/drbombe/researchpal/internal/telemetry"
	"github.com/drbombe/researchpal/provider"
)

// DefaultWindow caps concurrent in-flight embedding calls to respect
// provider rate limits.
const DefaultWindow = 2000

type Embedding struct {
	provider  provider.Provider
	telemetry *telemetry.Telemetry
	window    int
}

func NewEmbedding(p provider.Provider, tel *telemetry.Telemetry, window int) *Embedding {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Embedding{provider: p, telemetry: tel, window: window}
}

// EmbedEach embeds every text with its own call, keeping at most the window
// size in flight at once. Results are unscrambled back to input order. A
// failed call yields a nil vector for that text instead of aborting the
// batch; nil ranks as similarity zero downstream.
func (e *Embedding) EmbedEach(ctx context.Context, texts []string) ([][]float64, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	vecs := make([][]float64, len(texts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.window)
	for i, text := range texts {
		g.Go(func() error {
			out, err := e.provider.CreateEmbedding(gctx, []string{text})
			if err != nil || len(out) == 0 {
				return nil
			}
			e.telemetry.EmbeddingCall()
			vecs[i] = out[0]
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return vecs, ctx.Err()
}
