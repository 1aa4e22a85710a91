package similarity

import (
	"context"
	"math"
	"sort"

	"github.com/drbombe/researchpal/models"
)

// Embedder turns texts into fixed-length vectors in input order.
type Embedder interface {
	EmbedEach(ctx context.Context, texts []string) ([][]float64, error)
}

// Cosine returns the cosine similarity of a and b. A zero-norm vector on
// either side yields exactly 0, never NaN or a division error.
func Cosine(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, na, nb float64
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
	}
	for _, v := range a {
		na += v * v
	}
	for _, v := range b {
		nb += v * v
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// Matrix computes the dense pairwise cosine similarity of rows against cols.
func Matrix(rows, cols [][]float64) [][]float64 {
	out := make([][]float64, len(rows))
	for i, r := range rows {
		out[i] = make([]float64, len(cols))
		for j, c := range cols {
			out[i][j] = Cosine(r, c)
		}
	}
	return out
}

// Selector matches report blocks to their most relevant references by
// embedding both sides and ranking on cosine similarity.
type Selector struct {
	embedder Embedder
	topK     int
}

func NewSelector(embedder Embedder, topK int) *Selector {
	if topK <= 0 {
		topK = 5
	}
	return &Selector{embedder: embedder, topK: topK}
}

// Select attaches to every block its top-K references by descending
// similarity. Ties keep the references' original order. Each block receives
// min(K, len(refs)) references.
func (s *Selector) Select(ctx context.Context, blocks []string, refs []models.Reference) ([]models.AnnotatedBlock, error) {
	summaries := make([]string, len(refs))
	for i, ref := range refs {
		summaries[i] = ref.Summary
	}

	blockVecs, err := s.embedder.EmbedEach(ctx, blocks)
	if err != nil {
		return nil, err
	}
	summaryVecs, err := s.embedder.EmbedEach(ctx, summaries)
	if err != nil {
		return nil, err
	}

	matrix := Matrix(blockVecs, summaryVecs)

	out := make([]models.AnnotatedBlock, len(blocks))
	for i, block := range blocks {
		indices := make([]int, len(refs))
		for j := range indices {
			indices[j] = j
		}
		row := matrix[i]
		sort.SliceStable(indices, func(a, b int) bool {
			return row[indices[a]] > row[indices[b]]
		})
		if len(indices) > s.topK {
			indices = indices[:s.topK]
		}
		selected := make([]models.SelectedReference, 0, len(indices))
		for _, j := range indices {
			selected = append(selected, models.SelectedReference{URL: refs[j].URL, Summary: refs[j].Summary})
		}
		out[i] = models.AnnotatedBlock{Block: block, SelectedReferences: selected}
	}
	return out, nil
}
