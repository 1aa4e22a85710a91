package report

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/drbombe/researchpal/models"
)

func TestGenerateEvidenceOnePerBlock(t *testing.T) {
	p := &stubProvider{generate: func(messages []models.Message, _ models.ModelClass) (string, error) {
		content := messages[len(messages)-1].Content
		if strings.Contains(content, "statement two") {
			return "", errors.New("model unavailable")
		}
		return "  - **Reference Title:** Found\n  **Statement:** Evidence here.  ", nil
	}}
	b := newTestBuilder(p, 5)

	blocks := []models.BlockEvidence{
		{Statement: "statement one", References: []models.Reference{{URL: "https://a.com", Summary: "sa"}}},
		{Statement: "statement two", References: []models.Reference{{URL: "https://b.com", Summary: "sb"}}},
		{Statement: "statement three", References: nil},
	}
	evidence := b.GenerateEvidence(context.Background(), blocks)
	if len(evidence) != 3 {
		t.Fatalf("expected one evidence entry per block, got %d", len(evidence))
	}
	if !strings.Contains(evidence[0], "Evidence here.") {
		t.Fatalf("block 0: unexpected evidence %q", evidence[0])
	}
	if evidence[0] != strings.TrimSpace(evidence[0]) {
		t.Fatalf("evidence should be trimmed: %q", evidence[0])
	}
	if evidence[1] != NoEvidenceMarker {
		t.Fatalf("failed block should carry the marker, got %q", evidence[1])
	}
	if evidence[2] != NoEvidenceMarker {
		t.Fatalf("reference-less block should carry the marker, got %q", evidence[2])
	}
}

func TestGenerateEvidencePromptCarriesSources(t *testing.T) {
	var prompt string
	p := &stubProvider{generate: func(messages []models.Message, _ models.ModelClass) (string, error) {
		prompt = messages[len(messages)-1].Content
		return "ok", nil
	}}
	b := newTestBuilder(p, 5)

	blocks := []models.BlockEvidence{{
		Statement: "the claim",
		References: []models.Reference{
			{URL: "https://a.com", Summary: "summary a"},
			{URL: "https://b.com", Summary: "summary b"},
		},
	}}
	b.GenerateEvidence(context.Background(), blocks)

	if !strings.Contains(prompt, "Original Statement: the claim") {
		t.Fatalf("statement missing from prompt: %q", prompt)
	}
	for _, want := range []string{"https://a.com", "summary a", "https://b.com", "summary b"} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q: %q", want, prompt)
		}
	}
}

func TestAssembleEvidence(t *testing.T) {
	blocks := []models.BlockEvidence{
		{Statement: "first block"},
		{Statement: "second block"},
	}
	out, err := AssembleEvidence(blocks, []string{"evidence one", "evidence two"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a := strings.Index(out, "first block")
	b := strings.Index(out, "evidence one")
	c := strings.Index(out, "second block")
	d := strings.Index(out, "evidence two")
	if !(a < b && b < c && c < d) {
		t.Fatalf("interleaving order wrong:\n%s", out)
	}
}

func TestAssembleEvidenceLengthMismatch(t *testing.T) {
	blocks := []models.BlockEvidence{{Statement: "one"}, {Statement: "two"}}
	if _, err := AssembleEvidence(blocks, []string{"only one"}); err == nil {
		t.Fatalf("expected error for mismatched lengths")
	}
}
