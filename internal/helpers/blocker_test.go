package helpers

import (
	"strings"
	"testing"
)

func TestSplitSentences(t *testing.T) {
	text := "First sentence. Second one? Third!  Fourth without terminator"
	got := SplitSentences(text)
	want := []string{"First sentence.", "Second one?", "Third!", "Fourth without terminator"}
	if len(got) != len(want) {
		t.Fatalf("expected %d sentences, got %d: %#v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sentence %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestSplitSentencesEmpty(t *testing.T) {
	if got := SplitSentences("   \n\t "); got != nil {
		t.Fatalf("expected no sentences, got %#v", got)
	}
}

func TestSentenceBlocks(t *testing.T) {
	text := "One. Two. Three. Four. Five. Six. Seven."
	blocks := SentenceBlocks(text, 3)
	if len(blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d: %#v", len(blocks), blocks)
	}
	if blocks[0] != "One. Two. Three." {
		t.Fatalf("unexpected first block: %q", blocks[0])
	}
	if blocks[2] != "Seven." {
		t.Fatalf("expected short final block, got %q", blocks[2])
	}
}

func TestSentenceBlocksReconstruction(t *testing.T) {
	// Joining all blocks back together must preserve every sentence in
	// order, regardless of the block size.
	text := "Alpha beta. Gamma delta? Epsilon! Zeta eta. Theta."
	sentences := SplitSentences(text)
	for size := 1; size <= len(sentences)+1; size++ {
		blocks := SentenceBlocks(text, size)
		joined := strings.Join(blocks, " ")
		if joined != strings.Join(sentences, " ") {
			t.Fatalf("size %d: reconstruction mismatch: %q", size, joined)
		}
	}
}

func TestSentenceBlocksDefaultSize(t *testing.T) {
	blocks := SentenceBlocks("A. B. C. D.", 0)
	if len(blocks) != 2 {
		t.Fatalf("expected default size 3 to give 2 blocks, got %#v", blocks)
	}
}
