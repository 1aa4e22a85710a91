package utils

import "testing"

func TestUniqueURLs(t *testing.T) {
	lists := [][]string{
		{"https://a.com", "https://b.com"},
		{"https://b.com", "https://c.com", "https://a.com"},
		nil,
		{"https://d.com"},
	}
	got := UniqueURLs(lists)
	want := []string{"https://a.com", "https://b.com", "https://c.com", "https://d.com"}
	if len(got) != len(want) {
		t.Fatalf("expected %d urls, got %#v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestShortDescription(t *testing.T) {
	got := ShortDescription("The Impact of Quantum Computing on Modern Cryptography!", 6)
	if got != "the_impact_of_quantum_computing_on" {
		t.Fatalf("unexpected slug %q", got)
	}
	if got := ShortDescription("", 6); got != "research" {
		t.Fatalf("empty input should fall back, got %q", got)
	}
	if got := ShortDescription("!!! ???", 6); got != "research" {
		t.Fatalf("punctuation-only input should fall back, got %q", got)
	}
}

func TestUrlQuery(t *testing.T) {
	if got := UrlQuery("two words here"); got != "two+words+here" {
		t.Fatalf("unexpected query %q", got)
	}
}
