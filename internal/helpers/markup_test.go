package helpers

import (
	"fmt"
	"strings"
	"testing"
)

func TestSourceRecordRoundTrip(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 4; i++ {
		b.WriteString(FormatSourceRecord(
			fmt.Sprintf("https://example.com/page-%d", i),
			fmt.Sprintf("Summary of page %d.\nSecond line.", i)))
	}

	records := ParseSourceRecords(b.String())
	if len(records) != 4 {
		t.Fatalf("expected 4 records, got %d", len(records))
	}
	for i, rec := range records {
		wantURL := fmt.Sprintf("https://example.com/page-%d", i)
		if rec.URL != wantURL {
			t.Fatalf("record %d: expected URL %q, got %q", i, wantURL, rec.URL)
		}
		if !strings.Contains(rec.Summary, fmt.Sprintf("Summary of page %d.", i)) {
			t.Fatalf("record %d: unexpected summary %q", i, rec.Summary)
		}
	}
}

func TestParseSourceRecordsSkipsMalformed(t *testing.T) {
	text := SourceSeparatorBegin + "\n" +
		"no url line here\n" +
		SourceSeparatorEnd + "\n" +
		SourceSeparatorBegin + "\n" +
		"**Source URL:** \"https://example.com/unterminated\"\n" +
		"summary without end marker\n" +
		SourceSeparatorBegin + "\n" +
		"**Source URL:** \"https://example.com/good\"\n" +
		"a valid record\n" +
		SourceSeparatorEnd + "\n"

	records := ParseSourceRecords(text)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d: %#v", len(records), records)
	}
	if records[0].URL != "https://example.com/good" {
		t.Fatalf("unexpected URL %q", records[0].URL)
	}
	if records[0].Summary != "a valid record" {
		t.Fatalf("unexpected summary %q", records[0].Summary)
	}
}

func TestParseSections(t *testing.T) {
	toc := "Title: Quantum Batteries\n\n" +
		SectionSeparatorBegin + "\n1. Introduction\n- scope\n" + SectionSeparatorEnd + "\n" +
		SectionSeparatorBegin + "\n2. Methods\n" + SectionSeparatorEnd + "\n" +
		SectionSeparatorBegin + "\n3. Unterminated\n"

	title, sections := ParseSections(toc)
	if title != "Quantum Batteries" {
		t.Fatalf("unexpected title %q", title)
	}
	if len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %d: %#v", len(sections), sections)
	}
	if !strings.HasPrefix(sections[0], "1. Introduction") {
		t.Fatalf("unexpected first section %q", sections[0])
	}
}

func TestParseSectionsNoMarkers(t *testing.T) {
	title, sections := ParseSections("just some prose with no markers")
	if title != "just some prose with no markers" {
		t.Fatalf("unexpected title %q", title)
	}
	if len(sections) != 0 {
		t.Fatalf("expected no sections, got %#v", sections)
	}
}
