package helpers

import (
	"strings"
)

// Separator markup is the micro-format shared between the research loop and
// the generation prompts: a literal begin-marker line, a quoted source URL
// line, free-form summary text, then a literal end-marker line, repeated per
// source. The same begin/end convention bounds table-of-contents sections.
const (
	SourceSeparatorBegin = "#####BEGINNING SEPARATOR#####"
	SourceSeparatorEnd   = "#####ENDING SEPARATOR#####"

	SectionSeparatorBegin = "#####SECTION BEGIN#####"
	SectionSeparatorEnd   = "#####SECTION END#####"

	sourceURLPrefix = "**Source URL:**"
)

// SourceRecord is one parsed separator-bounded source entry.
type SourceRecord struct {
	URL     string
	Summary string
}

// FormatSourceRecord renders one source as a separator-bounded record.
func FormatSourceRecord(url, summary string) string {
	var b strings.Builder
	b.WriteString(SourceSeparatorBegin)
	b.WriteString("\n")
	b.WriteString(sourceURLPrefix)
	b.WriteString(" \"")
	b.WriteString(url)
	b.WriteString("\"\n")
	b.WriteString(strings.TrimSpace(summary))
	b.WriteString("\n")
	b.WriteString(SourceSeparatorEnd)
	b.WriteString("\n\n")
	return b.String()
}

// ParseSourceRecords recovers source records from separator-bounded text.
// The parser is tolerant: records missing their URL line or their end marker
// are skipped without corrupting subsequent records.
func ParseSourceRecords(text string) []SourceRecord {
	var records []SourceRecord
	lines := strings.Split(text, "\n")

	for i := 0; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) != SourceSeparatorBegin {
			continue
		}
		// Find the matching end marker.
		end := -1
		for j := i + 1; j < len(lines); j++ {
			trimmed := strings.TrimSpace(lines[j])
			if trimmed == SourceSeparatorEnd {
				end = j
				break
			}
			if trimmed == SourceSeparatorBegin {
				// Unterminated record; resume scanning from the new begin.
				break
			}
		}
		if end == -1 {
			continue
		}

		body := lines[i+1 : end]
		url := ""
		summaryStart := 0
		for k, line := range body {
			trimmed := strings.TrimSpace(line)
			if strings.HasPrefix(trimmed, sourceURLPrefix) {
				url = strings.Trim(strings.TrimSpace(strings.TrimPrefix(trimmed, sourceURLPrefix)), `"`)
				summaryStart = k + 1
				break
			}
		}
		if url == "" {
			i = end
			continue
		}
		summary := strings.TrimSpace(strings.Join(body[summaryStart:], "\n"))
		records = append(records, SourceRecord{URL: url, Summary: summary})
		i = end
	}
	return records
}

// ParseSections splits a generated table of contents into its title and the
// per-section outlines bounded by the section separators. The title is the
// first non-empty line before the first begin marker. Malformed sections
// (unterminated) are dropped.
func ParseSections(toc string) (string, []string) {
	lines := strings.Split(toc, "\n")

	title := ""
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == SectionSeparatorBegin {
			break
		}
		if trimmed != "" && title == "" {
			title = trimmed
		}
	}
	title = strings.TrimSpace(strings.TrimPrefix(title, "Title:"))

	var sections []string
	collecting := false
	var current strings.Builder
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == SectionSeparatorBegin:
			collecting = true
			current.Reset()
		case trimmed == SectionSeparatorEnd:
			if collecting {
				if s := strings.TrimSpace(current.String()); s != "" {
					sections = append(sections, s)
				}
				collecting = false
			}
		case collecting:
			current.WriteString(trimmed)
			current.WriteString("\n")
		}
	}
	return title, sections
}
