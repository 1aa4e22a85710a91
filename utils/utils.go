package utils

import (
	"fmt"
	"strings"
)

func UrlQuery(s string) string { return strings.ReplaceAll(s, " ", "+") }

func Str(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}

// UniqueURLs flattens the given URL lists and removes duplicates. Result
// order follows first appearance.
func UniqueURLs(lists [][]string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, urls := range lists {
		for _, u := range urls {
			if _, ok := seen[u]; ok {
				continue
			}
			seen[u] = struct{}{}
			out = append(out, u)
		}
	}
	return out
}

// ShortDescription builds a filename slug from the first maxWords words.
func ShortDescription(text string, maxWords int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return "research"
	}
	if len(words) > maxWords {
		words = words[:maxWords]
	}
	slug := strings.ToLower(strings.Join(words, "_"))
	var b strings.Builder
	for _, r := range slug {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		}
	}
	out := strings.Trim(b.String(), "_-")
	if out == "" {
		return "research"
	}
	return out
}
