package helpers

import (
	"strings"
)

var socialMediaHosts = []string{
	"facebook.com",
	"twitter.com",
	"x.com",
	"instagram.com",
	"tiktok.com",
	"linkedin.com/share",
	"pinterest.com",
	"reddit.com/submit",
	"t.me/",
	"wa.me/",
}

// FilterContent applies the crawl content policy to extracted page text:
// paragraphs shorter than minWords are dropped as low-information
// boilerplate, and lines that are social-media share links are removed.
// External reference links inside kept paragraphs are left alone.
func FilterContent(text string, minWords int) string {
	if minWords <= 0 {
		minWords = 20
	}

	paragraphs := strings.Split(text, "\n\n")
	var kept []string
	for _, p := range paragraphs {
		lines := strings.Split(p, "\n")
		var cleaned []string
		for _, line := range lines {
			if isSocialLink(line) {
				continue
			}
			cleaned = append(cleaned, line)
		}
		section := strings.TrimSpace(strings.Join(cleaned, "\n"))
		if section == "" {
			continue
		}
		if len(strings.Fields(section)) < minWords {
			continue
		}
		kept = append(kept, section)
	}
	return strings.Join(kept, "\n\n")
}

func isSocialLink(line string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(line))
	if trimmed == "" {
		return false
	}
	// Only whole lines that are share links count; prose mentioning a
	// social network is kept.
	if !strings.Contains(trimmed, "http") && !strings.HasPrefix(trimmed, "share") {
		return false
	}
	for _, host := range socialMediaHosts {
		if strings.Contains(trimmed, host) {
			return true
		}
	}
	return false
}
