package research

import (
	"github.com/google/uuid"

	"github.com/drbombe/researchpal/internal/helpers"
	"github.com/drbombe/researchpal/models"
)

// Session is the state accumulated over one research run: the conversation,
// the set of visited URLs, and every crawl result. It has a single exclusive
// owner (the engine's recursion) and grows monotonically: messages are only
// appended, URLs only added, results only aggregated.
type Session struct {
	ID       string               `json:"id"`
	Messages []models.Message     `json:"messages"`
	Results  []models.CrawlResult `json:"results"`

	visited map[string]struct{}
	order   []string
}

// NewSession starts a session from the opening conversation.
func NewSession(messages []models.Message) *Session {
	return &Session{
		ID:       uuid.NewString(),
		Messages: append([]models.Message(nil), messages...),
		visited:  make(map[string]struct{}),
	}
}

// Claim marks a URL as visited and reports whether it was new. URLs are
// canonicalised first so trivially different spellings of the same page
// count as one; a URL that fails to parse is claimed under its raw form.
// Claiming before crawling is what keeps a URL from ever being crawled
// twice, even when two queries in the same round surface it.
func (s *Session) Claim(url string) bool {
	key, err := helpers.CanonicalURL(url)
	if err != nil {
		key = url
	}
	if _, ok := s.visited[key]; ok {
		return false
	}
	s.visited[key] = struct{}{}
	s.order = append(s.order, url)
	return true
}

// VisitedURLs returns every claimed URL in claim order.
func (s *Session) VisitedURLs() []string {
	return append([]string(nil), s.order...)
}

// References returns a url+summary entry for every successful crawl.
func (s *Session) References() []models.Reference {
	var refs []models.Reference
	for _, r := range s.Results {
		if r.Success && r.Summary != "" {
			refs = append(refs, models.Reference{URL: r.URL, Summary: r.Summary})
		}
	}
	return refs
}
