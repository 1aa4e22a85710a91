package models

// ModelClass selects which configured model serves a generation call. The
// mapping from class to concrete model and parameters lives in the LLM
// routing config table.
type ModelClass string

const (
	Reasoning   ModelClass = "reasoning"
	Summarizing ModelClass = "summarizing"
	Drafting    ModelClass = "drafting"
)

// Role identifies the author of a conversation message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single turn in a conversation. Message order is chronology
// and must be preserved verbatim when a conversation is sent to a model.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// CrawlResult records the outcome of fetching and summarizing one URL.
// It is created once per URL per research session and never mutated.
type CrawlResult struct {
	URL      string `json:"url"`
	Success  bool   `json:"success"`
	Markdown string `json:"markdown"`
	Summary  string `json:"summary"`
	Error    string `json:"error,omitempty"`
}

// Reference pairs a source URL with its generated summary.
type Reference struct {
	URL     string `json:"url"`
	Summary string `json:"summary"`
}

// SelectedReference is a Reference enriched with a model-generated title and
// supporting statement. SupportingStatement is empty until the enrichment
// pass has run for its (block, reference) pair.
type SelectedReference struct {
	URL                 string `json:"url"`
	Summary             string `json:"summary"`
	Title               string `json:"title,omitempty"`
	SupportingStatement string `json:"supporting_statement,omitempty"`
}

// AnnotatedBlock is one report block together with the references chosen for
// it by the similarity selector, in descending relevance order.
type AnnotatedBlock struct {
	Block              string              `json:"block"`
	SelectedReferences []SelectedReference `json:"selected_references"`
}

// BlockEvidence is one user-statement block together with the references
// attached to it by URL co-occurrence. Unlike AnnotatedBlock the references
// are not similarity-ranked; the model ranks them in a single pass.
type BlockEvidence struct {
	Statement  string      `json:"statement"`
	References []Reference `json:"references"`
}
