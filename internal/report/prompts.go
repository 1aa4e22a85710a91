package report

import (
	"fmt"

	"github.com/drbombe/researchpal/internal/helpers"
	"github.com/drbombe/researchpal/models"
)

// TocPrompt instructs the model to produce a table of contents whose
// sections are bounded by the literal section separators, so the outline
// can be parsed back deterministically.
func TocPrompt(maxSections int) models.Message {
	return models.Message{
		Role: models.RoleSystem,
		Content: fmt.Sprintf(`Generate a detailed and logically structured Table of Contents for a research report based on preceding multi-turn user-assistant dialogues and user-provided contextual materials.

Analyze the full structured input, including the initial research question, clarifying questions and responses, and any supplemental context provided by the user. Formulate a coherent Table of Contents that reflects the user's research intent. Ensure coherence across sections, integrating user-supplied topics and relevant categories.

# Constraints
- The Table of Contents must include a maximum of %d main sections.
- The ToC must begin with the Research Title, followed by:
   1. Introduction
   2. Literature Review
   3. 3-5 topic-specific body sections derived from user input
   4. Final section: Discussion / Future Considerations
- Each section must include a section title and up to 3 bullet points describing key content to be covered.

# Output Format
- First line: Title: [Determined Research Title]
- Then, for each main section:
  - A line containing exactly: %s
  - A numeric section heading and title (e.g., 1. Introduction)
  - 3-5 bullet points explaining what will be covered in that section
  - A line containing exactly: %s

# Notes
- Do not include more than %d main sections total.
- Bullets should be conceptually rich and informative, without full paragraph narration.
- Output everything in raw markdown/plaintext (no code blocks).`,
			maxSections, helpers.SectionSeparatorBegin, helpers.SectionSeparatorEnd, maxSections),
	}
}

// SectionPrompt instructs the model to draft one report section, threading
// the already-generated content for narrative continuity.
func SectionPrompt(sectionOutline, accumulated string, minWords int) models.Message {
	return models.Message{
		Role: models.RoleSystem,
		Content: fmt.Sprintf(
			"Generate detailed content for at least %d words based on the materials in '%s'. "+
				"Do not generate a section title or any subheadings. Focus on writing long, cohesive paragraphs that flow naturally from the prior content, maintaining a consistent narrative and argumentative trajectory. "+
				"Use the following materials as your primary sources: the list of assistant and user messages (including research questions and follow-ups), and the 'Additional context' online research. "+
				"Extract key ideas, arguments, and factual evidence from these materials, ideally including relevant quotations, paraphrases, or citations where appropriate. "+
				"Here is what has been generated so far:\n\n%s",
			minWords, sectionOutline, accumulated),
	}
}

// SupportStatementPrompt asks for a source title and the single most
// relevant supporting sentence for one (block, reference) pair. The
// response contract is exactly two lines.
func SupportStatementPrompt(block, summary string) []models.Message {
	return []models.Message{
		{
			Role: models.RoleSystem,
			Content: "Given a report block and a reference summary, extract the reference's title and the single sentence from the summary most relevant to the block (or write a brief one-sentence summary if no sentence fits). " +
				"Respond with exactly two lines and nothing else:\n" +
				"Reference Title: [title]\n" +
				"Statement: [sentence]",
		},
		{
			Role:    models.RoleUser,
			Content: fmt.Sprintf("Report block: %q\n\nReference summary: %q", block, summary),
		},
	}
}

// EvidencePrompt asks the model to rank all of a block's references at once
// and emit the best-supporting ones as statement/title/link triples.
func EvidencePrompt(maxRefs int) models.Message {
	return models.Message{
		Role: models.RoleSystem,
		Content: fmt.Sprintf(`You are given an original statement and a set of supporting evidence sources, each wrapped between the lines %q and %q with its source URL.

Select at most %d sources that best support the original statement. For each selected source output, in order of relevance:

- **Reference Title:** [title taken from the source summary]
  **Link:** [URL](URL)
  **Statement:** [the few sentences from the source most relevant to the original statement]

Output only these entries in Markdown, without any additional text. If no source supports the statement, output exactly: No supporting evidence found.`,
			helpers.SourceSeparatorBegin, helpers.SourceSeparatorEnd, maxRefs),
	}
}
