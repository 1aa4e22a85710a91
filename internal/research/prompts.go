package research

import (
	"fmt"

	"github.com/drbombe/researchpal/models"
)

// FollowupPrompt instructs the model to ask clarifying questions before the
// research starts.
func FollowupPrompt(maxQuestions int) models.Message {
	return models.Message{
		Role: models.RoleSystem,
		Content: fmt.Sprintf(
			"Given the following query from the user, ask some follow up questions to clarify the research direction. "+
				"Return a maximum of %d questions with a purpose to generate a research report for the topic, "+
				"but feel free to return less if the original query is clear.", maxQuestions),
	}
}

// QueryPrompt instructs the model to emit search-engine queries, one per
// line with no extra commentary. Truncation to the bound is the model's
// responsibility; the parser only tolerates stray blank lines.
func QueryPrompt(maxQueries int) models.Message {
	return models.Message{
		Role: models.RoleSystem,
		Content: fmt.Sprintf(
			"Given the following conversation between assistant and user, generate a list of high quality search engine queries. "+
				"These queries should be designed for effective research using a search engine like Google. "+
				"Return a maximum of %d queries, but feel free to return fewer if the original prompt is clear. "+
				"Prioritize sources of high-quality information, such as published papers in top academic journals.\n"+
				"Make sure each query is unique and not similar to the others.\n"+
				"Each query should exist on its own line to ensure easy parsing.\n"+
				"Output only the queries, without any additional text.", maxQueries),
	}
}

// SummarizeCrawlPrompt demands a one-page structured Markdown summary of
// scraped page content.
func SummarizeCrawlPrompt() models.Message {
	return models.Message{
		Role: models.RoleSystem,
		Content: `Given the following input scraped results from the web, summarize the content in no more than one page using Markdown format. Use the original sentences as much as possible.

The summary should follow this structure:

1. Start with the title of the page as the first line.
2. Provide an executive summary in no more than 3 sentences.
3. Follow with a detailed summary with the length about one page.

# Output Format

The output should be formatted as follows:

# [Title]
**Executive Summary**
[No more than 3 sentences summarizing the key points. Use simple language, avoiding jargon.]

**Detailed Summary**
[More in-depth summary of the content with the length less or equal to one page.]

Ensure the summary remains concise while preserving the original meaning.`,
	}
}
