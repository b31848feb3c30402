// Package news defines the classified news records exchanged with the remote
// classification service and the display rules shared by every renderer.
package news

import (
	"strings"

	"github.com/nickpending/newscheck/internal/format"
)

// Item is a piece of content with the verdict returned by the classification service.
type Item struct {
	ID      int64  `json:"id,omitempty"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Fake    bool   `json:"fake"`
}

// Submission is the request body sent to have content classified.
type Submission struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// NewSubmission builds a Submission from raw form input. Both fields are trimmed;
// empty values are passed through and left for the server to judge.
func NewSubmission(title, content string) Submission {
	return Submission{
		Title:   strings.TrimSpace(title),
		Content: strings.TrimSpace(content),
	}
}

// Preview returns the content cut to format.PreviewLimit characters.
func (i Item) Preview() string {
	return format.Truncate(i.Content, format.PreviewLimit)
}

// Verdict returns the display copy for the item's fake flag.
func (i Item) Verdict() Verdict {
	return VerdictFor(i.Fake)
}

// DisplayOrder returns a reversed copy of items. The service returns records oldest
// first, so the most recent submission is displayed first.
func DisplayOrder(items []Item) []Item {
	out := make([]Item, len(items))
	for i, item := range items {
		out[len(items)-1-i] = item
	}
	return out
}
