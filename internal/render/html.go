// Package render produces HTML markup for the news list and verdict panel.
// All server-provided text passes through format.EscapeHTML before it is written.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/nickpending/newscheck/internal/format"
	"github.com/nickpending/newscheck/internal/news"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageTmpl = template.Must(template.ParseFS(templatesFS, "templates/page.html"))

// NewsList renders the list fragment: a placeholder when empty, otherwise one block
// per item, most recent first.
func NewsList(items []news.Item) string {
	if len(items) == 0 {
		return `<p class="empty">` + format.EscapeHTML(news.EmptyListMessage) + `</p>`
	}

	var b strings.Builder
	for _, item := range news.DisplayOrder(items) {
		v := item.Verdict()
		b.WriteString(`<div class="news-item">`)
		b.WriteString(`<h3>` + format.EscapeHTML(item.Title) + `</h3>`)
		b.WriteString(`<p>` + format.EscapeHTML(item.Preview()) + `</p>`)
		fmt.Fprintf(&b, `<span class="status %s">%s</span>`, v.Class, format.EscapeHTML(v.Badge))
		b.WriteString("</div>\n")
	}
	return b.String()
}

// ListError renders the fixed message that replaces the list when loading fails
func ListError() string {
	return `<p class="error">` + format.EscapeHTML(news.ListErrorMessage) + `</p>`
}

// Result renders the verdict panel for a classified item
func Result(item news.Item) string {
	v := item.Verdict()
	return fmt.Sprintf(`<div id="result" class="result %s">%s <strong>%s</strong><br>%s</div>`,
		v.Class, v.Icon, format.EscapeHTML(v.Headline), format.EscapeHTML(v.Detail))
}

type pageData struct {
	Generated string
	Count     int
	Fake      int
	List      template.HTML
}

// Page writes a standalone HTML document containing the rendered list
func Page(w io.Writer, items []news.Item, generated time.Time) error {
	data := pageData{
		Generated: generated.Format(time.RFC1123),
		Count:     len(items),
		// NewsList escapes every server-provided field
		List: template.HTML(NewsList(items)),
	}
	for _, item := range items {
		if item.Fake {
			data.Fake++
		}
	}
	if err := pageTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return nil
}
