package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/nickpending/newscheck/internal/format"
	"github.com/nickpending/newscheck/internal/news"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatHTML = "html"
)

func validateFormat(f string) error {
	switch f {
	case formatText, formatJSON, formatHTML:
		return nil
	}
	return fmt.Errorf("unknown format %q (want text|json|html)", f)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeItemLine prints one list entry: badge, title and the content preview
func writeItemLine(w io.Writer, item news.Item) {
	v := item.Verdict()
	fmt.Fprintf(w, "%s  %s\n", v.Badge, oneLine(item.Title))
	if preview := oneLine(item.Preview()); preview != "" {
		fmt.Fprintf(w, "    %s\n", preview)
	}
}

// writeVerdict prints the verdict panel text for a classified item
func writeVerdict(w io.Writer, item news.Item) {
	v := item.Verdict()
	fmt.Fprintf(w, "%s %s\n%s\n", v.Icon, v.Headline, v.Detail)
}

// oneLine collapses server text to a single terminal-safe line
func oneLine(s string) string {
	return strings.Join(strings.Fields(format.SanitizeTerminal(s, true)), " ")
}
