package format

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncate_ShortTextUnchanged(t *testing.T) {
	tests := []string{
		"",
		"short",
		strings.Repeat("a", 199),
		strings.Repeat("a", 200),
		strings.Repeat("é", 200), // 400 bytes, 200 characters
	}

	for _, text := range tests {
		if got := Truncate(text, PreviewLimit); got != text {
			t.Errorf("Truncate(%d runes) changed text: got %d runes", utf8.RuneCountInString(text), utf8.RuneCountInString(got))
		}
	}
}

func TestTruncate_LongText(t *testing.T) {
	text := strings.Repeat("abcdefghij", 30) // 300 characters

	got := Truncate(text, PreviewLimit)

	if utf8.RuneCountInString(got) != 203 {
		t.Fatalf("Expected 203 characters, got %d", utf8.RuneCountInString(got))
	}
	if got != text[:200]+"..." {
		t.Errorf("Expected first 200 characters plus ellipsis, got %q", got)
	}
}

func TestTruncate_MultiByteBoundary(t *testing.T) {
	// 199 ASCII characters followed by multi-byte runes: the cut lands on a rune boundary
	text := strings.Repeat("x", 199) + "日本語"

	got := Truncate(text, PreviewLimit)

	if !utf8.ValidString(got) {
		t.Fatalf("Truncate produced invalid UTF-8: %q", got)
	}
	want := strings.Repeat("x", 199) + "日..."
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestTruncate_ZeroAndNegative(t *testing.T) {
	if got := Truncate("abc", 0); got != "..." {
		t.Errorf("Truncate(abc, 0) = %q, want %q", got, "...")
	}
	if got := Truncate("abc", -5); got != "..." {
		t.Errorf("Truncate(abc, -5) = %q, want %q", got, "...")
	}
	if got := Truncate("", 0); got != "" {
		t.Errorf("Truncate(\"\", 0) = %q, want empty", got)
	}
}

func TestEscapeHTML(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"<script>alert(1)</script>", "&lt;script&gt;alert(1)&lt;/script&gt;"},
		{"Tom & Jerry", "Tom &amp; Jerry"},
		{`say "hi"`, "say &#34;hi&#34;"},
		{"it's", "it&#39;s"},
		{"&amp;", "&amp;amp;"},
	}

	for _, tt := range tests {
		if got := EscapeHTML(tt.in); got != tt.want {
			t.Errorf("EscapeHTML(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEscapeHTML_NoMarkupSurvives(t *testing.T) {
	inputs := []string{
		"<b>bold</b>",
		"a < b && c > d",
		"<img src=x onerror=\"alert('x')\">",
		"&lt;already&gt;",
	}

	for _, in := range inputs {
		out := EscapeHTML(in)
		if strings.ContainsAny(out, "<>\"'") {
			t.Errorf("EscapeHTML(%q) left markup characters: %q", in, out)
		}
		// Every remaining & must start an entity we produced
		for i := 0; i < len(out); i++ {
			if out[i] != '&' {
				continue
			}
			rest := out[i:]
			if !strings.HasPrefix(rest, "&amp;") && !strings.HasPrefix(rest, "&lt;") &&
				!strings.HasPrefix(rest, "&gt;") && !strings.HasPrefix(rest, "&#34;") &&
				!strings.HasPrefix(rest, "&#39;") {
				t.Errorf("EscapeHTML(%q) left a bare ampersand: %q", in, out)
			}
		}
	}
}

func TestSanitizeTerminal(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		singleLine bool
		want       string
	}{
		{"plain", "hello", false, "hello"},
		{"escape sequence", "\x1b[31mred\x1b[0m", false, "red"},
		{"bell", "ding\a", false, "ding"},
		{"keeps newlines", "a\nb", false, "a\nb"},
		{"flattens newlines", "a\nb", true, "a b"},
		{"window title", "ok\x1b]0;owned\a done", false, "ok done"},
		{"screen clear", "\x1b[2Jclean", true, "clean"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeTerminal(tt.input, tt.singleLine); got != tt.want {
				t.Errorf("SanitizeTerminal(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
