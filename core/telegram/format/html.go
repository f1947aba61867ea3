package format

import "strings"

// ParseModeHTML is the Telegram parse mode used by EscapeHTML output.
const ParseModeHTML = "HTML"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeHTML escapes text for Telegram's HTML parse mode.
func EscapeHTML(text string) string {
	return htmlEscaper.Replace(text)
}

// Bold wraps escaped text in <b> tags.
func Bold(text string) string {
	return "<b>" + EscapeHTML(text) + "</b>"
}

// Lines joins lines with a newline; an empty string yields a blank line.
func Lines(lines ...string) string {
	return strings.Join(lines, "\n")
}
