package content

import (
	"html"
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// markupTag matches a complete HTML tag on one line: a known element name and
// only name="value" attributes. Anything else starting with "<" is text
// (`Vec<T>`, `a<b`, `<2s`).
var markupTag = regexp.MustCompile(`(?i)</?(?:a|abbr|b|blockquote|br|code|del|div|em|h[1-6]|hr|i|img|ins|kbd|li|mark|ol|p|pre|q|s|script|small|span|strong|style|sub|sup|table|tbody|td|th|thead|tr|u|ul)(?:\s+[a-z][a-z0-9:-]*\s*=\s*(?:"[^"]*"|'[^']*'|[^\s"'<>]+))*\s*/?>`)

// plainText strips markup from a document line by line, so a stray "<" can
// never swallow the lines after it.
func plainText(doc string) string {
	if strings.TrimSpace(doc) == "" {
		return ""
	}
	lines := strings.Split(doc, "\n")
	for i, line := range lines {
		lines[i] = plainLine(line)
	}
	return strings.Join(lines, "\n")
}

// plainLine escapes every "<" that does not open a recognised tag, sanitizes
// the line and decodes the entities the sanitizer leaves behind.
func plainLine(line string) string {
	if !strings.ContainsAny(line, "<>&") {
		return line
	}
	var b strings.Builder
	last := 0
	for _, loc := range markupTag.FindAllStringIndex(line, -1) {
		b.WriteString(strings.ReplaceAll(line[last:loc[0]], "<", "&lt;"))
		b.WriteString(line[loc[0]:loc[1]])
		last = loc[1]
	}
	b.WriteString(strings.ReplaceAll(line[last:], "<", "&lt;"))
	return html.UnescapeString(textSanitizer().Sanitize(b.String()))
}

func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}
