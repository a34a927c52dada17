// Package markup turns numbered recipe steps into HTML ordered lists.
package markup

import (
	"html"
	"html/template"
	"strconv"
	"strings"
	"unicode/utf8"
)

// LineSeparator is the separator browsers submit in textarea values. Stored
// recipe bodies use it, so conversion splits on it too.
const LineSeparator = "\r\n"

// ConvertList wraps consecutive numbered lines ("1. ...", "2. ...") in an
// <ol>. Each numbered line becomes an <li> with the marker and the single
// character after it removed. Unnumbered lines are copied through.
//
// Text that does not contain "1.", "2." and "3." in that order is returned
// unchanged.
func ConvertList(text string) string {
	if !hasListMarkers(text) {
		return text
	}

	lines := strings.Split(text, LineSeparator)

	final := 1
	for _, line := range lines {
		if strings.HasPrefix(line, marker(final)) {
			final++
		}
	}

	var b strings.Builder
	next := 1
	for _, line := range lines {
		m := marker(next)
		if !strings.HasPrefix(line, m) {
			b.WriteString(line)
			b.WriteString(LineSeparator)
			continue
		}

		if next == 1 {
			b.WriteString("<ol>")
			b.WriteString(LineSeparator)
		}
		next++

		item := line[len(m):]
		_, size := utf8.DecodeRuneInString(item)
		item = item[size:]
		b.WriteString("<li>")
		b.WriteString(item)
		b.WriteString("</li>")
		b.WriteString(LineSeparator)

		if next == final {
			b.WriteString("</ol>")
		}
	}
	return b.String()
}

// RenderBody escapes a user supplied recipe body and converts its numbered
// steps, producing markup safe to embed in a page.
func RenderBody(text string) template.HTML {
	return template.HTML(ConvertList(html.EscapeString(text))) //nolint:gosec
}

func hasListMarkers(text string) bool {
	rest := text
	for n := 1; n <= 3; n++ {
		idx := strings.Index(rest, marker(n))
		if idx < 0 {
			return false
		}
		rest = rest[idx+len(marker(n)):]
	}
	return true
}

func marker(n int) string {
	return strconv.Itoa(n) + "."
}
