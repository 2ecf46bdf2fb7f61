package typewriter

import (
	"html"
	"html/template"
	"regexp"
	"strings"
)

// Line is one numbered, highlighted line of code.
type Line struct {
	Number int
	HTML   template.HTML
}

var token = regexp.MustCompile(`('[^']*'|"[^"]*")|(console\.log)|(\.\w+\()|\b(const|let|var|function|return|if|else)\b|(\w+):`)

var tokenClass = [...]string{
	1: "syntax-string",
	2: "syntax-function",
	3: "syntax-function",
	4: "syntax-keyword",
	5: "syntax-variable",
}

// Highlight splits code into numbered lines and wraps strings, keywords,
// method calls and property keys in spans. Everything else is escaped.
func Highlight(code string) []Line {
	raw := strings.Split(code, "\n")
	lines := make([]Line, len(raw))
	for i, l := range raw {
		lines[i] = Line{Number: i + 1, HTML: template.HTML(highlightLine(l))}
	}
	return lines
}

func highlightLine(line string) string {
	var b strings.Builder
	last := 0
	for _, m := range token.FindAllStringSubmatchIndex(line, -1) {
		b.WriteString(html.EscapeString(line[last:m[0]]))
		last = m[1]

		for g := 1; g < len(tokenClass); g++ {
			start, end := m[2*g], m[2*g+1]
			if start < 0 {
				continue
			}
			b.WriteString(`<span class="` + tokenClass[g] + `">`)
			b.WriteString(html.EscapeString(line[start:end]))
			b.WriteString(`</span>`)
			// the property key group leaves its colon outside the span
			b.WriteString(html.EscapeString(line[end:m[1]]))
			break
		}
	}
	b.WriteString(html.EscapeString(line[last:]))
	return b.String()
}
