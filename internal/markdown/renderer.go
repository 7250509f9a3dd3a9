// Package markdown renders the constrained markdown+LaTeX dialect the model
// emits into HTML. Math spans are protected with placeholders before any other
// substitution runs, so markdown rules never mangle LaTeX source.
package markdown

import (
	"fmt"
	"html"
	"regexp"
	"strings"
)

var (
	displayMathRe    = regexp.MustCompile(`(?s)\$\$(.+?)\$\$`)
	displayBracketRe = regexp.MustCompile(`(?s)\\\[(.+?)\\\]`)
	inlineMathRe     = regexp.MustCompile(`\$([^\n$]+?)\$`)
	inlineParenRe    = regexp.MustCompile(`(?s)\\\((.+?)\\\)`)

	h1Re = regexp.MustCompile(`(?m)^# (.*)$`)
	h2Re = regexp.MustCompile(`(?m)^## (.*)$`)
	h3Re = regexp.MustCompile(`(?m)^### (.*)$`)

	boldRe = regexp.MustCompile(`\*\*(.*?)\*\*`)
	emRe   = regexp.MustCompile(`\*(.*?)\*`)

	ulItemRe = regexp.MustCompile(`^\s*[-*] `)
	olItemRe = regexp.MustCompile(`^\s*\d+\. `)

	headingLineRe = regexp.MustCompile(`^<h[1-3]>`)
)

// Render converts markdown source to HTML. LaTeX spans ($...$ and $$...$$)
// come out verbatim inside math marker elements for client-side typesetting.
func Render(src string) string {
	if src == "" {
		return ""
	}

	text := html.EscapeString(src)

	placeholders := make(map[string]string)
	idx := 0
	stash := func(rendered string) string {
		key := fmt.Sprintf("\x00MATH%d\x00", idx)
		idx++
		placeholders[key] = rendered
		return key
	}

	// Display math first so $$ and \[ \] blocks are not split by the inline
	// rules.
	text = displayMathRe.ReplaceAllStringFunc(text, func(m string) string {
		latex := strings.TrimSpace(displayMathRe.FindStringSubmatch(m)[1])
		return stash(`<div class="math-display">$$` + latex + `$$</div>`)
	})
	text = displayBracketRe.ReplaceAllStringFunc(text, func(m string) string {
		latex := strings.TrimSpace(displayBracketRe.FindStringSubmatch(m)[1])
		return stash(`<div class="math-display">$$` + latex + `$$</div>`)
	})
	text = inlineMathRe.ReplaceAllStringFunc(text, func(m string) string {
		latex := strings.TrimSpace(inlineMathRe.FindStringSubmatch(m)[1])
		return stash(`<span class="math-inline">$` + latex + `$</span>`)
	})
	text = inlineParenRe.ReplaceAllStringFunc(text, func(m string) string {
		latex := strings.TrimSpace(inlineParenRe.FindStringSubmatch(m)[1])
		return stash(`<span class="math-inline">$` + latex + `$</span>`)
	})

	text = h3Re.ReplaceAllString(text, "<h3>$1</h3>")
	text = h2Re.ReplaceAllString(text, "<h2>$1</h2>")
	text = h1Re.ReplaceAllString(text, "<h1>$1</h1>")

	text = boldRe.ReplaceAllString(text, "<strong>$1</strong>")
	text = emRe.ReplaceAllString(text, "<em>$1</em>")

	text = renderLists(text)
	text = renderParagraphs(text)

	for key, rendered := range placeholders {
		text = strings.ReplaceAll(text, key, rendered)
	}
	return text
}

func renderLists(text string) string {
	lines := strings.Split(text, "\n")
	var out []string
	listType := "" // "ul", "ol" or ""

	closeList := func() {
		if listType != "" {
			out = append(out, "</"+listType+">")
			listType = ""
		}
	}

	for _, line := range lines {
		if headingLineRe.MatchString(strings.TrimSpace(line)) {
			closeList()
			out = append(out, line)
			continue
		}
		switch {
		case ulItemRe.MatchString(line):
			if listType != "ul" {
				closeList()
				out = append(out, "<ul>")
				listType = "ul"
			}
			out = append(out, "<li>"+ulItemRe.ReplaceAllString(line, "")+"</li>")
		case olItemRe.MatchString(line):
			if listType != "ol" {
				closeList()
				out = append(out, "<ol>")
				listType = "ol"
			}
			out = append(out, "<li>"+olItemRe.ReplaceAllString(line, "")+"</li>")
		default:
			closeList()
			out = append(out, line)
		}
	}
	closeList()
	return strings.Join(out, "\n")
}

func renderParagraphs(text string) string {
	blocks := strings.Split(text, "\n\n")
	var out []string
	for _, block := range blocks {
		trimmed := strings.TrimSpace(block)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "<ul") || strings.HasPrefix(trimmed, "<ol") || strings.HasPrefix(trimmed, "<h") {
			out = append(out, block)
			continue
		}
		out = append(out, "<p>"+strings.ReplaceAll(block, "\n", "<br />")+"</p>")
	}
	return strings.ReplaceAll(strings.Join(out, ""), "\n", "")
}
