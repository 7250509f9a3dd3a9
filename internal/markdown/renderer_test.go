package markdown

import (
	"strings"
	"testing"
)

func TestRenderLatexPassthrough(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"inline math verbatim", `Công của cần cẩu: $A = F \cdot s$ nhé.`, `$A = F \cdot s$`},
		{"display math verbatim", "Ta có:\n$$x = \\frac{1}{2}$$\nxong.", `$$x = \frac{1}{2}$$`},
		{"bold inside math untouched", `$a**b$`, `$a**b$`},
		{"paren span normalized", `Vậy \(v = s/t\) là vận tốc.`, `<span class="math-inline">$v = s/t$</span>`},
		{"bracket span normalized", "Suy ra:\n\\[E = mc^2\\]", `<div class="math-display">$$E = mc^2$$</div>`},
		{"subscript braces survive list pass", `* item with $Fe_2O_3$`, `$Fe_2O_3$`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Render(tt.src)
			if !strings.Contains(got, tt.want) {
				t.Errorf("Render(%q) = %q, want it to contain %q", tt.src, got, tt.want)
			}
		})
	}
}

func TestRenderMarkdown(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{"heading", "### Gợi ý\nnội dung", []string{"<h3>Gợi ý</h3>"}},
		{"bold", "**quan trọng**", []string{"<strong>quan trọng</strong>"}},
		{"bullet list", "- một\n- hai", []string{"<ul>", "<li>một</li>", "<li>hai</li>", "</ul>"}},
		{"ordered list", "1. đầu\n2. sau", []string{"<ol>", "<li>đầu</li>", "<li>sau</li>", "</ol>"}},
		{"paragraph with break", "dòng một\ndòng hai", []string{"<p>dòng một<br />dòng hai</p>"}},
		{"html escaped", "a < b & c", []string{"a &lt; b &amp; c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Render(tt.src)
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("Render(%q) = %q, want it to contain %q", tt.src, got, want)
				}
			}
		})
	}
}

func TestRenderEmpty(t *testing.T) {
	if got := Render(""); got != "" {
		t.Errorf("Render(\"\") = %q, want empty", got)
	}
}

func TestRenderListClosedBeforeHeading(t *testing.T) {
	got := Render("- a\n### Tiêu đề")
	ulEnd := strings.Index(got, "</ul>")
	h3 := strings.Index(got, "<h3>")
	if ulEnd == -1 || h3 == -1 || ulEnd > h3 {
		t.Errorf("list not closed before heading: %q", got)
	}
}
