package parser

import (
	"strings"
	"testing"

	"github.com/bbforge/bbforge/internal/bbcode"
	"github.com/bbforge/bbforge/internal/doctree"
)

func convertMarkdown(t *testing.T, input string) string {
	t.Helper()
	p := &MarkdownParser{}
	tree, err := p.Parse(strings.NewReader(input), "doc.md")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	out, err := bbcode.Transcode(tree)
	if err != nil {
		t.Fatalf("unexpected transcode error: %v", err)
	}
	return out
}

func TestMarkdownParser_Headings(t *testing.T) {
	p := &MarkdownParser{}
	tree, err := p.Parse(strings.NewReader("# Title\n\n## Section\n\ntext\n"), "doc.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tree.Children) != 3 {
		t.Fatalf("expected 3 top-level nodes, got %d", len(tree.Children))
	}
	h1 := tree.Children[0]
	if h1.Kind != doctree.KindHeadline || h1.Level != 1 || h1.Title != "Title" {
		t.Errorf("unexpected first node: %+v", h1)
	}
	h2 := tree.Children[1]
	if h2.Kind != doctree.KindHeadline || h2.Level != 2 || h2.Title != "Section" {
		t.Errorf("unexpected second node: %+v", h2)
	}
	if tree.Children[2].Kind != doctree.KindParagraph {
		t.Errorf("expected paragraph, got %s", tree.Children[2].Kind)
	}
}

func TestMarkdownParser_InlineToBBCode(t *testing.T) {
	out := convertMarkdown(t, "Some **bold** and *italic* and ~~gone~~ and `x=1` text.\n")
	want := "Some [b]bold[/b] and [i]italic[/i] and [s]gone[/s] and [font=monospace]x=1[/font] text.\n\n"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestMarkdownParser_Lists(t *testing.T) {
	out := convertMarkdown(t, "- a\n- b\n")
	if out != "[list]\n[*]a\n[*]b\n[/list]\n\n" {
		t.Errorf("unexpected unordered list output %q", out)
	}

	out = convertMarkdown(t, "1. a\n2. b\n")
	if out != "[list=1]\n[*]a\n[*]b\n[/list]\n\n" {
		t.Errorf("unexpected ordered list output %q", out)
	}
}

func TestMarkdownParser_Links(t *testing.T) {
	out := convertMarkdown(t, "See [here](https://example.com/a).\n")
	if !strings.Contains(out, "[url=https://example.com/a]here[/url]") {
		t.Errorf("unexpected link output %q", out)
	}

	out = convertMarkdown(t, "Jump [down](#details).\n")
	if !strings.Contains(out, "[url=#details]down[/url]") {
		t.Errorf("unexpected anchor output %q", out)
	}
}

func TestMarkdownParser_UnsupportedLinkScheme(t *testing.T) {
	p := &MarkdownParser{}
	tree, err := p.Parse(strings.NewReader("Write [me](mailto:a@b.c).\n"), "doc.md")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if _, err := bbcode.Transcode(tree); err == nil {
		t.Fatal("expected transcode to reject mailto link")
	}
}

func TestMarkdownParser_CodeFence(t *testing.T) {
	out := convertMarkdown(t, "```go\nx := 1\n```\n")
	if out != "[code]\nx := 1\n[/code]\n\n" {
		t.Errorf("unexpected code block output %q", out)
	}
}

func TestMarkdownParser_Table(t *testing.T) {
	out := convertMarkdown(t, "| a | b |\n|---|---|\n| c | d |\n")
	want := "[table][tr][td]a[/td][td]b[/td][/tr][tr][td]c[/td][td]d[/td][/tr][/table]\n\n"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestMarkdownParser_Footnotes(t *testing.T) {
	out := convertMarkdown(t, "Text[^1] and more[^2] and again[^1].\n\n[^1]: First note.\n[^2]: Second note.\n")
	if !strings.Contains(out, "Text^1 ") || !strings.Contains(out, "more^2 ") || !strings.Contains(out, "again^1 ") {
		t.Errorf("unexpected reference numbering in %q", out)
	}
	if !strings.Contains(out, "[b][u]Footnotes[/u][/b]\n\n^1: First note.\n^2: Second note.") {
		t.Errorf("unexpected footnote section in %q", out)
	}
}

func TestMarkdownParser_Blockquote(t *testing.T) {
	out := convertMarkdown(t, "> quoted words\n")
	if out != "[quote]quoted words[/quote]\n\n" {
		t.Errorf("unexpected quote output %q", out)
	}
}

func TestMarkdownParser_ThematicBreak(t *testing.T) {
	out := convertMarkdown(t, "a\n\n---\n\nb\n")
	if !strings.Contains(out, "[hr]\n\n") {
		t.Errorf("expected horizontal rule in %q", out)
	}
}

func TestMarkdownParser_RawHTMLRejected(t *testing.T) {
	p := &MarkdownParser{}
	tree, err := p.Parse(strings.NewReader("<div>raw</div>\n"), "doc.md")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if _, err := bbcode.Transcode(tree); err == nil {
		t.Fatal("expected transcode to reject raw HTML block")
	}
}

func TestMarkdownParser_EmptyInput(t *testing.T) {
	p := &MarkdownParser{}
	tree, err := p.Parse(strings.NewReader(""), "empty.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tree.Children) != 0 {
		t.Errorf("expected 0 children for empty input, got %d", len(tree.Children))
	}
}
