package parser

import (
	"strings"
	"testing"

	"github.com/bbforge/bbforge/internal/bbcode"
	"github.com/bbforge/bbforge/internal/doctree"
)

func TestTextParser_Paragraphs(t *testing.T) {
	input := "First paragraph\nspanning two lines.\n\nSecond paragraph.\n"
	p := &TextParser{}
	tree, err := p.Parse(strings.NewReader(input), "notes.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tree.Children) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d", len(tree.Children))
	}
	for _, c := range tree.Children {
		if c.Kind != doctree.KindParagraph {
			t.Errorf("expected paragraph, got %s", c.Kind)
		}
	}
	first := tree.Children[0].Children[0].Literal
	if first != "First paragraph\nspanning two lines." {
		t.Errorf("unexpected first paragraph %q", first)
	}
}

func TestTextParser_EmptyInput(t *testing.T) {
	p := &TextParser{}
	tree, err := p.Parse(strings.NewReader(""), "empty.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tree.Children) != 0 {
		t.Errorf("expected 0 children, got %d", len(tree.Children))
	}
}

func TestTextParser_ToBBCode(t *testing.T) {
	p := &TextParser{}
	tree, err := p.Parse(strings.NewReader("hello\n\nworld\n"), "x.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := bbcode.Transcode(tree)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "hello\n\nworld\n\n" {
		t.Errorf("unexpected output %q", out)
	}
}
