package bbcode

import (
	"fmt"
	"strings"

	"github.com/bbforge/bbforge/internal/doctree"
)

// Context carries the state a single transcoding pass accumulates. A pass
// owns its Context exclusively and discards it when the pass completes; the
// footnote table is the only part that mutates during the fold.
type Context struct {
	footnotes footnoteTable
}

// NewContext returns an empty per-pass context.
func NewContext() *Context {
	return &Context{footnotes: footnoteTable{
		number: make(map[string]int),
		defs:   make(map[string][]*doctree.Node),
	}}
}

// footnoteTable maps definition labels to sequence numbers assigned in
// first-reference order. Numbers are never reassigned.
type footnoteTable struct {
	order  []string
	number map[string]int
	defs   map[string][]*doctree.Node
}

func (t *footnoteTable) numberOf(label string) int {
	if n, ok := t.number[label]; ok {
		return n
	}
	t.order = append(t.order, label)
	t.number[label] = len(t.order)
	return len(t.order)
}

// define records a definition body; the first definition of a label wins.
func (t *footnoteTable) define(label string, body []*doctree.Node) {
	if _, ok := t.defs[label]; !ok {
		t.defs[label] = body
	}
}

// footnoteSection renders the trailing footnote block: a synthetic level-0
// "Footnotes" headline followed by one "^N: text" line per referenced
// definition, in assigned-number order. An empty table contributes nothing.
// Definition bodies go through the same node fold, so a definition may itself
// reference further footnotes; the loop re-reads the table length to pick
// those up.
func (tr *transcoder) footnoteSection() (string, error) {
	t := &tr.ctx.footnotes
	if len(t.order) == 0 {
		return "", nil
	}
	head, err := formatHeadline(0, "Footnotes")
	if err != nil {
		return "", err
	}
	var lines []string
	for i := 0; i < len(t.order); i++ {
		body, err := tr.transcodeAll(t.defs[t.order[i]])
		if err != nil {
			return "", err
		}
		lines = append(lines, fmt.Sprintf("^%d: %s", i+1, strings.TrimSpace(body)))
	}
	return head + strings.Join(lines, "\n"), nil
}
