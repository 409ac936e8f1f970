// Package bbcode transcodes a parsed document tree into bracket-tag forum
// markup.
//
// The transcoder is a single bottom-up fold over the tree: each node's
// children render to strings first, left to right, and the node's own rule
// combines them. The dispatch is an exhaustive switch over the closed
// [doctree.Kind] set; variants the dialect cannot express map to explicit
// failure arms, never to a fallback. The first [UnsupportedError] aborts the
// pass with no partial output.
package bbcode

import (
	"fmt"
	"strings"

	"github.com/bbforge/bbforge/internal/doctree"
)

// Transcode renders a document tree as BBCode: the folded body followed by
// the footnote section. The output is a body fragment with no outer
// document tag.
func Transcode(root *doctree.Node) (string, error) {
	tr := &transcoder{ctx: NewContext()}
	body, err := tr.transcode(root)
	if err != nil {
		return "", err
	}
	section, err := tr.footnoteSection()
	if err != nil {
		return "", err
	}
	return body + section, nil
}

type transcoder struct {
	ctx *Context
}

// transcodeAll folds a node sequence left to right, concatenating results
// and short-circuiting on the first failure.
func (tr *transcoder) transcodeAll(nodes []*doctree.Node) (string, error) {
	var b strings.Builder
	for _, n := range nodes {
		s, err := tr.transcode(n)
		if err != nil {
			return "", err
		}
		b.WriteString(s)
	}
	return b.String(), nil
}

func (tr *transcoder) wrapChildren(tag string, n *doctree.Node) (string, error) {
	contents, err := tr.transcodeAll(n.Children)
	if err != nil {
		return "", err
	}
	return Wrap(tag, contents), nil
}

func (tr *transcoder) transcode(n *doctree.Node) (string, error) {
	switch n.Kind {
	case doctree.KindDocument, doctree.KindSection:
		return tr.transcodeAll(n.Children)

	case doctree.KindPlainText, doctree.KindEntity:
		return n.Literal, nil

	case doctree.KindParagraph:
		contents, err := tr.transcodeAll(n.Children)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(contents) + "\n\n", nil

	case doctree.KindBold:
		return tr.wrapChildren("b", n)
	case doctree.KindItalic:
		return tr.wrapChildren("i", n)
	case doctree.KindUnderline:
		return tr.wrapChildren("u", n)
	case doctree.KindStrikeThrough:
		return tr.wrapChildren("s", n)

	case doctree.KindVerbatim, doctree.KindCode:
		return WrapValue("font", n.Literal, "monospace"), nil

	case doctree.KindHeadline:
		// The footnote renderer emits its own heading; a headline flagged
		// as the footnote section would duplicate it.
		if n.FootnoteSection {
			return "", nil
		}
		contents, err := tr.transcodeAll(n.Children)
		if err != nil {
			return "", err
		}
		head, err := formatHeadline(n.Level, n.Title)
		if err != nil {
			return "", err
		}
		return head + contents, nil

	case doctree.KindPlainList:
		return tr.renderList(n)
	case doctree.KindItem:
		// Items normally render through their list; a bare item is treated
		// as unordered.
		return tr.renderItem(n, doctree.ListUnordered)

	case doctree.KindLink:
		text, err := tr.transcodeAll(n.Children)
		if err != nil {
			return "", err
		}
		return resolveLink(n, text)

	case doctree.KindFootnoteReference:
		if n.InlineDefinition {
			return "", unsupported("inline footnote definition")
		}
		return fmt.Sprintf("^%d ", tr.ctx.footnotes.numberOf(n.Label)), nil
	case doctree.KindFootnoteDefinition:
		tr.ctx.footnotes.define(n.Label, n.Children)
		return "", nil

	case doctree.KindTable:
		contents, err := tr.transcodeAll(n.Children)
		if err != nil {
			return "", err
		}
		return Wrap("table", contents) + "\n\n", nil
	case doctree.KindTableRow:
		return tr.renderTableRow(n)
	case doctree.KindTableCell:
		contents, err := tr.transcodeAll(n.Children)
		if err != nil {
			return "", err
		}
		return Wrap("td", contents), nil

	case doctree.KindHorizontalRule:
		return "[hr]\n\n", nil
	case doctree.KindLineBreak:
		return "[br]\n", nil

	case doctree.KindQuoteBlock:
		contents, err := tr.transcodeAll(n.Children)
		if err != nil {
			return "", err
		}
		return Wrap("quote", strings.TrimSpace(contents)) + "\n\n", nil

	case doctree.KindSrcBlock, doctree.KindExampleBlock, doctree.KindFixedWidth:
		body := strings.TrimRight(n.Literal, "\n")
		return Wrap("code", "\n"+body+"\n") + "\n\n", nil

	// Everything below exists in the source language but has no rendering
	// in this dialect. Each arm is deliberate: adding a new variant to the
	// tree without deciding its fate here is an error, not a silent skip.
	case doctree.KindBabelCall,
		doctree.KindCenterBlock,
		doctree.KindCitation,
		doctree.KindCitationReference,
		doctree.KindClock,
		doctree.KindComment,
		doctree.KindCommentBlock,
		doctree.KindDrawer,
		doctree.KindDynamicBlock,
		doctree.KindExportBlock,
		doctree.KindExportSnippet,
		doctree.KindInlineBabelCall,
		doctree.KindInlineSrcBlock,
		doctree.KindInlineTask,
		doctree.KindKeyword,
		doctree.KindLatexEnvironment,
		doctree.KindLatexFragment,
		doctree.KindMacro,
		doctree.KindNodeProperty,
		doctree.KindPlanning,
		doctree.KindPropertyDrawer,
		doctree.KindRadioTarget,
		doctree.KindSpecialBlock,
		doctree.KindStatisticsCookie,
		doctree.KindSubscript,
		doctree.KindSuperscript,
		doctree.KindTarget,
		doctree.KindTimestamp:
		return "", unsupported(n.Kind.String())
	}
	return "", unsupported(n.Kind.String())
}
