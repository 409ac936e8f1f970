package parser

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/bbforge/bbforge/internal/doctree"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownParser handles Markdown files using goldmark, with the
// strikethrough, table, and footnote extensions enabled.
type MarkdownParser struct{}

func (p *MarkdownParser) Parse(r io.Reader, filename string) (*doctree.Node, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New(goldmark.WithExtensions(
		extension.Strikethrough,
		extension.Table,
		extension.Footnote,
	))
	doc := md.Parser().Parse(text.NewReader(src))

	c := &mdConverter{src: src}
	root := &doctree.Node{Kind: doctree.KindDocument}
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		c.appendBlock(root, n)
	}
	return root, nil
}

type mdConverter struct {
	src []byte
}

// appendBlock converts one goldmark block node and appends the result to
// parent. Raw HTML blocks become export-block nodes, which the transcoder
// rejects; the dialect has no way to carry foreign markup through.
func (c *mdConverter) appendBlock(parent *doctree.Node, n ast.Node) {
	switch node := n.(type) {
	case *ast.Heading:
		parent.AppendChild(&doctree.Node{
			Kind:  doctree.KindHeadline,
			Level: node.Level,
			Title: c.textOf(node),
		})

	case *ast.Paragraph:
		p := &doctree.Node{Kind: doctree.KindParagraph}
		c.appendInlines(p, node)
		parent.AppendChild(p)

	case *ast.TextBlock:
		// Tight list items carry text blocks instead of paragraphs.
		p := &doctree.Node{Kind: doctree.KindParagraph}
		c.appendInlines(p, node)
		parent.AppendChild(p)

	case *ast.Blockquote:
		q := &doctree.Node{Kind: doctree.KindQuoteBlock}
		for ch := node.FirstChild(); ch != nil; ch = ch.NextSibling() {
			c.appendBlock(q, ch)
		}
		parent.AppendChild(q)

	case *ast.List:
		l := &doctree.Node{Kind: doctree.KindPlainList, ListKind: doctree.ListUnordered}
		if node.IsOrdered() {
			l.ListKind = doctree.ListOrdered
		}
		for it := node.FirstChild(); it != nil; it = it.NextSibling() {
			item := &doctree.Node{Kind: doctree.KindItem}
			for blk := it.FirstChild(); blk != nil; blk = blk.NextSibling() {
				c.appendBlock(item, blk)
			}
			l.AppendChild(item)
		}
		parent.AppendChild(l)

	case *ast.FencedCodeBlock:
		parent.AppendChild(&doctree.Node{
			Kind:     doctree.KindSrcBlock,
			Literal:  c.blockLines(node),
			Language: string(node.Language(c.src)),
		})

	case *ast.CodeBlock:
		parent.AppendChild(&doctree.Node{
			Kind:    doctree.KindExampleBlock,
			Literal: c.blockLines(node),
		})

	case *ast.ThematicBreak:
		parent.AppendChild(&doctree.Node{Kind: doctree.KindHorizontalRule})

	case *ast.HTMLBlock:
		parent.AppendChild(&doctree.Node{Kind: doctree.KindExportBlock})

	case *extast.Table:
		tbl := &doctree.Node{Kind: doctree.KindTable}
		for r := node.FirstChild(); r != nil; r = r.NextSibling() {
			row := &doctree.Node{Kind: doctree.KindTableRow}
			for cl := r.FirstChild(); cl != nil; cl = cl.NextSibling() {
				cell := &doctree.Node{Kind: doctree.KindTableCell}
				c.appendInlines(cell, cl)
				row.AppendChild(cell)
			}
			tbl.AppendChild(row)
		}
		parent.AppendChild(tbl)

	case *extast.FootnoteList:
		for f := node.FirstChild(); f != nil; f = f.NextSibling() {
			fn, ok := f.(*extast.Footnote)
			if !ok {
				continue
			}
			def := &doctree.Node{
				Kind:  doctree.KindFootnoteDefinition,
				Label: strconv.Itoa(fn.Index),
			}
			for blk := fn.FirstChild(); blk != nil; blk = blk.NextSibling() {
				c.appendBlock(def, blk)
			}
			parent.AppendChild(def)
		}

	default:
		for ch := n.FirstChild(); ch != nil; ch = ch.NextSibling() {
			c.appendBlock(parent, ch)
		}
	}
}

// appendInlines converts the inline children of a goldmark node.
func (c *mdConverter) appendInlines(parent *doctree.Node, n ast.Node) {
	for ch := n.FirstChild(); ch != nil; ch = ch.NextSibling() {
		switch node := ch.(type) {
		case *ast.Text:
			parent.AppendChild(doctree.Text(string(node.Value(c.src))))
			if node.HardLineBreak() {
				parent.AppendChild(&doctree.Node{Kind: doctree.KindLineBreak})
			} else if node.SoftLineBreak() {
				parent.AppendChild(doctree.Text("\n"))
			}

		case *ast.String:
			parent.AppendChild(doctree.Text(string(node.Value)))

		case *ast.Emphasis:
			kind := doctree.KindItalic
			if node.Level == 2 {
				kind = doctree.KindBold
			}
			em := &doctree.Node{Kind: kind}
			c.appendInlines(em, node)
			parent.AppendChild(em)

		case *extast.Strikethrough:
			s := &doctree.Node{Kind: doctree.KindStrikeThrough}
			c.appendInlines(s, node)
			parent.AppendChild(s)

		case *ast.CodeSpan:
			parent.AppendChild(&doctree.Node{Kind: doctree.KindCode, Literal: c.textOf(node)})

		case *ast.Link:
			link := linkNode(string(node.Destination))
			c.appendInlines(link, node)
			parent.AppendChild(link)

		case *ast.AutoLink:
			parent.AppendChild(linkNode(string(node.URL(c.src))))

		case *ast.Image:
			// No image tag in the dialect; degrade to a link with the alt
			// text as description.
			link := linkNode(string(node.Destination))
			c.appendInlines(link, node)
			parent.AppendChild(link)

		case *extast.FootnoteLink:
			parent.AppendChild(&doctree.Node{
				Kind:  doctree.KindFootnoteReference,
				Label: strconv.Itoa(node.Index),
			})

		case *extast.FootnoteBacklink:
			// Backlinks only make sense in rendered HTML.

		case *ast.RawHTML:
			parent.AppendChild(&doctree.Node{Kind: doctree.KindExportSnippet})

		default:
			c.appendInlines(parent, ch)
		}
	}
}

// linkNode splits a markdown destination into the scheme/path form the link
// resolver expects. Fragments map to the same-document anchor convention;
// anything else keeps its scheme and lets the resolver decide.
func linkNode(dest string) *doctree.Node {
	n := &doctree.Node{Kind: doctree.KindLink, RawTarget: dest}
	if strings.HasPrefix(dest, "#") || strings.HasPrefix(dest, "/#") {
		n.Scheme = doctree.SchemeAnchor
		return n
	}
	if i := strings.Index(dest, ":"); i > 0 {
		n.Scheme = dest[:i]
		n.Path = dest[i+1:]
	}
	return n
}

// textOf flattens a node's inline content to plain text.
func (c *mdConverter) textOf(n ast.Node) string {
	var buf bytes.Buffer
	for ch := n.FirstChild(); ch != nil; ch = ch.NextSibling() {
		switch t := ch.(type) {
		case *ast.Text:
			buf.Write(t.Value(c.src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				buf.WriteByte('\n')
			}
		case *ast.String:
			buf.Write(t.Value)
		default:
			buf.WriteString(c.textOf(ch))
		}
	}
	return strings.TrimSpace(buf.String())
}

// blockLines collects the raw source lines of a block node.
func (c *mdConverter) blockLines(n ast.Node) string {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		buf.Write(line.Value(c.src))
	}
	return buf.String()
}
