package parser

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/bbforge/bbforge/internal/doctree"
	"golang.org/x/net/html"
)

// HTMLParser handles HTML files.
type HTMLParser struct{}

func (p *HTMLParser) Parse(r io.Reader, filename string) (*doctree.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	root := &doctree.Node{Kind: doctree.KindDocument}

	// Convert <body> when present, otherwise the whole document.
	scope := findBody(doc)
	if scope == nil {
		scope = doc
	}
	for c := scope.FirstChild; c != nil; c = c.NextSibling {
		appendHTMLBlock(root, c)
	}
	return root, nil
}

var wsRun = regexp.MustCompile(`\s+`)

// appendHTMLBlock converts a block-level HTML node.
func appendHTMLBlock(parent *doctree.Node, n *html.Node) {
	if n.Type == html.TextNode {
		if t := strings.TrimSpace(n.Data); t != "" {
			p := &doctree.Node{Kind: doctree.KindParagraph}
			p.AppendChild(doctree.Text(wsRun.ReplaceAllString(t, " ")))
			parent.AppendChild(p)
		}
		return
	}
	if n.Type != html.ElementNode {
		return
	}

	if level := headingLevel(n.Data); level > 0 {
		parent.AppendChild(&doctree.Node{
			Kind:  doctree.KindHeadline,
			Level: level,
			Title: textContent(n),
		})
		return
	}

	switch n.Data {
	case "script", "style", "head", "nav", "footer", "header":
		return

	case "p":
		blk := &doctree.Node{Kind: doctree.KindParagraph}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			appendHTMLInline(blk, c)
		}
		parent.AppendChild(blk)

	case "blockquote":
		q := &doctree.Node{Kind: doctree.KindQuoteBlock}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			appendHTMLBlock(q, c)
		}
		parent.AppendChild(q)

	case "pre":
		parent.AppendChild(&doctree.Node{Kind: doctree.KindExampleBlock, Literal: rawText(n)})

	case "ul", "ol":
		kind := doctree.ListUnordered
		if n.Data == "ol" {
			kind = doctree.ListOrdered
		}
		l := &doctree.Node{Kind: doctree.KindPlainList, ListKind: kind}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.Data == "li" {
				item := &doctree.Node{Kind: doctree.KindItem}
				appendListItemContent(item, c)
				l.AppendChild(item)
			}
		}
		parent.AppendChild(l)

	case "dl":
		appendDefinitionList(parent, n)

	case "table":
		appendHTMLTable(parent, n)

	case "hr":
		parent.AppendChild(&doctree.Node{Kind: doctree.KindHorizontalRule})

	default:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			appendHTMLBlock(parent, c)
		}
	}
}

// appendHTMLInline converts an inline HTML node.
func appendHTMLInline(parent *doctree.Node, n *html.Node) {
	if n.Type == html.TextNode {
		if s := wsRun.ReplaceAllString(n.Data, " "); s != "" {
			parent.AppendChild(doctree.Text(s))
		}
		return
	}
	if n.Type != html.ElementNode {
		return
	}

	wrapInline := func(kind doctree.Kind) {
		w := &doctree.Node{Kind: kind}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			appendHTMLInline(w, c)
		}
		parent.AppendChild(w)
	}

	switch n.Data {
	case "b", "strong":
		wrapInline(doctree.KindBold)
	case "i", "em":
		wrapInline(doctree.KindItalic)
	case "u", "ins":
		wrapInline(doctree.KindUnderline)
	case "s", "del", "strike":
		wrapInline(doctree.KindStrikeThrough)
	case "sub":
		parent.AppendChild(&doctree.Node{Kind: doctree.KindSubscript})
	case "sup":
		parent.AppendChild(&doctree.Node{Kind: doctree.KindSuperscript})
	case "code", "tt", "kbd", "samp":
		parent.AppendChild(&doctree.Node{Kind: doctree.KindCode, Literal: textContent(n)})
	case "a":
		link := linkNode(attrValue(n, "href"))
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			appendHTMLInline(link, c)
		}
		parent.AppendChild(link)
	case "img":
		link := linkNode(attrValue(n, "src"))
		if alt := attrValue(n, "alt"); alt != "" {
			link.AppendChild(doctree.Text(alt))
		}
		parent.AppendChild(link)
	case "br":
		parent.AppendChild(&doctree.Node{Kind: doctree.KindLineBreak})
	default:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			appendHTMLInline(parent, c)
		}
	}
}

// appendListItemContent fills a list item. An <li> that contains only inline
// content becomes a single paragraph; nested blocks convert as blocks.
func appendListItemContent(item *doctree.Node, li *html.Node) {
	inline := &doctree.Node{Kind: doctree.KindParagraph}
	for c := li.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && isHTMLBlockTag(c.Data) {
			if len(inline.Children) > 0 {
				item.AppendChild(inline)
				inline = &doctree.Node{Kind: doctree.KindParagraph}
			}
			appendHTMLBlock(item, c)
			continue
		}
		appendHTMLInline(inline, c)
	}
	if len(inline.Children) > 0 {
		item.AppendChild(inline)
	}
}

// appendDefinitionList converts <dl>: each <dt> becomes the term of the
// description items built from the <dd> elements that follow it.
func appendDefinitionList(parent *doctree.Node, dl *html.Node) {
	l := &doctree.Node{Kind: doctree.KindPlainList, ListKind: doctree.ListDescription}
	var term string
	for c := dl.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "dt":
			term = textContent(c)
		case "dd":
			item := &doctree.Node{Kind: doctree.KindItem, Term: term}
			appendListItemContent(item, c)
			l.AppendChild(item)
		}
	}
	parent.AppendChild(l)
}

func appendHTMLTable(parent *doctree.Node, table *html.Node) {
	tbl := &doctree.Node{Kind: doctree.KindTable}
	var walkRows func(*html.Node)
	walkRows = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.Data {
			case "thead", "tbody", "tfoot":
				walkRows(c)
			case "tr":
				row := &doctree.Node{Kind: doctree.KindTableRow}
				for cell := c.FirstChild; cell != nil; cell = cell.NextSibling {
					if cell.Type == html.ElementNode && (cell.Data == "td" || cell.Data == "th") {
						cn := &doctree.Node{Kind: doctree.KindTableCell}
						for cc := cell.FirstChild; cc != nil; cc = cc.NextSibling {
							appendHTMLInline(cn, cc)
						}
						row.AppendChild(cn)
					}
				}
				tbl.AppendChild(row)
			}
		}
	}
	walkRows(table)
	parent.AppendChild(tbl)
}

func isHTMLBlockTag(tag string) bool {
	switch tag {
	case "p", "ul", "ol", "dl", "table", "blockquote", "pre", "hr",
		"h1", "h2", "h3", "h4", "h5", "h6", "div":
		return true
	}
	return false
}

func headingLevel(tag string) int {
	switch tag {
	case "h1":
		return 1
	case "h2":
		return 2
	case "h3":
		return 3
	case "h4":
		return 4
	case "h5":
		return 5
	case "h6":
		return 6
	}
	return 0
}

// textContent flattens an element to whitespace-normalized plain text.
func textContent(n *html.Node) string {
	return strings.TrimSpace(wsRun.ReplaceAllString(rawText(n), " "))
}

// rawText concatenates the text nodes under n without normalization.
func rawText(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return buf.String()
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
