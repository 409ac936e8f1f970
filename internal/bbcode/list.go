package bbcode

import (
	"strings"

	"github.com/bbforge/bbforge/internal/doctree"
)

// renderList assembles a plain-list block. Ordered lists open with a
// value-tagged marker; unordered and description lists open with a plain
// tag. The item output is trimmed and re-padded with exactly one newline on
// each side of the block.
func (tr *transcoder) renderList(n *doctree.Node) (string, error) {
	var open string
	switch n.ListKind {
	case doctree.ListOrdered:
		open = "[list=1]"
	case doctree.ListUnordered, doctree.ListDescription:
		open = "[list]"
	default:
		return "", unsupportedf("list variant %q", n.ListKind)
	}

	var items strings.Builder
	for _, item := range n.Children {
		s, err := tr.renderItem(item, n.ListKind)
		if err != nil {
			return "", err
		}
		items.WriteString(s)
	}
	return open + "\n" + strings.TrimSpace(items.String()) + "\n[/list]\n\n", nil
}

// renderItem renders one list item: a literal bullet, then for description
// lists the italic-wrapped term, then the trimmed item content. The
// enclosing list's variant is passed down by the list handler instead of
// being recovered through a parent pointer.
func (tr *transcoder) renderItem(n *doctree.Node, list doctree.ListKind) (string, error) {
	contents, err := tr.transcodeAll(n.Children)
	if err != nil {
		return "", err
	}
	var term string
	if list == doctree.ListDescription && n.Term != "" {
		term = Wrap("i", n.Term) + ": "
	}
	return "[*]" + term + strings.TrimSpace(contents) + "\n", nil
}

// renderTableRow wraps each cell in a cell tag and the row in a row tag. A
// row whose cells carry no content at all is dropped outright rather than
// rendered as an empty tag pair.
func (tr *transcoder) renderTableRow(n *doctree.Node) (string, error) {
	var cells, raw strings.Builder
	for _, cell := range n.Children {
		contents, err := tr.transcodeAll(cell.Children)
		if err != nil {
			return "", err
		}
		raw.WriteString(contents)
		cells.WriteString(Wrap("td", contents))
	}
	if strings.TrimSpace(raw.String()) == "" {
		return "", nil
	}
	return Wrap("tr", cells.String()), nil
}
