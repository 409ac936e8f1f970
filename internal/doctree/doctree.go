package doctree

// Kind identifies a document node variant. The set is closed: the BBCode
// transcoder carries an explicit rule, or an explicit rejection, for every
// value, so a new variant cannot slip through a fallback.
type Kind int

const (
	KindDocument Kind = iota
	KindSection
	KindParagraph
	KindPlainText
	KindBold
	KindItalic
	KindUnderline
	KindStrikeThrough
	KindVerbatim
	KindCode
	KindHeadline
	KindPlainList
	KindItem
	KindLink
	KindFootnoteReference
	KindFootnoteDefinition
	KindTable
	KindTableRow
	KindTableCell
	KindHorizontalRule
	KindLineBreak
	KindQuoteBlock
	KindSrcBlock
	KindExampleBlock
	KindFixedWidth
	KindEntity

	// Variants the source language defines but the forum dialect has no
	// rendering for. Each gets a dedicated failure arm in the transcoder.
	KindBabelCall
	KindCenterBlock
	KindCitation
	KindCitationReference
	KindClock
	KindComment
	KindCommentBlock
	KindDrawer
	KindDynamicBlock
	KindExportBlock
	KindExportSnippet
	KindInlineBabelCall
	KindInlineSrcBlock
	KindInlineTask
	KindKeyword
	KindLatexEnvironment
	KindLatexFragment
	KindMacro
	KindNodeProperty
	KindPlanning
	KindPropertyDrawer
	KindRadioTarget
	KindSpecialBlock
	KindStatisticsCookie
	KindSubscript
	KindSuperscript
	KindTarget
	KindTimestamp
)

var kindNames = [...]string{
	KindDocument:           "document",
	KindSection:            "section",
	KindParagraph:          "paragraph",
	KindPlainText:          "plain-text",
	KindBold:               "bold",
	KindItalic:             "italic",
	KindUnderline:          "underline",
	KindStrikeThrough:      "strike-through",
	KindVerbatim:           "verbatim",
	KindCode:               "code",
	KindHeadline:           "headline",
	KindPlainList:          "plain-list",
	KindItem:               "item",
	KindLink:               "link",
	KindFootnoteReference:  "footnote-reference",
	KindFootnoteDefinition: "footnote-definition",
	KindTable:              "table",
	KindTableRow:           "table-row",
	KindTableCell:          "table-cell",
	KindHorizontalRule:     "horizontal-rule",
	KindLineBreak:          "line-break",
	KindQuoteBlock:         "quote-block",
	KindSrcBlock:           "src-block",
	KindExampleBlock:       "example-block",
	KindFixedWidth:         "fixed-width",
	KindEntity:             "entity",
	KindBabelCall:          "babel-call",
	KindCenterBlock:        "center-block",
	KindCitation:           "citation",
	KindCitationReference:  "citation-reference",
	KindClock:              "clock",
	KindComment:            "comment",
	KindCommentBlock:       "comment-block",
	KindDrawer:             "drawer",
	KindDynamicBlock:       "dynamic-block",
	KindExportBlock:        "export-block",
	KindExportSnippet:      "export-snippet",
	KindInlineBabelCall:    "inline-babel-call",
	KindInlineSrcBlock:     "inline-src-block",
	KindInlineTask:         "inline-task",
	KindKeyword:            "keyword",
	KindLatexEnvironment:   "latex-environment",
	KindLatexFragment:      "latex-fragment",
	KindMacro:              "macro",
	KindNodeProperty:       "node-property",
	KindPlanning:           "planning",
	KindPropertyDrawer:     "property-drawer",
	KindRadioTarget:        "radio-target",
	KindSpecialBlock:       "special-block",
	KindStatisticsCookie:   "statistics-cookie",
	KindSubscript:          "subscript",
	KindSuperscript:        "superscript",
	KindTarget:             "target",
	KindTimestamp:          "timestamp",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// SchemeAnchor is the link scheme reserved for same-document references.
// The node's RawTarget carries the "#fragment" form as written.
const SchemeAnchor = "anchor"

// ListKind distinguishes plain-list variants.
type ListKind int

const (
	ListUnordered ListKind = iota
	ListOrdered
	ListDescription
)

func (l ListKind) String() string {
	switch l {
	case ListUnordered:
		return "unordered"
	case ListOrdered:
		return "ordered"
	case ListDescription:
		return "description"
	}
	return "unknown"
}

// Node is a single node of a parsed document tree. Front-end parsers build
// nodes once; the transcoder never mutates them. Fields beyond Kind and
// Children are variant-specific properties and are zero for other variants.
type Node struct {
	Kind Kind

	// Literal holds the text of leaf variants: plain-text, verbatim,
	// inline code, entity replacement text, and the raw body of
	// src/example/fixed-width blocks.
	Literal string

	// Headline properties.
	Level           int
	Title           string
	FootnoteSection bool // synthetic heading owned by the footnote renderer

	// Plain-list and item properties.
	ListKind ListKind
	Term     string // description-list item term

	// Link properties. Scheme and Path describe the parsed target;
	// RawTarget preserves the target as written in the source.
	Scheme    string
	Path      string
	RawTarget string

	// Footnote properties.
	Label            string
	InlineDefinition bool

	// Src-block language, informational only.
	Language string

	Children []*Node
}

// AppendChild adds c to n's children and returns n for chaining.
func (n *Node) AppendChild(c *Node) *Node {
	n.Children = append(n.Children, c)
	return n
}

// Text returns a plain-text leaf node.
func Text(s string) *Node {
	return &Node{Kind: KindPlainText, Literal: s}
}
