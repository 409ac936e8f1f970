package parser

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bbforge/bbforge/internal/doctree"
	"github.com/fumiama/go-docx"
)

// DOCXParser handles .docx files. Heading-styled paragraphs become
// headlines; everything else is extracted as plain paragraphs.
type DOCXParser struct{}

func (p *DOCXParser) Parse(r io.Reader, filename string) (*doctree.Node, error) {
	// go-docx needs a ReadSeeker+size, so write to a temp file.
	tmp, err := os.CreateTemp("", "bbforge-docx-*.docx")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	size, err := io.Copy(tmp, r)
	if err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("seek temp file: %w", err)
	}

	doc, err := docx.Parse(tmp, int64(size))
	tmp.Close()
	if err != nil {
		return nil, fmt.Errorf("parse docx: %w", err)
	}

	root := &doctree.Node{Kind: doctree.KindDocument}
	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}

		text := docxParagraphText(para)
		if text == "" {
			continue
		}
		if level := docxHeadingLevel(para); level > 0 {
			root.AppendChild(&doctree.Node{
				Kind:  doctree.KindHeadline,
				Level: level,
				Title: text,
			})
			continue
		}
		n := &doctree.Node{Kind: doctree.KindParagraph}
		n.AppendChild(doctree.Text(text))
		root.AppendChild(n)
	}
	return root, nil
}

func docxHeadingLevel(para *docx.Paragraph) int {
	if para.Properties == nil || para.Properties.Style == nil {
		return 0
	}
	style := para.Properties.Style.Val
	if style == "" {
		return 0
	}
	for level, names := range [...][2]string{
		1: {"Heading1", "heading 1"},
		2: {"Heading2", "heading 2"},
		3: {"Heading3", "heading 3"},
		4: {"Heading4", "heading 4"},
		5: {"Heading5", "heading 5"},
		6: {"Heading6", "heading 6"},
	} {
		if strings.EqualFold(style, names[0]) || strings.EqualFold(style, names[1]) {
			return level
		}
	}
	return 0
}

func docxParagraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
