package parser

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/bbforge/bbforge/internal/doctree"
)

// CSVParser handles CSV files. The whole file becomes a single table node,
// header row included.
type CSVParser struct{}

func (p *CSVParser) Parse(r io.Reader, filename string) (*doctree.Node, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	root := &doctree.Node{Kind: doctree.KindDocument}
	if len(records) == 0 {
		return root, nil
	}

	tbl := &doctree.Node{Kind: doctree.KindTable}
	for _, record := range records {
		row := &doctree.Node{Kind: doctree.KindTableRow}
		for _, field := range record {
			cell := &doctree.Node{Kind: doctree.KindTableCell}
			cell.AppendChild(doctree.Text(field))
			row.AppendChild(cell)
		}
		tbl.AppendChild(row)
	}
	root.AppendChild(tbl)
	return root, nil
}
