package docx

import (
	"bytes"
	"fmt"
)

// Table is a fixed-layout table appended to a document. Every column
// has the same explicit width so Word does not autofit the grid.
type Table struct {
	doc        *Document
	columns    int
	colWidthMM float64
	cells      [][]*Cell
}

// Cell is a single table cell holding one centered paragraph.
type Cell struct {
	doc  *Document
	para paragraph
}

// AddTable appends a rows x cols table with the given column width and
// returns it. All cells are created up front and start empty.
func (d *Document) AddTable(rows, cols int, colWidthMM float64) *Table {
	t := &Table{
		doc:        d,
		columns:    cols,
		colWidthMM: colWidthMM,
		cells:      make([][]*Cell, rows),
	}
	for r := 0; r < rows; r++ {
		t.cells[r] = make([]*Cell, cols)
		for c := 0; c < cols; c++ {
			t.cells[r][c] = &Cell{doc: d, para: paragraph{centered: true}}
		}
	}
	d.blocks = append(d.blocks, t)
	return t
}

// Rows returns the number of rows in the table.
func (t *Table) Rows() int {
	return len(t.cells)
}

// Columns returns the number of columns in the table.
func (t *Table) Columns() int {
	return t.columns
}

// Cell returns the cell at (row, col). Indices outside the table panic,
// matching slice semantics.
func (t *Table) Cell(row, col int) *Cell {
	return t.cells[row][col]
}

// AddImage embeds PNG data into the cell at the given physical width.
// Height is scaled to preserve the image's aspect ratio. Returns an
// error if the data is not a valid PNG.
func (c *Cell) AddImage(data []byte, widthMM float64) error {
	idx, pxW, pxH, err := c.doc.addImage(data)
	if err != nil {
		return err
	}
	w := mmToEMU(widthMM)
	h := int64(float64(w) * float64(pxH) / float64(pxW))
	c.para.runs = append(c.para.runs, run{
		image:     idx,
		widthEMU:  w,
		heightEMU: h,
	})
	return nil
}

// AddText appends a text run at the given font size. A sizePt of 0
// leaves the document default in effect.
func (c *Cell) AddText(text string, sizePt float64) {
	c.para.runs = append(c.para.runs, run{text: text, sizePt: sizePt, image: -1})
}

func (t *Table) writeXML(buf *bytes.Buffer) {
	colWidth := mmToTwips(t.colWidthMM)

	buf.WriteString(`<w:tbl><w:tblPr><w:tblLayout w:type="fixed"/></w:tblPr><w:tblGrid>`)
	for c := 0; c < t.columns; c++ {
		fmt.Fprintf(buf, `<w:gridCol w:w="%d"/>`, colWidth)
	}
	buf.WriteString(`</w:tblGrid>`)

	for _, row := range t.cells {
		buf.WriteString(`<w:tr>`)
		for _, cell := range row {
			fmt.Fprintf(buf, `<w:tc><w:tcPr><w:tcW w:w="%d" w:type="dxa"/></w:tcPr>`, colWidth)
			cell.para.writeXML(buf)
			buf.WriteString(`</w:tc>`)
		}
		buf.WriteString(`</w:tr>`)
	}
	buf.WriteString(`</w:tbl>`)
}
