package sheet

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Szelwin/qrGenerator/docx"
	"github.com/Szelwin/qrGenerator/qr"
)

// ErrEmptyRange is returned when end_exclusive <= start. The generator
// refuses to produce an empty document rather than silently writing one.
var ErrEmptyRange = errors.New("empty range: end must be greater than start")

// Layout controls how chunks are arranged on the page.
type Layout struct {
	Columns     int     // cells per table row
	ChunkSize   int     // integers per table
	QRWidthMM   float64 // physical width of one embedded QR image
	LabelSizePt float64 // font size of the range label
}

// DefaultLayout returns the standard sheet layout: 17 columns, 100 codes
// per table, 9mm codes, 8pt labels.
func DefaultLayout() Layout {
	return Layout{
		Columns:     17,
		ChunkSize:   100,
		QRWidthMM:   9.0,
		LabelSizePt: 8.0,
	}
}

// AppendBlock appends one chunk to doc: a table with a QR image per
// integer at its linear offset, the range label, and two spacer
// paragraphs. The label goes in the cell to the right of the last code
// when that cell exists; otherwise it shares the last code's cell.
func AppendBlock(doc *docx.Document, c Chunk, layout Layout) error {
	total := c.Count()
	rows := (total + layout.Columns - 1) / layout.Columns

	table := doc.AddTable(rows, layout.Columns, layout.QRWidthMM)
	for i := 0; i < total; i++ {
		n := c.First + i
		png, err := qr.PNG(n)
		if err != nil {
			return fmt.Errorf("render qr code for %d: %w", n, err)
		}
		cell := table.Cell(i/layout.Columns, i%layout.Columns)
		if err := cell.AddImage(png, layout.QRWidthMM); err != nil {
			return fmt.Errorf("embed qr code for %d: %w", n, err)
		}
	}

	lastRow := (total - 1) / layout.Columns
	lastCol := (total - 1) % layout.Columns
	if lastCol < layout.Columns-1 {
		table.Cell(lastRow, lastCol+1).AddText(c.Label(), layout.LabelSizePt)
	} else {
		// No room to the right; the label shares the last code's cell.
		table.Cell(lastRow, lastCol).AddText(" "+c.Label(), layout.LabelSizePt)
	}

	doc.AddParagraph("")
	doc.AddParagraph("")
	return nil
}

// Generate builds a document covering the half-open range [start, end)
// and writes it to w. Chunks appear in ascending order, one table each.
func Generate(start, end int, w io.Writer, layout Layout) error {
	if end <= start {
		return ErrEmptyRange
	}

	doc := docx.New()
	for _, c := range Chunks(start, end, layout.ChunkSize) {
		if err := AppendBlock(doc, c, layout); err != nil {
			return err
		}
	}

	if err := doc.Write(w); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}

// GenerateFile is Generate persisted to a file at path.
func GenerateFile(start, end int, path string, layout Layout) error {
	if end <= start {
		return ErrEmptyRange
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Generate(start, end, f, layout); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
