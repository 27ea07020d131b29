// Package docx writes minimal WordprocessingML (.docx) documents: body
// paragraphs, fixed-layout tables, and embedded PNG images. It covers
// only what the QR sheet generator needs; documents are assembled in
// memory and written once.
package docx

import (
	"bytes"
	"fmt"
	"image/png"
)

// XML namespaces used in DOCX files
const (
	nsW   = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsR   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsWP  = "http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing"
	nsA   = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsPic = "http://schemas.openxmlformats.org/drawingml/2006/picture"
)

// Unit conversions. Page geometry uses twentieths of a point (twips),
// drawing extents use English Metric Units, font sizes use half-points.
const (
	twipsPerInch = 1440
	mmPerInch    = 25.4
	emuPerMM     = 36000
)

func mmToTwips(mm float64) int {
	return int(mm*twipsPerInch/mmPerInch + 0.5)
}

func inchesToTwips(in float64) int {
	return int(in*twipsPerInch + 0.5)
}

func mmToEMU(mm float64) int64 {
	return int64(mm * emuPerMM)
}

func halfPoints(pt float64) int {
	return int(pt*2 + 0.5)
}

// Document is an in-memory .docx under construction. The zero value is
// not usable; call New.
type Document struct {
	pageWidthMM  float64
	pageHeightMM float64
	marginInches float64

	blocks []block  // body content in document order
	media  [][]byte // PNG parts; index i becomes word/media/image{i+1}.png
}

// block is a body-level element (paragraph or table).
type block interface {
	writeXML(buf *bytes.Buffer)
}

// run is a fragment of paragraph content: either text or an embedded
// image (image >= 0 indexes Document.media).
type run struct {
	text      string
	sizePt    float64
	image     int
	widthEMU  int64
	heightEMU int64
}

// paragraph holds a sequence of runs. Cell paragraphs are centered.
type paragraph struct {
	runs     []run
	centered bool
}

// New returns an empty A4 document with 0.5 inch margins on all sides.
func New() *Document {
	return &Document{
		pageWidthMM:  210,
		pageHeightMM: 297,
		marginInches: 0.5,
	}
}

// AddParagraph appends a plain body paragraph. An empty string produces
// an empty paragraph (a blank line).
func (d *Document) AddParagraph(text string) {
	p := &paragraph{}
	if text != "" {
		p.runs = append(p.runs, run{text: text, image: -1})
	}
	d.blocks = append(d.blocks, p)
}

// addImage registers PNG data as a media part and returns its index.
// The data must be a decodable PNG so the drawing extent can preserve
// the aspect ratio.
func (d *Document) addImage(data []byte) (int, int, int, error) {
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, 0, fmt.Errorf("decode png: %w", err)
	}
	d.media = append(d.media, data)
	return len(d.media) - 1, cfg.Width, cfg.Height, nil
}
