package docx

import (
	"archive/zip"
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"path/filepath"
	"strings"
	"testing"
)

// tinyPNG returns a minimal valid PNG for embedding tests.
func tinyPNG(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	img.Set(1, 1, color.Black)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test png: %v", err)
	}
	return buf.Bytes()
}

func documentXML(t *testing.T, d *Document) string {
	t.Helper()

	var buf bytes.Buffer
	if err := d.Write(&buf); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("output is not a valid zip: %v", err)
	}
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				t.Fatalf("open document.xml: %v", err)
			}
			defer rc.Close()
			data, err := io.ReadAll(rc)
			if err != nil {
				t.Fatalf("read document.xml: %v", err)
			}
			return string(data)
		}
	}
	t.Fatal("container has no word/document.xml")
	return ""
}

func TestWrite_ContainerParts(t *testing.T) {
	d := New()
	tbl := d.AddTable(1, 2, 9.0)
	if err := tbl.Cell(0, 0).AddImage(tinyPNG(t), 9.0); err != nil {
		t.Fatalf("AddImage failed: %v", err)
	}
	tbl.Cell(0, 1).AddText("0-0", 8)
	d.AddParagraph("")

	var buf bytes.Buffer
	if err := d.Write(&buf); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("output is not a valid zip: %v", err)
	}
	got := make(map[string]bool)
	for _, f := range zr.File {
		got[f.Name] = true
	}
	for _, want := range []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"word/document.xml",
		"word/_rels/document.xml.rels",
		"word/media/image1.png",
	} {
		if !got[want] {
			t.Errorf("missing container part %s", want)
		}
	}
}

func TestSave(t *testing.T) {
	d := New()
	d.AddParagraph("hello")

	path := filepath.Join(t.TempDir(), "doc.docx")
	if err := d.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("saved file is not a valid zip: %v", err)
	}
	zr.Close()
}

func TestSave_UnwritablePath(t *testing.T) {
	d := New()
	path := filepath.Join(t.TempDir(), "missing", "doc.docx")
	if err := d.Save(path); err == nil {
		t.Fatal("expected an error for an unwritable path")
	}
}

func TestDocumentXML_PageGeometry(t *testing.T) {
	xml := documentXML(t, New())

	// A4 in twips, 0.5in margins.
	if !strings.Contains(xml, `<w:pgSz w:w="11906" w:h="16838"/>`) {
		t.Error("page size is not A4")
	}
	if !strings.Contains(xml, `<w:pgMar w:top="720" w:right="720" w:bottom="720" w:left="720"`) {
		t.Error("margins are not 0.5 inch")
	}
}

func TestDocumentXML_TableStructure(t *testing.T) {
	d := New()
	tbl := d.AddTable(2, 3, 9.0)
	tbl.Cell(1, 2).AddText("x", 8)
	if tbl.Rows() != 2 || tbl.Columns() != 3 {
		t.Errorf("table reports %dx%d, want 2x3", tbl.Rows(), tbl.Columns())
	}
	xml := documentXML(t, d)

	// 9mm is 510 twips.
	if got := strings.Count(xml, `<w:gridCol w:w="510"/>`); got != 3 {
		t.Errorf("grid has %d columns, want 3", got)
	}
	if got := strings.Count(xml, `<w:tr>`); got != 2 {
		t.Errorf("table has %d rows, want 2", got)
	}
	if got := strings.Count(xml, `<w:tcW w:w="510" w:type="dxa"/>`); got != 6 {
		t.Errorf("table has %d fixed-width cells, want 6", got)
	}
	if !strings.Contains(xml, `<w:tblLayout w:type="fixed"/>`) {
		t.Error("table layout is not fixed")
	}
	// Cell paragraphs are centered; 8pt is 16 half-points.
	if !strings.Contains(xml, `<w:jc w:val="center"/>`) {
		t.Error("cell paragraph is not centered")
	}
	if !strings.Contains(xml, `<w:sz w:val="16"/>`) {
		t.Error("text run does not carry the 8pt size")
	}
}

func TestDocumentXML_ImageRun(t *testing.T) {
	d := New()
	tbl := d.AddTable(1, 1, 9.0)
	if err := tbl.Cell(0, 0).AddImage(tinyPNG(t), 9.0); err != nil {
		t.Fatalf("AddImage failed: %v", err)
	}
	xml := documentXML(t, d)

	// 9mm is 324000 EMU; the test image is square.
	if !strings.Contains(xml, `<wp:extent cx="324000" cy="324000"/>`) {
		t.Error("drawing extent is not 9mm square")
	}
	if !strings.Contains(xml, `<a:blip r:embed="rId1"/>`) {
		t.Error("drawing does not reference rId1")
	}
}

func TestDocumentRels_OnePerImage(t *testing.T) {
	d := New()
	tbl := d.AddTable(1, 3, 9.0)
	for c := 0; c < 3; c++ {
		if err := tbl.Cell(0, c).AddImage(tinyPNG(t), 9.0); err != nil {
			t.Fatalf("AddImage failed: %v", err)
		}
	}

	var buf bytes.Buffer
	if err := d.Write(&buf); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("output is not a valid zip: %v", err)
	}

	var rels string
	media := 0
	for _, f := range zr.File {
		if f.Name == "word/_rels/document.xml.rels" {
			rc, _ := f.Open()
			data, _ := io.ReadAll(rc)
			rc.Close()
			rels = string(data)
		}
		if strings.HasPrefix(f.Name, "word/media/") {
			media++
		}
	}
	if media != 3 {
		t.Errorf("container has %d media parts, want 3", media)
	}
	for _, id := range []string{`Id="rId1"`, `Id="rId2"`, `Id="rId3"`} {
		if !strings.Contains(rels, id) {
			t.Errorf("relationships are missing %s", id)
		}
	}
}

func TestAddImage_InvalidData(t *testing.T) {
	d := New()
	tbl := d.AddTable(1, 1, 9.0)
	if err := tbl.Cell(0, 0).AddImage([]byte("not a png"), 9.0); err == nil {
		t.Fatal("expected an error for invalid image data")
	}
}

func TestParagraphEscaping(t *testing.T) {
	d := New()
	d.AddParagraph(`a<b&c>"d"`)
	xml := documentXML(t, d)

	if !strings.Contains(xml, `a&lt;b&amp;c&gt;&quot;d&quot;`) {
		t.Error("paragraph text is not XML-escaped")
	}
}

func TestEmptyCellsStillHaveParagraphs(t *testing.T) {
	d := New()
	d.AddTable(1, 4, 9.0)
	xml := documentXML(t, d)

	// Word requires a paragraph in every cell, populated or not.
	if got := strings.Count(xml, `<w:p>`); got < 4 {
		t.Errorf("document has %d paragraphs, want at least 4", got)
	}
}
