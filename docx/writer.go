package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

const contentTypesXML = xmlHeader +
	`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Default Extension="png" ContentType="image/png"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`</Types>`

const rootRelsXML = xmlHeader +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`</Relationships>`

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// Write emits the document as a .docx zip container to w. Part order is
// fixed, so identical content produces an identical archive layout.
func (d *Document) Write(w io.Writer) error {
	zw := zip.NewWriter(w)

	parts := []struct {
		name string
		data []byte
	}{
		{"[Content_Types].xml", []byte(contentTypesXML)},
		{"_rels/.rels", []byte(rootRelsXML)},
		{"word/document.xml", d.documentXML()},
		{"word/_rels/document.xml.rels", d.documentRelsXML()},
	}
	for i, img := range d.media {
		parts = append(parts, struct {
			name string
			data []byte
		}{fmt.Sprintf("word/media/image%d.png", i+1), img})
	}

	for _, p := range parts {
		f, err := zw.Create(p.name)
		if err != nil {
			zw.Close()
			return fmt.Errorf("create zip entry %s: %w", p.name, err)
		}
		if _, err := f.Write(p.data); err != nil {
			zw.Close()
			return fmt.Errorf("write zip entry %s: %w", p.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalize zip: %w", err)
	}
	return nil
}

// Save writes the document to a file at path.
func (d *Document) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := d.Write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// documentXML renders word/document.xml: all body blocks in order,
// followed by the section properties carrying page size and margins.
func (d *Document) documentXML() []byte {
	var buf bytes.Buffer
	buf.WriteString(xmlHeader)
	fmt.Fprintf(&buf,
		`<w:document xmlns:w=%q xmlns:r=%q xmlns:wp=%q xmlns:a=%q xmlns:pic=%q><w:body>`,
		nsW, nsR, nsWP, nsA, nsPic)

	for _, b := range d.blocks {
		b.writeXML(&buf)
	}

	margin := inchesToTwips(d.marginInches)
	fmt.Fprintf(&buf,
		`<w:sectPr><w:pgSz w:w="%d" w:h="%d"/>`+
			`<w:pgMar w:top="%d" w:right="%d" w:bottom="%d" w:left="%d" w:header="720" w:footer="720" w:gutter="0"/>`+
			`</w:sectPr>`,
		mmToTwips(d.pageWidthMM), mmToTwips(d.pageHeightMM),
		margin, margin, margin, margin)

	buf.WriteString(`</w:body></w:document>`)
	return buf.Bytes()
}

// documentRelsXML renders word/_rels/document.xml.rels with one image
// relationship per media part. rId numbering matches the media index.
func (d *Document) documentRelsXML() []byte {
	var buf bytes.Buffer
	buf.WriteString(xmlHeader)
	buf.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	for i := range d.media {
		fmt.Fprintf(&buf,
			`<Relationship Id="rId%d" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/image" Target="media/image%d.png"/>`,
			i+1, i+1)
	}
	buf.WriteString(`</Relationships>`)
	return buf.Bytes()
}

func (p *paragraph) writeXML(buf *bytes.Buffer) {
	buf.WriteString(`<w:p>`)
	if p.centered {
		buf.WriteString(`<w:pPr><w:jc w:val="center"/></w:pPr>`)
	}
	for _, r := range p.runs {
		r.writeXML(buf)
	}
	buf.WriteString(`</w:p>`)
}

func (r run) writeXML(buf *bytes.Buffer) {
	if r.image >= 0 {
		r.writeDrawingXML(buf)
		return
	}
	buf.WriteString(`<w:r>`)
	if r.sizePt > 0 {
		hp := halfPoints(r.sizePt)
		fmt.Fprintf(buf, `<w:rPr><w:sz w:val="%d"/><w:szCs w:val="%d"/></w:rPr>`, hp, hp)
	}
	fmt.Fprintf(buf, `<w:t xml:space="preserve">%s</w:t>`, textEscaper.Replace(r.text))
	buf.WriteString(`</w:r>`)
}

// writeDrawingXML emits an inline picture run referencing the media
// part through its relationship id.
func (r run) writeDrawingXML(buf *bytes.Buffer) {
	id := r.image + 1
	fmt.Fprintf(buf,
		`<w:r><w:drawing><wp:inline distT="0" distB="0" distL="0" distR="0">`+
			`<wp:extent cx="%d" cy="%d"/>`+
			`<wp:docPr id="%d" name="image%d"/>`+
			`<a:graphic><a:graphicData uri="http://schemas.openxmlformats.org/drawingml/2006/picture">`+
			`<pic:pic>`+
			`<pic:nvPicPr><pic:cNvPr id="%d" name="image%d.png"/><pic:cNvPicPr/></pic:nvPicPr>`+
			`<pic:blipFill><a:blip r:embed="rId%d"/><a:stretch><a:fillRect/></a:stretch></pic:blipFill>`+
			`<pic:spPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="%d" cy="%d"/></a:xfrm>`+
			`<a:prstGeom prst="rect"><a:avLst/></a:prstGeom></pic:spPr>`+
			`</pic:pic></a:graphicData></a:graphic>`+
			`</wp:inline></w:drawing></w:r>`,
		r.widthEMU, r.heightEMU,
		id, id,
		id, id,
		id,
		r.widthEMU, r.heightEMU)
}
