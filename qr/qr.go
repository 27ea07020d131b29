// Package qr renders individual integers as QR code PNG images with
// fixed module geometry, ready for embedding into a document cell.
package qr

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strconv"

	"github.com/skip2/go-qrcode"
)

const (
	// BoxSize is the rendered width of one QR module, in pixels.
	BoxSize = 5
	// BorderModules is the width of the white quiet zone around the
	// symbol, in modules.
	BorderModules = 2
)

// PNG encodes the decimal string of n as a QR code and returns the PNG
// bytes. The symbol uses low error correction and is rendered at BoxSize
// pixels per module with a BorderModules-wide quiet zone.
func PNG(n int) ([]byte, error) {
	return Encode(strconv.Itoa(n))
}

// Encode renders arbitrary text with the same fixed geometry as PNG.
func Encode(text string) ([]byte, error) {
	q, err := qrcode.New(text, qrcode.Low)
	if err != nil {
		return nil, fmt.Errorf("create qr code: %w", err)
	}

	// The library's built-in quiet zone is wider than ours, so render
	// the bare symbol and pad it below.
	q.DisableBorder = true
	symbol := q.Image(-BoxSize)

	border := BorderModules * BoxSize
	sb := symbol.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, sb.Dx()+2*border, sb.Dy()+2*border))
	draw.Draw(out, out.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(out, sb.Add(image.Pt(border-sb.Min.X, border-sb.Min.Y)), symbol, sb.Min, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
