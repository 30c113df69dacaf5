// Package qr renders QR codes as PNG data URLs.
package qr

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/skip2/go-qrcode"
)

const dataURLPrefix = "data:image/png;base64,"

// Renderer produces square PNG images of a fixed pixel width with a quiet zone
// of Margin modules on every side.
type Renderer struct {
	width  int
	margin int
	level  qrcode.RecoveryLevel
}

func NewRenderer(width, margin int) (*Renderer, error) {
	if width <= 0 {
		return nil, fmt.Errorf("qr width must be positive")
	}
	if margin < 0 {
		return nil, fmt.Errorf("qr margin must not be negative")
	}
	return &Renderer{width: width, margin: margin, level: qrcode.Medium}, nil
}

// PNG encodes content into a PNG image.
func (r *Renderer) PNG(content string) ([]byte, error) {
	code, err := qrcode.New(content, r.level)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	code.DisableBorder = true
	bitmap := code.Bitmap()

	modules := len(bitmap) + 2*r.margin
	scale := r.width / modules
	if scale < 1 {
		return nil, fmt.Errorf("qr width %d too small for %d modules", r.width, modules)
	}
	offset := (r.width-scale*modules)/2 + r.margin*scale

	img := image.NewPaletted(image.Rect(0, 0, r.width, r.width), color.Palette{color.White, color.Black})
	for y, row := range bitmap {
		for x, dark := range row {
			if !dark {
				continue
			}
			x0, y0 := offset+x*scale, offset+y*scale
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					img.SetColorIndex(x0+dx, y0+dy, 1)
				}
			}
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// DataURL encodes content and wraps the PNG in a base64 data URL.
func (r *Renderer) DataURL(content string) (string, error) {
	raw, err := r.PNG(content)
	if err != nil {
		return "", err
	}
	return dataURLPrefix + base64.StdEncoding.EncodeToString(raw), nil
}
