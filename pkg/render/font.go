// pkg/render/font.go
package render

import (
	"bytes"
	"log"

	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var fontSource *text.GoTextFaceSource

// FontSource returns the shared Go Regular face source. The font is
// compiled in, so a parse failure is a build defect, not a runtime one.
func FontSource() *text.GoTextFaceSource {
	if fontSource == nil {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			log.Fatal(err)
		}
		fontSource = src
	}
	return fontSource
}

// NewFontFace builds a Go Regular face at the given point size.
func NewFontFace(size float64) *text.GoTextFace {
	return &text.GoTextFace{
		Source: FontSource(),
		Size:   size,
	}
}
