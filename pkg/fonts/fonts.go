// Package fonts provides the embedded fonts used for text layout and drawing.
//
// The Go font family ships with golang.org/x/image, so charts measure text
// with the exact metrics of the face they embed in SVG output and draw into
// PNG cards. No system font lookup is needed.
package fonts

import (
	"encoding/base64"
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// FontFamily is the CSS font-family name under which the embedded faces are
// declared in SVG output.
const FontFamily = "Go"

// FallbackFontFamily lists fonts used when the embedded face is not declared.
const FallbackFontFamily = `'Go', 'Arial', 'Helvetica', sans-serif`

// RegularTTF returns the regular face as TrueType data.
func RegularTTF() []byte { return goregular.TTF }

// BoldTTF returns the bold face as TrueType data.
func BoldTTF() []byte { return gobold.TTF }

var (
	parseOnce sync.Once
	regular   *truetype.Font
	bold      *truetype.Font
	parseErr  error
)

func parsed() (reg, b *truetype.Font, err error) {
	parseOnce.Do(func() {
		regular, parseErr = truetype.Parse(goregular.TTF)
		if parseErr != nil {
			parseErr = fmt.Errorf("parse regular font: %w", parseErr)
			return
		}
		bold, parseErr = truetype.Parse(gobold.TTF)
		if parseErr != nil {
			parseErr = fmt.Errorf("parse bold font: %w", parseErr)
		}
	})
	return regular, bold, parseErr
}

// Face returns a font face of the given pixel size (72 DPI, so points equal
// pixels).
func Face(size float64, isBold bool) (font.Face, error) {
	reg, b, err := parsed()
	if err != nil {
		return nil, err
	}
	f := reg
	if isBold {
		f = b
	}
	return truetype.NewFace(f, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingNone}), nil
}

// Width returns the advance width of s in pixels at the given size.
// If the embedded fonts cannot be parsed it falls back to an average glyph
// width estimate so layout never fails.
func Width(s string, size float64, isBold bool) float64 {
	face, err := Face(size, isBold)
	if err != nil {
		return float64(len([]rune(s))) * size * 0.55
	}
	defer face.Close()
	return float64(font.MeasureString(face, s)) / 64
}

// Cache for base64-encoded fonts (computed once on first access).
var (
	regularBase64     string
	boldBase64        string
	regularBase64Once sync.Once
	boldBase64Once    sync.Once
)

// RegularBase64 returns the regular TTF as a base64 string.
func RegularBase64() string {
	regularBase64Once.Do(func() {
		regularBase64 = base64.StdEncoding.EncodeToString(goregular.TTF)
	})
	return regularBase64
}

// BoldBase64 returns the bold TTF as a base64 string.
func BoldBase64() string {
	boldBase64Once.Do(func() {
		boldBase64 = base64.StdEncoding.EncodeToString(gobold.TTF)
	})
	return boldBase64
}

// FontFaceCSS returns @font-face rules declaring the embedded faces under
// [FontFamily], for inclusion in an SVG <style> element.
func FontFaceCSS() string {
	return fmt.Sprintf(`@font-face { font-family: '%s'; font-weight: normal; src: url(data:font/ttf;base64,%s) format('truetype'); }
@font-face { font-family: '%s'; font-weight: bold; src: url(data:font/ttf;base64,%s) format('truetype'); }`,
		FontFamily, RegularBase64(), FontFamily, BoldBase64())
}
