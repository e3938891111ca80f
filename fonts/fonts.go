package fonts

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Regular FontName = "regular"
	Small   FontName = "small"
	Title   FontName = "title"
)

var sizes = map[FontName]float64{
	Regular: 16,
	Small:   12,
	Title:   28,
}

var (
	source *text.GoTextFaceSource
	faces  = map[FontName]*text.GoTextFace{}
)

func (f FontName) Get() text.Face {
	return getFont(f)
}

// Load parses the embedded Go Regular face. Call once before drawing text.
func Load() error {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("fonts: %w", err)
	}
	source = s
	for name, size := range sizes {
		faces[name] = &text.GoTextFace{Source: source, Size: size}
	}
	return nil
}

func getFont(name FontName) text.Face {
	f, ok := faces[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
