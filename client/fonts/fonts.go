package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

func init() {
	if err := loadFaces(); err != nil {
		panic(fmt.Sprintf("Failed to load fonts: %v", err))
	}
}

var (
	// DebugFace is used for the debug status line.
	DebugFace font.Face

	// LoadingFace is used for the loading overlay message.
	LoadingFace font.Face
)

const (
	dpi = 72

	DebugSize   = 14
	LoadingSize = 36
)

func loadFaces() error {
	var err error
	if DebugFace, err = newOpenTypeFace(fonts.MPlus1pRegular_ttf, DebugSize); err != nil {
		return fmt.Errorf("failed to load debug face: %v", err)
	}
	if LoadingFace, err = newTrueTypeFace(goregular.TTF, LoadingSize); err != nil {
		return fmt.Errorf("failed to load loading face: %v", err)
	}
	return nil
}

func newOpenTypeFace(src []byte, size float64) (font.Face, error) {
	tt, err := opentype.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %v", err)
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingVertical,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %v", err)
	}
	return face, nil
}

func newTrueTypeFace(src []byte, size float64) (font.Face, error) {
	tt, err := truetype.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %v", err)
	}
	return truetype.NewFace(tt, &truetype.Options{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	}), nil
}

// LineHeight returns the height in pixels of one line set in face.
func LineHeight(face font.Face) int {
	return face.Metrics().Height.Ceil()
}

// BottomLineY returns the baseline y for a single line of face text that sits
// margin pixels above the bottom of a screen of the given height.
func BottomLineY(face font.Face, screenHeight, margin int) int {
	return screenHeight - margin - face.Metrics().Descent.Ceil()
}
