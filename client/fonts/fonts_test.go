package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestFaces(t *testing.T) {
	require.NotNil(t, DebugFace)
	require.NotNil(t, LoadingFace)

	assert.Greater(t, LineHeight(DebugFace), 0)
	assert.Greater(t, LineHeight(LoadingFace), LineHeight(DebugFace))
}

func TestBottomLineY(t *testing.T) {
	y := BottomLineY(DebugFace, 600, 8)
	assert.Less(t, y, 600-8)
	assert.Greater(t, y, 600-8-LineHeight(DebugFace))
}

func TestNewFace_invalidSource(t *testing.T) {
	_, err := newOpenTypeFace([]byte("not a font"), DebugSize)
	assert.Error(t, err)

	_, err = newTrueTypeFace([]byte("not a font"), LoadingSize)
	assert.Error(t, err)

	face, err := newTrueTypeFace(goregular.TTF, 20)
	require.NoError(t, err)
	assert.Less(t, LineHeight(face), LineHeight(LoadingFace))
}
