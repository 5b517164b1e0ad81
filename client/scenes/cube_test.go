package scenes

import (
	"testing"

	"github.com/cbodonnell/cubespin/client/objects"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCubeScene_Init(t *testing.T) {
	s := NewCubeScene()
	assert.False(t, s.HasCube())

	require.NoError(t, s.Init())
	require.True(t, s.HasCube())

	assert.Equal(t, CameraPosition, s.Camera.Transform.Position)
	assert.Equal(t, mgl64.Vec3{0, 0, 0}, s.Camera.Target)
	assert.Equal(t, LightPosition, s.Light.Transform.Position)
	assert.Equal(t, LightIntensity, s.Light.Intensity)
	assert.True(t, s.Light.ShadowsEnabled)
	assert.Equal(t, CubeColor, s.Cube.Material.BaseColor)
	assert.Zero(t, s.Cube.Material.Metallic)
	assert.Len(t, s.Cube.Mesh.Triangles, 12)

	ids := map[string]bool{s.Camera.ID: true, s.Cube.ID: true, s.Light.ID: true}
	assert.Len(t, ids, 3)
}

func TestCubeScene_InitTwice(t *testing.T) {
	s := NewCubeScene()
	require.NoError(t, s.Init())
	cube := s.Cube

	assert.ErrorIs(t, s.Init(), ErrAlreadyBootstrapped)
	assert.Same(t, cube, s.Cube)
}

func TestCubeScene_tree(t *testing.T) {
	s := NewCubeScene()
	require.NoError(t, s.Init())

	children := s.GetRoot().GetChildren()
	require.Len(t, children, 2)

	_, isMesh := children[0].(*objects.MeshObject)
	assert.True(t, isMesh, "cube draws below the overlay")
	assert.Equal(t, s.Cube.ID, children[0].GetID())
	assert.Same(t, s.Overlay, children[1])
}

func TestCubeScene_RotateCube(t *testing.T) {
	s := NewCubeScene()
	s.RotateCube(1.0) // no cube yet, no-op

	require.NoError(t, s.Init())
	cameraBefore := s.Camera.Transform
	lightBefore := s.Light.Transform

	s.RotateCube(0.25)
	s.RotateCube(0.5)

	assert.InDelta(t, 0.75, s.Cube.Transform.Yaw(), 1e-9)
	assert.Equal(t, cameraBefore, s.Camera.Transform)
	assert.Equal(t, lightBefore, s.Light.Transform)
}
