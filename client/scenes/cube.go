package scenes

import (
	"errors"
	"fmt"

	"github.com/cbodonnell/cubespin/client/objects"
	"github.com/cbodonnell/cubespin/client/render"
	"github.com/cbodonnell/cubespin/pkg/log"
	"github.com/cbodonnell/cubespin/pkg/transform"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

var logger = log.Named("scenes")

var ErrAlreadyBootstrapped = errors.New("scene already bootstrapped")

var (
	// CameraPosition is where the camera sits, looking at the origin.
	CameraPosition = mgl64.Vec3{-2, 2.5, 5}
	// LightPosition is where the point light sits.
	LightPosition = mgl64.Vec3{4, 8, 4}
	// CubeColor is the sRGB base color of the cube.
	CubeColor = [3]float64{0.8, 0.7, 0.6}
)

const (
	CameraFovYDegrees = 45.0
	CameraNear        = 0.1
	CameraFar         = 100.0
	LightIntensity    = 500_000.0
	LightRange        = 20.0
	CubeSize          = 1.0
)

type CameraRecord struct {
	ID string
	render.Camera
}

type CubeRecord struct {
	ID string
	render.Model
}

type LightRecord struct {
	ID string
	render.Light
}

// CubeScene owns the camera, cube and light records directly. The records are
// nil until Init bootstraps them.
type CubeScene struct {
	*BaseScene

	Camera *CameraRecord
	Cube   *CubeRecord
	Light  *LightRecord

	// Overlay is the in-canvas loading overlay.
	Overlay *objects.LoadingOverlay
}

var _ Scene = &CubeScene{}

func NewCubeScene() *CubeScene {
	return &CubeScene{
		BaseScene: NewBaseScene(objects.NewSortedZIndexObject("cube-scene-root")),
		Overlay:   objects.NewLoadingOverlay("overlay-loading"),
	}
}

// Init bootstraps the scene records and its object tree. It may run only once.
func (s *CubeScene) Init() error {
	if s.Cube != nil {
		return ErrAlreadyBootstrapped
	}

	if err := s.BaseScene.Init(); err != nil {
		return fmt.Errorf("failed to initialize base scene: %v", err)
	}

	root := s.GetRoot()
	if err := root.AddChild(s.Overlay.GetID(), s.Overlay); err != nil {
		return fmt.Errorf("failed to add loading overlay: %v", err)
	}

	s.Camera = newCamera()
	s.Light = newLight()
	cube := newCube()

	meshObject := objects.NewMeshObject(cube.ID, objects.NewMeshObjectOptions{
		Model:  &cube.Model,
		Camera: &s.Camera.Camera,
		Light:  &s.Light.Light,
	})
	if err := root.AddChild(meshObject.GetID(), meshObject); err != nil {
		return fmt.Errorf("failed to add cube: %v", err)
	}
	s.Cube = cube

	logger.Info("Scene bootstrapped: camera %s, cube %s, light %s", s.Camera.ID, s.Cube.ID, s.Light.ID)
	return nil
}

// HasCube reports whether the cube record exists.
func (s *CubeScene) HasCube() bool {
	return s.Cube != nil
}

// RotateCube turns the cube about the vertical axis by angle radians.
func (s *CubeScene) RotateCube(angle float64) {
	if s.Cube == nil {
		return
	}
	s.Cube.Transform.RotateY(angle)
}

func newCamera() *CameraRecord {
	t := transform.New()
	t.Position = CameraPosition
	return &CameraRecord{
		ID: uuid.New().String(),
		Camera: render.Camera{
			Transform: t,
			Target:    transform.Origin,
			Up:        transform.Up,
			FovY:      mgl64.DegToRad(CameraFovYDegrees),
			Near:      CameraNear,
			Far:       CameraFar,
		},
	}
}

func newCube() *CubeRecord {
	return &CubeRecord{
		ID: uuid.New().String(),
		Model: render.Model{
			Transform: transform.New(),
			Mesh:      render.NewCube(CubeSize),
			Material: render.Material{
				BaseColor: CubeColor,
				Metallic:  0,
			},
		},
	}
}

func newLight() *LightRecord {
	t := transform.New()
	t.Position = LightPosition
	return &LightRecord{
		ID: uuid.New().String(),
		Light: render.Light{
			Transform: t,
			PointLight: render.PointLight{
				Intensity:      LightIntensity,
				Range:          LightRange,
				ShadowsEnabled: true,
			},
		},
	}
}
