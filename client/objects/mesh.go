package objects

import (
	"github.com/cbodonnell/cubespin/client/render"
	"github.com/hajimehoshi/ebiten/v2"
)

// MeshObject draws a model as seen by a camera under a single point light.
// It holds pointers to records owned by the scene and never mutates them.
type MeshObject struct {
	*BaseObject

	model  *render.Model
	camera *render.Camera
	light  *render.Light
}

var _ GameObject = &MeshObject{}

type NewMeshObjectOptions struct {
	Model  *render.Model
	Camera *render.Camera
	Light  *render.Light
	// ZIndex is the z-index of the mesh object.
	ZIndex int
}

func NewMeshObject(id string, opts NewMeshObjectOptions) *MeshObject {
	return &MeshObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{
			ZIndex: opts.ZIndex,
		}),
		model:  opts.Model,
		camera: opts.Camera,
		light:  opts.Light,
	}
}

func (o *MeshObject) Draw(screen *ebiten.Image) {
	if o.model == nil || o.camera == nil || o.light == nil {
		return
	}
	b := screen.Bounds()
	render.Draw(screen, render.Project(*o.camera, *o.light, *o.model, b.Dx(), b.Dy()))
}
