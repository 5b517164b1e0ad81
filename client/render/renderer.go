package render

import (
	"cmp"
	"image"
	"image/color"
	"math"
	"slices"

	"github.com/cbodonnell/cubespin/pkg/transform"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	// Ambient is the light every face receives regardless of orientation.
	Ambient = 0.08
	// Exposure maps illuminance in lux to a linear light amount.
	Exposure = 1.0 / 600.0
)

// Camera is a perspective camera looking from its position at Target.
type Camera struct {
	Transform transform.Transform
	Target    mgl64.Vec3
	Up        mgl64.Vec3
	// FovY is the vertical field of view in radians.
	FovY float64
	Near float64
	Far  float64
}

func (c Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Transform.Position, c.Target, c.Up)
}

func (c Camera) Projection(width, height int) mgl64.Mat4 {
	return mgl64.Perspective(c.FovY, float64(width)/float64(height), c.Near, c.Far)
}

// Light is a point light placed in the world.
type Light struct {
	Transform transform.Transform
	PointLight
}

// Model is a mesh placed in the world with a material.
type Model struct {
	Transform transform.Transform
	Mesh      *Mesh
	Material  Material
}

// Triangle is a projected, shaded triangle in screen pixels.
type Triangle struct {
	Points [3]mgl64.Vec2
	// Depth is the view space distance of the centroid, larger is farther.
	Depth float64
	Color color.RGBA
}

// Project returns the front facing triangles of model as seen by camera on a
// width x height viewport, sorted back to front.
func Project(camera Camera, light Light, model Model, width, height int) []Triangle {
	if width <= 0 || height <= 0 || model.Mesh == nil {
		return nil
	}

	view := camera.View()
	viewProj := camera.Projection(width, height).Mul4(view)
	modelMat := model.Transform.Matrix()
	eye := camera.Transform.Position

	world := make([]mgl64.Vec3, len(model.Mesh.Vertices))
	for i, v := range model.Mesh.Vertices {
		world[i] = modelMat.Mul4x1(v.Vec4(1)).Vec3()
	}

	triangles := make([]Triangle, 0, len(model.Mesh.Triangles))
	for i, t := range model.Mesh.Triangles {
		a, b, c := world[t[0]], world[t[1]], world[t[2]]
		centroid := a.Add(b).Add(c).Mul(1.0 / 3.0)
		normal := model.Transform.ApplyNormal(model.Mesh.Normal(i))

		// back face
		if normal.Dot(eye.Sub(centroid)) <= 0 {
			continue
		}

		var tri Triangle
		visible := true
		for j, p := range [3]mgl64.Vec3{a, b, c} {
			clip := viewProj.Mul4x1(p.Vec4(1))
			if clip.W() <= camera.Near {
				visible = false
				break
			}
			ndcX, ndcY := clip.X()/clip.W(), clip.Y()/clip.W()
			tri.Points[j] = mgl64.Vec2{
				(ndcX + 1) / 2 * float64(width),
				(1 - ndcY) / 2 * float64(height),
			}
		}
		if !visible {
			continue
		}

		tri.Depth = -view.Mul4x1(centroid.Vec4(1)).Z()
		tri.Color = model.Material.Shade(Illuminate(light, centroid, normal))
		triangles = append(triangles, tri)
	}

	slices.SortStableFunc(triangles, func(x, y Triangle) int {
		return cmp.Compare(y.Depth, x.Depth)
	})

	return triangles
}

// Illuminate returns the linear light amount reaching a surface point with the
// given unit normal: ambient plus Lambert diffuse with inverse square falloff.
func Illuminate(light Light, point, normal mgl64.Vec3) float64 {
	toLight := light.Transform.Position.Sub(point)
	d2 := toLight.Dot(toLight)
	if d2 == 0 {
		return Ambient
	}
	if light.Range > 0 && d2 > light.Range*light.Range {
		return Ambient
	}
	ndotl := math.Max(0, normal.Dot(toLight.Normalize()))
	lux := light.Intensity / (4 * math.Pi * d2)
	return Ambient + ndotl*lux*Exposure
}

var whiteSubImage *ebiten.Image

func white() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// Draw submits the triangles to screen in order in a single draw call.
func Draw(screen *ebiten.Image, triangles []Triangle) {
	if len(triangles) == 0 {
		return
	}

	vertices := make([]ebiten.Vertex, 0, len(triangles)*3)
	indices := make([]uint16, 0, len(triangles)*3)
	for _, t := range triangles {
		r := float32(t.Color.R) / 255
		g := float32(t.Color.G) / 255
		b := float32(t.Color.B) / 255
		for _, p := range t.Points {
			indices = append(indices, uint16(len(vertices)))
			vertices = append(vertices, ebiten.Vertex{
				DstX:   float32(p.X()),
				DstY:   float32(p.Y()),
				SrcX:   1,
				SrcY:   1,
				ColorR: r,
				ColorG: g,
				ColorB: b,
				ColorA: 1,
			})
		}
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	screen.DrawTriangles(vertices, indices, white(), op)
}
