package objects

import (
	"image/color"

	"github.com/cbodonnell/cubespin/client/fonts"
	"github.com/cbodonnell/cubespin/client/presentation"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	// OverlayZIndex keeps the loading overlay above the scene.
	OverlayZIndex = 100
	// LoadingText is shown while the scene is loading.
	LoadingText = "Loading..."
)

// LoadingOverlay covers the canvas until it is told to hide.
// It is the in-canvas counterpart of a page level loader.
type LoadingOverlay struct {
	*BaseObject

	ui     *ebitenui.UI
	hidden bool
}

var (
	_ GameObject            = &LoadingOverlay{}
	_ presentation.Notifier = &LoadingOverlay{}
)

func NewLoadingOverlay(id string) *LoadingOverlay {
	return &LoadingOverlay{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{
			ZIndex: OverlayZIndex,
		}),
	}
}

// buildUI is deferred to the first visible frame so that a scene can bootstrap
// before the graphics driver is running.
func (o *LoadingOverlay) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.NRGBA{R: 0, G: 0, B: 0, A: 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	rootContainer.AddChild(widget.NewText(
		widget.TextOpts.Text(LoadingText, fonts.LoadingFace, color.NRGBA{254, 255, 255, 255}),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	))

	o.ui = &ebitenui.UI{
		Container: rootContainer,
	}
}

// HideLoader hides the overlay. Later calls are no-ops.
func (o *LoadingOverlay) HideLoader() {
	o.hidden = true
}

func (o *LoadingOverlay) Hidden() bool {
	return o.hidden
}

func (o *LoadingOverlay) Update() error {
	if o.hidden {
		return nil
	}
	if o.ui == nil {
		o.buildUI()
	}
	o.ui.Update()
	return nil
}

func (o *LoadingOverlay) Draw(screen *ebiten.Image) {
	if o.hidden {
		return
	}
	if o.ui == nil {
		o.buildUI()
	}
	o.ui.Draw(screen)
}
