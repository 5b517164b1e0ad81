package objects

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// BaseObject carries the identity, z-index and children of a game object.
// Types embed it and override the lifecycle methods they need.
type BaseObject struct {
	id       string
	zIndex   int
	parent   GameObject
	children *children
}

type NewBaseObjectOpts struct {
	// ZIndex orders the object among its siblings, lower draws first.
	ZIndex int
}

var _ GameObject = &BaseObject{}

func NewBaseObject(id string, opts *NewBaseObjectOpts) *BaseObject {
	if opts == nil {
		opts = &NewBaseObjectOpts{}
	}
	return &BaseObject{
		id:       id,
		zIndex:   opts.ZIndex,
		children: newChildren(),
	}
}

func (o *BaseObject) Init() error                 { return nil }
func (o *BaseObject) Destroy() error              { return nil }
func (o *BaseObject) Update() error               { return nil }
func (o *BaseObject) Draw(screen *ebiten.Image)   {}
func (o *BaseObject) GetID() string               { return o.id }
func (o *BaseObject) GetZIndex() int              { return o.zIndex }
func (o *BaseObject) GetParent() GameObject       { return o.parent }
func (o *BaseObject) SetParent(parent GameObject) { o.parent = parent }

func (o *BaseObject) GetChildren() []GameObject {
	return o.children.ordered
}

func (o *BaseObject) AddChild(id string, child GameObject) error {
	if _, ok := o.children.idxIDObjects[id]; ok {
		return fmt.Errorf("child object with id already exists")
	}
	if err := InitTree(child); err != nil {
		return fmt.Errorf("failed to initialize child object tree: %v", err)
	}
	o.children.Add(id, child)
	child.SetParent(o)
	return nil
}

func (o *BaseObject) RemoveChild(id string) error {
	child := o.children.Get(id)
	if child == nil {
		return fmt.Errorf("child object with id does not exist")
	}
	if err := DestroyTree(child); err != nil {
		return fmt.Errorf("failed to destroy child object tree: %v", err)
	}
	o.children.Remove(id)
	child.SetParent(nil)
	return nil
}

// children indexes child objects by id while keeping insertion order.
type children struct {
	idxIDObjects map[string]GameObject
	ordered      []GameObject
}

func newChildren() *children {
	return &children{
		idxIDObjects: make(map[string]GameObject),
		ordered:      make([]GameObject, 0),
	}
}

func (c *children) Add(id string, child GameObject) {
	c.idxIDObjects[id] = child
	c.ordered = append(c.ordered, child)
}

func (c *children) Get(id string) GameObject {
	return c.idxIDObjects[id]
}

func (c *children) Remove(id string) {
	child, ok := c.idxIDObjects[id]
	if !ok {
		return
	}
	delete(c.idxIDObjects, id)
	for i, obj := range c.ordered {
		if obj == child {
			c.ordered = append(c.ordered[:i], c.ordered[i+1:]...)
			return
		}
	}
}
