package objects

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

type Lifecycle interface {
	// Game flow methods
	Init() error
	Destroy() error
	Update() error
	Draw(screen *ebiten.Image)
}

// InitTree initializes root and then each of its descendants.
func InitTree(root GameObject) error {
	if err := root.Init(); err != nil {
		return fmt.Errorf("failed to initialize object %s: %v", root.GetID(), err)
	}
	for _, child := range root.GetChildren() {
		if err := InitTree(child); err != nil {
			return err
		}
	}
	return nil
}

// DestroyTree destroys the descendants of root and then root itself.
func DestroyTree(root GameObject) error {
	for _, child := range root.GetChildren() {
		if err := DestroyTree(child); err != nil {
			return err
		}
	}
	if err := root.Destroy(); err != nil {
		return fmt.Errorf("failed to destroy object %s: %v", root.GetID(), err)
	}
	return nil
}

// UpdateTree updates root and then each of its descendants.
func UpdateTree(root GameObject) error {
	if err := root.Update(); err != nil {
		return fmt.Errorf("failed to update object %s: %v", root.GetID(), err)
	}
	for _, child := range root.GetChildren() {
		if err := UpdateTree(child); err != nil {
			return err
		}
	}
	return nil
}

// DrawTree draws root and then each of its descendants in child order.
func DrawTree(root GameObject, screen *ebiten.Image) {
	root.Draw(screen)
	for _, child := range root.GetChildren() {
		DrawTree(child, screen)
	}
}
