// Package presentation signals the layer around the game canvas, such as the
// hosting web page, that the loading indicator can be hidden.
package presentation

// Notifier is a fire-and-forget signal with no acknowledgment.
type Notifier interface {
	HideLoader()
}

// Noop ignores every notification. Used on platforms without a loader.
type Noop struct{}

func (Noop) HideLoader() {}

// Func adapts a plain function to a Notifier.
type Func func()

func (f Func) HideLoader() {
	if f != nil {
		f()
	}
}

// Multi fans a notification out to several notifiers in order.
type Multi []Notifier

func (m Multi) HideLoader() {
	for _, n := range m {
		if n != nil {
			n.HideLoader()
		}
	}
}
