//go:build !js

package presentation

// Platform returns the notifier for native builds, which have no page loader.
func Platform(funcName string) Notifier {
	return Noop{}
}
