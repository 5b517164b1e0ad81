//go:build js

package presentation

import (
	"syscall/js"

	"github.com/cbodonnell/cubespin/pkg/log"
)

var logger = log.Named("presentation")

// DOM calls a global function of the hosting page to hide its loader.
type DOM struct {
	funcName string
}

func NewDOM(funcName string) *DOM {
	return &DOM{funcName: funcName}
}

func (d *DOM) HideLoader() {
	fn := js.Global().Get(d.funcName)
	if fn.Type() != js.TypeFunction {
		logger.Warn("Loader function %s not found on page", d.funcName)
		return
	}
	fn.Invoke()
}

// Platform returns the notifier for the page hosting the wasm build.
func Platform(funcName string) Notifier {
	return NewDOM(funcName)
}
