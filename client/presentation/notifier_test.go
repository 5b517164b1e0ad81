package presentation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMulti_HideLoader(t *testing.T) {
	var calls []string
	m := Multi{
		Func(func() { calls = append(calls, "first") }),
		nil,
		Noop{},
		Func(func() { calls = append(calls, "second") }),
	}

	m.HideLoader()

	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestFunc_NilIsSafe(t *testing.T) {
	var f Func
	assert.NotPanics(t, f.HideLoader)
}
