//go:build !js

package presentation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlatform_Native(t *testing.T) {
	assert.Equal(t, Noop{}, Platform("hideLoader"))
}
