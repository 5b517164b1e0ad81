package objects

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObject struct {
	*BaseObject

	log     *[]string
	initErr error
}

func newRecordingObject(id string, zIndex int, log *[]string) *recordingObject {
	return &recordingObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: zIndex}),
		log:        log,
	}
}

func (o *recordingObject) Init() error {
	*o.log = append(*o.log, "init "+o.GetID())
	return o.initErr
}

func (o *recordingObject) Update() error {
	*o.log = append(*o.log, "update "+o.GetID())
	return nil
}

func (o *recordingObject) Destroy() error {
	*o.log = append(*o.log, "destroy "+o.GetID())
	return nil
}

func TestSortedZIndexObject_AddChild(t *testing.T) {
	var log []string
	root := NewSortedZIndexObject("root")

	require.NoError(t, root.AddChild("overlay", newRecordingObject("overlay", 100, &log)))
	require.NoError(t, root.AddChild("cube", newRecordingObject("cube", 0, &log)))
	require.NoError(t, root.AddChild("cube-shadow", newRecordingObject("cube-shadow", 0, &log)))

	var ids []string
	for _, c := range root.GetChildren() {
		ids = append(ids, c.GetID())
	}
	assert.Equal(t, []string{"cube", "cube-shadow", "overlay"}, ids)
	assert.Equal(t, []string{"init overlay", "init cube", "init cube-shadow"}, log)

	assert.Error(t, root.AddChild("cube", newRecordingObject("cube", 0, &log)))
}

func TestSortedZIndexObject_RemoveChild(t *testing.T) {
	var log []string
	root := NewSortedZIndexObject("root")
	child := newRecordingObject("cube", 0, &log)
	require.NoError(t, root.AddChild("cube", child))

	require.NoError(t, root.RemoveChild("cube"))
	assert.Empty(t, root.GetChildren())
	assert.Nil(t, child.GetParent())
	assert.Contains(t, log, "destroy cube")

	assert.Error(t, root.RemoveChild("cube"))
}

func TestUpdateTree_order(t *testing.T) {
	var log []string
	root := NewSortedZIndexObject("root")
	require.NoError(t, root.AddChild("b", newRecordingObject("b", 2, &log)))
	require.NoError(t, root.AddChild("a", newRecordingObject("a", 1, &log)))
	log = nil

	require.NoError(t, UpdateTree(root))
	assert.Equal(t, []string{"update a", "update b"}, log)

	log = nil
	require.NoError(t, DestroyTree(root))
	assert.Equal(t, []string{"destroy a", "destroy b"}, log)
}

func TestAddChild_initError(t *testing.T) {
	var log []string
	root := NewBaseObject("root", nil)
	child := newRecordingObject("broken", 0, &log)
	child.initErr = errors.New("boom")

	assert.Error(t, root.AddChild("broken", child))
	assert.Empty(t, root.GetChildren())
}

func TestLoadingOverlay_HideLoader(t *testing.T) {
	o := NewLoadingOverlay("overlay")
	assert.False(t, o.Hidden())
	assert.Equal(t, OverlayZIndex, o.GetZIndex())

	o.HideLoader()
	o.HideLoader()
	assert.True(t, o.Hidden())
	assert.NoError(t, o.Update())
}
