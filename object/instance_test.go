package object

import (
	"testing"

	"github.com/deepnoodle-ai/wonton/assert"
)

func TestInstanceTypeAttributes(t *testing.T) {
	typ := NewInstanceType("Net", "training", "weight", "child")
	assert.Equal(t, typ.Name(), "Net")
	assert.Equal(t, typ.NumAttributes(), 3)
	assert.Equal(t, typ.AttributeName(1), "weight")

	slot, ok := typ.FindAttributeSlot("child")
	assert.True(t, ok)
	assert.Equal(t, slot, 2)

	_, ok = typ.FindAttributeSlot("missing")
	assert.False(t, ok)
}

func TestInstanceSlots(t *testing.T) {
	typ := NewInstanceType("Net", "training", "weight")
	obj := NewInstance(typ)

	// Slots start out nil-valued.
	assert.Equal(t, obj.GetSlot(0), Nil)
	assert.Equal(t, obj.GetSlot(1), Nil)

	obj.SetSlot(0, True)
	assert.Equal(t, obj.GetSlot(0), True)

	obj.SetSlot(1, nil)
	assert.Equal(t, obj.GetSlot(1), Nil)

	assert.Len(t, obj.Slots(), 2)
}

func TestInstanceAttrs(t *testing.T) {
	typ := NewInstanceType("Net", "training")
	obj := NewInstance(typ)

	assert.Nil(t, obj.SetAttr("training", False))
	value, ok := obj.GetAttr("training")
	assert.True(t, ok)
	assert.Equal(t, value, False)

	_, ok = obj.GetAttr("missing")
	assert.False(t, ok)

	err := obj.SetAttr("missing", True)
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "missing")
}

func TestInstanceEqualsByIdentity(t *testing.T) {
	typ := NewInstanceType("Net", "training")
	a := NewInstance(typ)
	b := NewInstance(typ)
	assert.True(t, a.Equals(a))
	assert.False(t, a.Equals(b))
}

func TestInstanceInspect(t *testing.T) {
	typ := NewInstanceType("Net", "training", "count")
	obj := NewInstance(typ)
	obj.SetSlot(0, True)
	obj.SetSlot(1, NewInt(3))
	assert.Equal(t, obj.Inspect(), "Net(training=true, count=3)")
}
