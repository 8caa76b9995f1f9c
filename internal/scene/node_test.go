package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterLookup(t *testing.T) {
	id := Register(&Node{Name: "status-bar", Width: 400, Height: 32})
	defer Unregister(id)

	n, ok := Lookup(id)
	assert.True(t, ok)
	assert.Equal(t, "status-bar", n.Name)
}

func TestLabelFormat(t *testing.T) {
	id := Register(&Node{Name: "badge", Width: 256, Height: 64})
	defer Unregister(id)

	assert.Equal(t, "badge 256x64", Label(id))
}

func TestLabelOfDeadNodeIsEmpty(t *testing.T) {
	id := Register(&Node{Name: "gone"})
	Unregister(id)

	assert.Equal(t, "", Label(id))

	_, ok := Lookup(id)
	assert.False(t, ok)
}

func TestZeroIDNeverResolves(t *testing.T) {
	assert.Equal(t, "", Label(0))
	_, ok := Lookup(0)
	assert.False(t, ok)
}

func TestIDsAreUnique(t *testing.T) {
	a := Register(&Node{Name: "a"})
	b := Register(&Node{Name: "b"})
	defer Unregister(a)
	defer Unregister(b)

	assert.NotEqual(t, a, b)
}
