package engine

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDv7Generator(t *testing.T) {
	g := UUIDv7Generator{}

	a := g.Generate()
	b := g.Generate()

	assert.NotEqual(t, a, b)

	parsed, err := uuid.Parse(a)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())

	// v7 tokens sort by creation time.
	assert.Less(t, a, b)
}

func TestFixedGenerator(t *testing.T) {
	g := NewFixedGenerator("tok-1", "tok-2")

	assert.Equal(t, "tok-1", g.Generate())
	assert.Equal(t, "tok-2", g.Generate())
	assert.Panics(t, func() { g.Generate() })
}

func TestFixedGenerator_DrivesEngineOps(t *testing.T) {
	backend := &memBackend{}
	e := New(backend, WithTokenGenerator(NewFixedGenerator("op-1", "op-2")))
	require.NoError(t, e.Load())

	_, err := e.AddBook("Dune", "Frank Herbert", "Science Fiction", "16.99", "8")
	require.NoError(t, err)
	require.NoError(t, e.UpdateInventory("Dune", "9"))

	// Both declared tokens are consumed; a third operation would panic.
	assert.Panics(t, func() { e.RemoveBook("Dune") })
}
