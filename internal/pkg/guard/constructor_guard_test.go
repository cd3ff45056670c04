package guard_test

import (
	"errors"
	"testing"

	"distribution/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errNotConstructed = errors.New("object must be created via its constructor")

func TestNewConstructorGuard(t *testing.T) {
	g := guard.NewConstructorGuard()

	assert.NoError(t, g.Validate(errNotConstructed))
	assert.NoError(t, g.Validate(nil))
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero value fails with the supplied error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(errNotConstructed)

		require.Error(t, err)
		assert.ErrorIs(t, err, errNotConstructed)
	})

	t.Run("zero value without a supplied error falls back to the default", func(t *testing.T) {
		var g guard.ConstructorGuard

		assert.ErrorIs(t, g.Validate(nil), guard.ErrDefaultConstructorGuard)
	})
}

func TestConstructorGuard_Embedded(t *testing.T) {
	type command struct {
		name  string
		guard guard.ConstructorGuard
	}

	newCommand := func(name string) command {
		return command{name: name, guard: guard.NewConstructorGuard()}
	}

	t.Run("constructed struct validates", func(t *testing.T) {
		cmd := newCommand("dispatch")

		assert.NoError(t, cmd.guard.Validate(errNotConstructed))
	})

	t.Run("struct literal bypassing the constructor fails", func(t *testing.T) {
		cmd := command{name: "dispatch"}

		assert.ErrorIs(t, cmd.guard.Validate(errNotConstructed), errNotConstructed)
	})

	t.Run("copies keep the constructed state", func(t *testing.T) {
		cmd := newCommand("dispatch")
		clone := cmd

		assert.NoError(t, clone.guard.Validate(errNotConstructed))
	})
}
