package commands_test

import (
	"testing"

	"distribution/internal/core/application/usecases/commands"
	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewActor_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	actor, err := commands.NewActor(id, commands.RolePacker)
	require.NoError(t, err)
	assert.Equal(t, id, actor.ID())
	assert.Equal(t, commands.RolePacker, actor.Role())
	assert.NoError(t, actor.Validate())
}

func TestNewActor_InvalidRole(t *testing.T) {
	_, err := commands.NewActor(kernel.NewUUID(), commands.RoleUnknown)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewActor_InvalidID(t *testing.T) {
	_, err := commands.NewActor(kernel.UUID{}, commands.RoleAdmin)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestActor_ZeroValue_FailsValidation(t *testing.T) {
	var actor commands.Actor
	require.Error(t, actor.Validate())
}

func TestRoleFromString_RoundTrip(t *testing.T) {
	for _, role := range []commands.Role{
		commands.RoleAdmin,
		commands.RoleAgent,
		commands.RoleDeliveryStaff,
		commands.RolePacker,
		commands.RoleCustomerCare,
	} {
		parsed, err := commands.RoleFromString(role.String())
		require.NoError(t, err)
		assert.Equal(t, role, parsed)
	}
}

func TestRoleFromString_Invalid(t *testing.T) {
	_, err := commands.RoleFromString("Janitor")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
