package kernel_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleFromString(t *testing.T) {
	t.Run("parses_known_roles", func(t *testing.T) {
		for _, name := range []string{"writer", "qc", "admin", "super_admin", "system"} {
			role, err := kernel.RoleFromString(name)
			require.NoError(t, err)
			assert.Equal(t, name, role.String())
		}
	})

	t.Run("rejects_unknown_role", func(t *testing.T) {
		_, err := kernel.RoleFromString("customer")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_empty_role", func(t *testing.T) {
		_, err := kernel.RoleFromString("")

		require.Error(t, err)
	})
}

func TestRole_IsAdmin(t *testing.T) {
	assert.True(t, kernel.RoleAdmin.IsAdmin())
	assert.True(t, kernel.RoleSuperAdmin.IsAdmin())
	assert.False(t, kernel.RoleWriter.IsAdmin())
	assert.False(t, kernel.RoleQC.IsAdmin())
	assert.False(t, kernel.RoleSystem.IsAdmin())
}

func TestNewActor(t *testing.T) {
	t.Run("creates_valid_actor", func(t *testing.T) {
		id := kernel.NewUUID()

		actor, err := kernel.NewActor(id, kernel.RoleWriter)

		require.NoError(t, err)
		assert.True(t, actor.ID().IsEqual(id))
		assert.Equal(t, kernel.RoleWriter, actor.Role())
		require.NoError(t, actor.Validate())
	})

	t.Run("rejects_zero_identity", func(t *testing.T) {
		_, err := kernel.NewActor(kernel.UUID{}, kernel.RoleWriter)

		require.Error(t, err)
	})

	t.Run("rejects_invalid_role", func(t *testing.T) {
		_, err := kernel.NewActor(kernel.NewUUID(), kernel.Role("guest"))

		require.Error(t, err)
	})

	t.Run("zero_value_actor_fails_validation", func(t *testing.T) {
		var actor kernel.Actor

		err := actor.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})
}

func TestActor_Require(t *testing.T) {
	newActor := func(t *testing.T, role kernel.Role) kernel.Actor {
		t.Helper()
		actor, err := kernel.NewActor(kernel.NewUUID(), role)
		require.NoError(t, err)
		return actor
	}

	t.Run("allows_listed_role", func(t *testing.T) {
		actor := newActor(t, kernel.RoleWriter)

		require.NoError(t, actor.Require("accept task", kernel.RoleWriter))
	})

	t.Run("super_admin_passes_admin_checks", func(t *testing.T) {
		actor := newActor(t, kernel.RoleSuperAdmin)

		require.NoError(t, actor.Require("cancel order", kernel.RoleAdmin))
	})

	t.Run("forbids_unlisted_role", func(t *testing.T) {
		actor := newActor(t, kernel.RoleWriter)

		err := actor.Require("cancel order", kernel.RoleAdmin)

		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("unconstructed_actor_is_unauthorized", func(t *testing.T) {
		var actor kernel.Actor

		err := actor.Require("cancel order", kernel.RoleAdmin)

		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})
}
