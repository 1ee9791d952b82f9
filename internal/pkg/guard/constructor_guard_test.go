package guard_test

import (
	"errors"
	"testing"

	"fulfillment/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("constructed_guard_validates_clean", func(t *testing.T) {
		// When
		g := guard.NewConstructorGuard()

		// Then
		require.NoError(t, g.Validate(errors.New("command not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_the_given_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value, constructor bypassed
		notConstructed := errors.New("AcceptTaskCommand must be created via NewAcceptTaskCommand")

		// When
		err := g.Validate(notConstructed)

		// Then
		require.Error(t, err)
		assert.Equal(t, notConstructed, err)
	})

	t.Run("zero_value_guard_falls_back_to_default_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
	})

	t.Run("default_error_names_the_constructor_rule", func(t *testing.T) {
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// TestConstructorGuardCommandPattern exercises the guard the way the command
// structs in usecases/commands embed it: the constructor arms the guard and
// Validate refuses a struct literal.
func TestConstructorGuardCommandPattern(t *testing.T) {
	var errNotConstructed = errors.New("UploadDraftCommand must be created via NewUploadDraftCommand")

	type uploadDraftCommand struct {
		orderID  string
		draftURL string
		guard    guard.ConstructorGuard
	}

	newUploadDraftCommand := func(orderID, draftURL string) (uploadDraftCommand, error) {
		if orderID == "" {
			return uploadDraftCommand{}, errors.New("orderId is required")
		}
		if draftURL == "" {
			return uploadDraftCommand{}, errors.New("draftUrl is required")
		}
		return uploadDraftCommand{
			orderID:  orderID,
			draftURL: draftURL,
			guard:    guard.NewConstructorGuard(),
		}, nil
	}

	t.Run("constructed_command_passes_validation", func(t *testing.T) {
		cmd, err := newUploadDraftCommand("order-17", "https://files.example/draft-1.pdf")

		require.NoError(t, err)
		require.NoError(t, cmd.guard.Validate(errNotConstructed))
	})

	t.Run("struct_literal_fails_validation", func(t *testing.T) {
		cmd := uploadDraftCommand{orderID: "order-17", draftURL: "https://files.example/draft-1.pdf"}

		err := cmd.guard.Validate(errNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errNotConstructed, err)
	})

	t.Run("constructor_rejects_missing_fields_before_arming", func(t *testing.T) {
		_, err := newUploadDraftCommand("", "https://files.example/draft-1.pdf")
		require.Error(t, err)

		_, err = newUploadDraftCommand("order-17", "")
		require.Error(t, err)
	})
}

// Each command/query type carries its own not-constructed sentinel; the guard
// must echo back whichever one it is handed.
func TestConstructorGuard_DistinctSentinelsPerType(t *testing.T) {
	sentinels := []error{
		errors.New("CreateOrderCommand must be created via NewCreateOrderCommand constructor"),
		errors.New("FetchTasksQuery must be created via NewFetchTasksQuery constructor"),
		errors.New("Order must be created via NewOrder or RestoreOrder"),
	}

	var g guard.ConstructorGuard
	for _, sentinel := range sentinels {
		assert.Equal(t, sentinel, g.Validate(sentinel))
	}

	armed := guard.NewConstructorGuard()
	for _, sentinel := range sentinels {
		assert.NoError(t, armed.Validate(sentinel))
	}
}

func TestConstructorGuard_CopySemantics(t *testing.T) {
	// Commands pass by value through handlers; a copy of an armed guard
	// must stay armed.
	g := guard.NewConstructorGuard()
	sentinel := errors.New("not constructed")

	copied := g

	require.NoError(t, g.Validate(sentinel))
	require.NoError(t, copied.Validate(sentinel))
}

func TestConstructorGuard_ConcurrentValidate(t *testing.T) {
	g := guard.NewConstructorGuard()
	sentinel := errors.New("not constructed")

	done := make(chan struct{})
	for range 50 {
		go func() {
			for range 500 {
				assert.NoError(t, g.Validate(sentinel))
			}
			done <- struct{}{}
		}()
	}
	for range 50 {
		<-done
	}
}

func BenchmarkConstructorGuard_Validate(b *testing.B) {
	g := guard.NewConstructorGuard()
	sentinel := errors.New("not constructed")
	b.ResetTimer()
	for range b.N {
		_ = g.Validate(sentinel)
	}
}
