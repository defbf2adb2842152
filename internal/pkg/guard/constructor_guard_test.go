package guard_test

import (
	"errors"
	"testing"

	"fleetplan/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// When
		err := g.Validate(errors.New("not constructed"))

		// Then
		require.NoError(t, err)
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expected := errors.New("Vehicle must be created via NewVehicle")

		// When
		err := g.Validate(expected)

		// Then
		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

// TestConstructorGuardEmbedded shows the guard embedded in a value built by a constructor.
func TestConstructorGuardEmbedded(t *testing.T) {
	errDepotNotConstructed := errors.New("Depot must be created via NewDepot")

	type depot struct {
		name  string
		guard guard.ConstructorGuard
	}

	newDepot := func(name string) (depot, error) {
		if name == "" {
			return depot{}, errors.New("depot name is required")
		}
		return depot{name: name, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("valid_construction", func(t *testing.T) {
		d, err := newDepot("north")

		require.NoError(t, err)
		require.NoError(t, d.guard.Validate(errDepotNotConstructed))
		assert.Equal(t, "north", d.name)
	})

	t.Run("zero_value_fails", func(t *testing.T) {
		var d depot

		assert.Equal(t, errDepotNotConstructed, d.guard.Validate(errDepotNotConstructed))
	})

	t.Run("constructor_rejects_empty_name", func(t *testing.T) {
		_, err := newDepot("")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "depot name is required")
	})
}

func TestEnsure(t *testing.T) {
	t.Run("passes_silently", func(t *testing.T) {
		assert.NotPanics(t, func() { guard.Ensure(true, "never formatted %d", 1) })
	})

	t.Run("panics_with_contract_violation", func(t *testing.T) {
		defer func() {
			r := recover()
			require.NotNil(t, r)

			violation, ok := r.(*guard.ContractViolation)
			require.True(t, ok)
			assert.Equal(t, "index 3 is out of range", violation.Message)
			assert.Equal(t, "contract violation: index 3 is out of range", violation.Error())
		}()

		guard.Ensure(false, "index %d is out of range", 3)
	})
}

func BenchmarkConstructorGuard(b *testing.B) {
	b.Run("Validate_Success", func(b *testing.B) {
		g := guard.NewConstructorGuard()
		err := errors.New("test")
		b.ResetTimer()
		for range b.N {
			_ = g.Validate(err)
		}
	})
}
