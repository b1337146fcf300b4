package guard_test

import (
	"errors"
	"testing"

	"coffeeshop/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		g := guard.NewConstructorGuard()

		// Then
		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))

		// Nil error should fall back to the default
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()
		customError := errors.New("not constructed")

		// When
		err := g.Validate(customError)

		// Then
		require.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard should be
// used in a domain object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	// A sample domain object that uses ConstructorGuard
	type MenuEntry struct {
		name  string
		price int
		guard guard.ConstructorGuard
	}

	var errMenuEntryNotConstructed = errors.New("MenuEntry must be created via NewMenuEntry")

	newMenuEntry := func(name string, price int) (MenuEntry, error) {
		if name == "" {
			return MenuEntry{}, errors.New("name is required")
		}
		if price < 0 {
			return MenuEntry{}, errors.New("price cannot be negative")
		}
		return MenuEntry{
			name:  name,
			price: price,
			guard: guard.NewConstructorGuard(),
		}, nil
	}

	validateMenuEntry := func(e MenuEntry) error {
		return e.guard.Validate(errMenuEntryNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		// When
		entry, err := newMenuEntry("Espresso", 350)

		// Then
		require.NoError(t, err)
		require.NoError(t, validateMenuEntry(entry))
		assert.Equal(t, "Espresso", entry.name)
		assert.Equal(t, 350, entry.price)
	})

	t.Run("zero_value_construction_validation", func(t *testing.T) {
		// Given
		var entry MenuEntry // zero value

		// When
		err := validateMenuEntry(entry)

		// Then
		require.Error(t, err)
		assert.Equal(t, errMenuEntryNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newMenuEntry("", 350)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name is required")

		_, err = newMenuEntry("Espresso", -1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "price cannot be negative")
	})
}

// TestConstructorGuardDefaultError verifies the default error behavior.
func TestConstructorGuardDefaultError(t *testing.T) {
	t.Run("nil_error_uses_default_for_zero_value", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("default_error_constant_has_meaningful_message", func(t *testing.T) {
		// Then
		require.Error(t, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// TestConstructorGuardConcurrency verifies that ConstructorGuard is safe for concurrent use.
func TestConstructorGuardConcurrency(t *testing.T) {
	g := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	done := make(chan bool)
	for range 100 {
		go func() {
			for range 1000 {
				err := g.Validate(validationError)
				assert.NoError(t, err)
			}
			done <- true
		}()
	}

	for range 100 {
		<-done
	}
}

// TestConstructorGuardImmutability verifies that ConstructorGuard is immutable.
func TestConstructorGuardImmutability(t *testing.T) {
	t.Run("guard_can_be_safely_passed_by_value", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()
		testError := errors.New("test error")

		// When
		guardCopy := g // pass by value

		// Then
		require.NoError(t, g.Validate(testError))
		require.NoError(t, guardCopy.Validate(testError))
	})
}
