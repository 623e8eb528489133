package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := []string{
		"MyComponent",
		"MyContainer",
		"UserProfileCard",
		"ABc",
		"Button2Group",
		"fooBarBaz",
		"HTTPClient",
	}
	for _, name := range valid {
		t.Run(name, func(t *testing.T) {
			assert.NoError(t, Validate(name))
		})
	}

	invalid := []string{
		"",
		"lowercase",
		"ALLCAPS",
		"Ab",
		"Foo",
		"camelCase",
		"snake_case",
		"A",
	}
	for _, name := range invalid {
		t.Run("invalid_"+name, func(t *testing.T) {
			err := Validate(name)
			require.Error(t, err)

			var invalidErr *InvalidNameError
			require.ErrorAs(t, err, &invalidErr)
			assert.Equal(t, name, invalidErr.Name)
		})
	}
}

func TestValidateAll(t *testing.T) {
	t.Parallel()

	t.Run("all valid", func(t *testing.T) {
		assert.NoError(t, ValidateAll([]string{"MyComponent", "OtherComponent"}))
	})

	t.Run("returns first invalid name", func(t *testing.T) {
		err := ValidateAll([]string{"MyComponent", "lowercase", "ALLCAPS"})

		var invalidErr *InvalidNameError
		require.ErrorAs(t, err, &invalidErr)
		assert.Equal(t, "lowercase", invalidErr.Name)
		assert.Contains(t, err.Error(), "PascalCase")
	})

	t.Run("empty batch", func(t *testing.T) {
		assert.NoError(t, ValidateAll(nil))
	})
}
