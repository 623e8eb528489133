package naming

import (
	"fmt"
	"regexp"
)

// pascalCase matches anywhere in the name, not only at the start. A name needs an
// internal case transition: "Ab" and "Foo" are rejected, "ABc" and "fooBarBaz" are accepted.
var pascalCase = regexp.MustCompile(`[A-Z]([A-Z0-9]*[a-z][a-z0-9]*[A-Z]|[a-z0-9]*[A-Z][A-Z0-9]*[a-z])[A-Za-z0-9]*`)

// InvalidNameError is returned when a component name isn't in PascalCase
type InvalidNameError struct {
	Name string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("directory name must be in PascalCase: %q", e.Name)
}

// Validate checks a single component name, an empty name is never valid
func Validate(name string) error {
	if name == "" || !pascalCase.MatchString(name) {
		return &InvalidNameError{Name: name}
	}

	return nil
}

// ValidateAll validates the whole batch up front, so that nothing is created if any name is off.
func ValidateAll(names []string) error {
	for _, name := range names {
		if err := Validate(name); err != nil {
			return err
		}
	}

	return nil
}
