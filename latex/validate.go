package latex

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	ErrInvalidName = errors.New("invalid LaTeX name")
	ErrArgCount    = errors.New("argument count out of range")
)

var (
	controlWordRE     = regexp.MustCompile(`^[A-Za-z][A-Za-z@*:]*$`)
	environmentNameRE = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9@*]*$`)
)

// ValidateControlWord checks that name is a valid LaTeX command name:
// a leading letter followed by letters, @, *, or :.
func ValidateControlWord(name string) error {
	if name == "" {
		return fmt.Errorf("%w: command name cannot be empty", ErrInvalidName)
	}

	if !controlWordRE.MatchString(name) {
		return fmt.Errorf(
			"%w: %q must start with a letter and contain only letters, @, *, or :",
			ErrInvalidName, name)
	}

	return nil
}

// ValidateEnvironmentName checks that name is a valid LaTeX environment
// name: a leading letter followed by letters, digits, @, or *.
func ValidateEnvironmentName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: environment name cannot be empty", ErrInvalidName)
	}

	if !environmentNameRE.MatchString(name) {
		return fmt.Errorf(
			"%w: %q must start with a letter and contain only letters, digits, @, or *",
			ErrInvalidName, name)
	}

	return nil
}
