package ncerrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestEmptyInputError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &EmptyInputError{Op: "ToCamel", Input: "_-_"}
		if err.Error() != `empty input to ToCamel: "_-_" contains no words` {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &EmptyInputError{}
		if err.Error() != "empty input" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrEmptyInput", func(t *testing.T) {
		err := &EmptyInputError{Op: "ToPascal"}
		if !errors.Is(err, ErrEmptyInput) {
			t.Error("EmptyInputError should match ErrEmptyInput")
		}
	})

	t.Run("Is does not match other sentinels", func(t *testing.T) {
		err := &EmptyInputError{}
		if errors.Is(err, ErrFormat) {
			t.Error("EmptyInputError should not match ErrFormat")
		}
		if errors.Is(err, ErrConfig) {
			t.Error("EmptyInputError should not match ErrConfig")
		}
	})

	t.Run("As extracts EmptyInputError", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", &EmptyInputError{Op: "ToCamel", Input: "--"})
		var emptyErr *EmptyInputError
		if !errors.As(err, &emptyErr) {
			t.Fatal("errors.As should succeed")
		}
		if emptyErr.Op != "ToCamel" {
			t.Errorf("unexpected op: %s", emptyErr.Op)
		}
	})
}

func TestFormatError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := &FormatError{
			Input:   "Mxd",
			Message: "no digits",
			Cause:   cause,
		}
		if err.Error() != `format error: "Mxd": no digits: underlying error` {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &FormatError{}
		if err.Error() != "format error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &FormatError{Cause: cause}
		//nolint:errorlint // testing pointer identity
		if unwrapped := err.Unwrap(); unwrapped != cause {
			t.Error("Unwrap should return cause")
		}
	})

	t.Run("Unwrap returns nil when no cause", func(t *testing.T) {
		err := &FormatError{}
		if err.Unwrap() != nil {
			t.Error("Unwrap should return nil when no cause")
		}
	})

	t.Run("Is matches ErrFormat", func(t *testing.T) {
		err := &FormatError{Input: "bad"}
		if !errors.Is(err, ErrFormat) {
			t.Error("FormatError should match ErrFormat")
		}
	})
}

func TestConfigError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &ConfigError{Field: "style", Value: "SCREAMING", Message: "unknown case style"}
		if err.Error() != `configuration error: style = "SCREAMING": unknown case style` {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with field only", func(t *testing.T) {
		err := &ConfigError{Field: "pad"}
		if err.Error() != "configuration error: pad" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrConfig", func(t *testing.T) {
		err := &ConfigError{Field: "rules"}
		if !errors.Is(err, ErrConfig) {
			t.Error("ConfigError should match ErrConfig")
		}
	})
}

func TestRenameError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("node is locked")
		err := &RenameError{
			From:    "pCube1",
			To:      "box_01",
			Message: "graph rejected rename",
			Cause:   cause,
		}
		want := `rename error: "pCube1" -> "box_01": graph rejected rename: node is locked`
		if err.Error() != want {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with from only", func(t *testing.T) {
		err := &RenameError{From: "pCube1"}
		if err.Error() != `rename error: "pCube1"` {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &RenameError{Cause: cause}
		//nolint:errorlint // testing pointer identity
		if unwrapped := err.Unwrap(); unwrapped != cause {
			t.Error("Unwrap should return cause")
		}
	})

	t.Run("Is matches ErrRename", func(t *testing.T) {
		err := &RenameError{From: "a", To: "b"}
		if !errors.Is(err, ErrRename) {
			t.Error("RenameError should match ErrRename")
		}
	})

	t.Run("Is does not match ErrFormat", func(t *testing.T) {
		err := &RenameError{}
		if errors.Is(err, ErrFormat) {
			t.Error("RenameError should not match ErrFormat")
		}
	})
}
