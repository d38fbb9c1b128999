package apperrors

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestConfigError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		err         error
		expected    string
		checkTypeAs bool
	}{
		{
			name:     "Error returns message",
			err:      ConfigError{Message: "invalid flag value"},
			expected: "invalid flag value",
		},
		{
			name:     "NewConfigError creates formatted error",
			err:      NewConfigError("unknown cursor %q for flag %s", "spin", "--cursor"),
			expected: `unknown cursor "spin" for flag --cursor`,
		},
		{
			name:        "ConfigError type assertion",
			err:         NewConfigError("test error"),
			expected:    "test error",
			checkTypeAs: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.err.Error())
			}
			if tt.checkTypeAs {
				var configErr ConfigError
				if !errors.As(tt.err, &configErr) {
					t.Error("expected error to be ConfigError type")
				}
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	t.Parallel()
	err := ValidationError{Field: "rows", Message: "must be positive, got 0"}
	want := `validation error for "rows": must be positive, got 0`
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestMismatchError(t *testing.T) {
	t.Parallel()
	err := MismatchError{Strategy: "dynamic", WantRows: 4, GotRows: 3, WantSum: 10, GotSum: 6}
	want := "dynamic: processed 3 rows (want 4), gross sum 6 (want 10)"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()

	t.Run("nil error stays nil", func(t *testing.T) {
		t.Parallel()
		if WrapError(nil, "context") != nil {
			t.Error("WrapError(nil) should return nil")
		}
	})

	t.Run("wrapped error keeps chain", func(t *testing.T) {
		t.Parallel()
		base := ValidationError{Field: "cols", Message: "must be positive"}
		wrapped := WrapError(base, "building matrix %dx%d", 10, 0)
		if !strings.HasPrefix(wrapped.Error(), "building matrix 10x0: ") {
			t.Errorf("unexpected message: %q", wrapped.Error())
		}
		var ve ValidationError
		if !errors.As(wrapped, &ve) {
			t.Fatal("errors.As should find ValidationError")
		}
		if ve.Field != "cols" {
			t.Errorf("Field = %q, want %q", ve.Field, "cols")
		}
	})
}

func TestExitCode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"config", NewConfigError("bad"), ExitErrorConfig},
		{"wrapped validation", fmt.Errorf("load: %w", ValidationError{Field: "rows"}), ExitErrorConfig},
		{"mismatch", MismatchError{Strategy: "static"}, ExitErrorMismatch},
		{"generic", errors.New("boom"), ExitErrorGeneric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestHandleError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantOut  string
	}{
		{"nil prints nothing", nil, ExitSuccess, ""},
		{"config", NewConfigError("unknown cursor"), ExitErrorConfig, "Configuration error: unknown cursor"},
		{"mismatch", MismatchError{Strategy: "static", WantRows: 2, GotRows: 1}, ExitErrorMismatch, "Reduction mismatch: static"},
		{"generic", errors.New("boom"), ExitErrorGeneric, "Error: boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			code := HandleError(tt.err, &buf)
			if code != tt.wantCode {
				t.Errorf("code = %d, want %d", code, tt.wantCode)
			}
			if tt.wantOut == "" && buf.Len() != 0 {
				t.Errorf("expected no output, got %q", buf.String())
			}
			if !strings.Contains(buf.String(), tt.wantOut) {
				t.Errorf("output %q should contain %q", buf.String(), tt.wantOut)
			}
		})
	}
}

func TestExitCodes(t *testing.T) {
	t.Parallel()
	codes := map[string]int{
		"ExitSuccess":       ExitSuccess,
		"ExitErrorGeneric":  ExitErrorGeneric,
		"ExitErrorMismatch": ExitErrorMismatch,
		"ExitErrorConfig":   ExitErrorConfig,
	}
	seen := make(map[int]string)
	for name, code := range codes {
		if other, ok := seen[code]; ok {
			t.Errorf("%s and %s share exit code %d", name, other, code)
		}
		seen[code] = name
	}
	if ExitSuccess != 0 {
		t.Errorf("ExitSuccess = %d, want 0", ExitSuccess)
	}
}
