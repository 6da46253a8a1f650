// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"strings"
	"testing"
)

func TestFormatError_Nil(t *testing.T) {
	t.Parallel()

	if got := FormatError(nil, "file.cue"); got != nil {
		t.Errorf("FormatError(nil) = %v, want nil", got)
	}
}

func TestFormatError_NonCUEError(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	got := FormatError(cause, "file.cue")
	if got == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(got.Error(), "file.cue") {
		t.Errorf("error should mention file path, got: %v", got)
	}
	if !errors.Is(got, cause) {
		t.Error("formatted error should wrap the original")
	}
}

func TestFormatPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path []string
		want string
	}{
		{"empty", nil, ""},
		{"single field", []string{"name"}, "name"},
		{"nested fields", []string{"registry", "url"}, "registry.url"},
		{"array index", []string{"options", "0", "name"}, "options[0].name"},
		{"leading index kept as field", []string{"0", "name"}, "0.name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := formatPath(tt.path); got != tt.want {
				t.Errorf("formatPath(%v) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestCheckFileSize(t *testing.T) {
	t.Parallel()

	if err := CheckFileSize(make([]byte, 10), 10, "ok.cue"); err != nil {
		t.Errorf("size at limit should pass, got: %v", err)
	}
	if err := CheckFileSize(make([]byte, 11), 10, "big.cue"); err == nil {
		t.Error("size over limit should fail")
	}
}
