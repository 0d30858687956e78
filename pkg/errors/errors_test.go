package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidOption, "width must be positive, got %d", -5)

	if err.Code != ErrCodeInvalidOption {
		t.Errorf("Code = %q, want %q", err.Code, ErrCodeInvalidOption)
	}
	if want := "width must be positive, got -5"; err.Message != want {
		t.Errorf("Message = %q, want %q", err.Message, want)
	}
	if !strings.Contains(err.Error(), "INVALID_OPTION") {
		t.Errorf("Error() = %q, missing code prefix", err.Error())
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := Wrap(ErrCodeInternal, cause, "render failed")

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("Error() = %q, missing cause", err.Error())
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeUnclosedRing, "ring marker 1 never closed")
	wrapped := fmt.Errorf("parse: %w", err)

	if !Is(wrapped, ErrCodeUnclosedRing) {
		t.Error("Is(wrapped, ErrCodeUnclosedRing) = false, want true")
	}
	if Is(wrapped, ErrCodeInternal) {
		t.Error("Is(wrapped, ErrCodeInternal) = true, want false")
	}
	if Is(fmt.Errorf("plain"), ErrCodeInternal) {
		t.Error("Is(plain, ...) = true, want false")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeInvalidFormat, "bad")); got != ErrCodeInvalidFormat {
		t.Errorf("GetCode = %q, want %q", got, ErrCodeInvalidFormat)
	}
	if got := GetCode(fmt.Errorf("plain")); got != "" {
		t.Errorf("GetCode(plain) = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidConfig, "unknown key %q", "colour")
	if got := UserMessage(err); got != `unknown key "colour"` {
		t.Errorf("UserMessage = %q", got)
	}
	if got := UserMessage(fmt.Errorf("plain")); got != "plain" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}

func TestValidateNotation(t *testing.T) {
	tests := []struct {
		name     string
		notation string
		wantCode Code
	}{
		{"Valid", "CC(=O)Oc1ccccc1C(=O)O", ""},
		{"Empty", "", ErrCodeEmptyNotation},
		{"Whitespace", "   \t ", ErrCodeEmptyNotation},
		{"ControlChars", "CC\x00O", ErrCodeInvalidNotation},
		{"TooLong", strings.Repeat("C", MaxNotationLength+1), ErrCodeInvalidNotation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNotation(tt.notation)
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("ValidateNotation = %v, want nil", err)
				}
				return
			}
			if !Is(err, tt.wantCode) {
				t.Errorf("ValidateNotation = %v, want code %s", err, tt.wantCode)
			}
		})
	}
}
