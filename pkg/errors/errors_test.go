package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"bare", New(ErrCodeUnresolvedCell, "no rule matches %s", "{A:1 B:0}"), "UNRESOLVED_CELL: no rule matches {A:1 B:0}"},
		{"with cause", Wrap(ErrCodeInvalidInput, errors.New("unexpected EOF"), "shirts.json"), "INVALID_INPUT: shirts.json: unexpected EOF"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrapKeepsChain(t *testing.T) {
	cause := errors.New("permission denied")
	err := Wrap(ErrCodeFileNotFound, cause, "read %s", "doc.tsv")

	if err.Message != "read doc.tsv" {
		t.Errorf("Message = %q", err.Message)
	}
	if errors.Unwrap(err) != cause {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(err), cause)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false")
	}
}

func TestCodeLookup(t *testing.T) {
	inner := New(ErrCodeMalformedDomain, "index 3 out of range for B")
	tests := []struct {
		name   string
		err    error
		code   Code
		want   Code
		wantIs bool
	}{
		{"direct", inner, ErrCodeMalformedDomain, ErrCodeMalformedDomain, true},
		{"other code", inner, ErrCodeUnresolvedCell, ErrCodeMalformedDomain, false},
		{"fmt wrapped", fmt.Errorf("load: %w", inner), ErrCodeMalformedDomain, ErrCodeMalformedDomain, true},
		{"outermost wins", Wrap(ErrCodeInternal, inner, "partition"), ErrCodeInternal, ErrCodeInternal, true},
		{"plain", errors.New("boom"), ErrCodeInternal, "", false},
		{"nil", nil, ErrCodeInternal, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.want {
				t.Errorf("GetCode() = %q, want %q", got, tt.want)
			}
			if got := Is(tt.err, tt.code); got != tt.wantIs {
				t.Errorf("Is(%s) = %v, want %v", tt.code, got, tt.wantIs)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"coded", New(ErrCodeInvalidStrategy, "unknown strategy %q", "random"), `unknown strategy "random"`},
		{"plain", errors.New("disk full"), "disk full"},
		{"coded chain", Wrap(ErrCodeInvalidInput, New(ErrCodeInvalidInput, "line 4: bad index"), "doc.tsv"), "doc.tsv: line 4: bad index"},
		{"plain cause", Wrap(ErrCodeFileNotFound, errors.New("no such file"), "open doc.tsv"), "open doc.tsv: no such file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsDocumentError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"unresolved cell", New(ErrCodeUnresolvedCell, "no rule"), true},
		{"malformed domain", New(ErrCodeMalformedDomain, "bad index"), true},
		{"dimension mismatch", New(ErrCodeDimensionMismatch, "dup"), true},
		{"wrapped invalid input", fmt.Errorf("load: %w", New(ErrCodeInvalidInput, "line 3")), true},
		{"non contiguous subspace", New(ErrCodeNonContiguousSubspace, "gap"), false},
		{"internal", New(ErrCodeInternal, "overlap"), false},
		{"plain error", errors.New("plain"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDocumentError(tt.err); got != tt.want {
				t.Errorf("IsDocumentError() = %v, want %v", got, tt.want)
			}
		})
	}
}
