package keywords

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, ExitOK},
		{errors.New("boom"), ExitFailure},
		{fmt.Errorf("load: %w", ErrKeywordFileIO), ExitIOErr},
		{fmt.Errorf("load: %w", ErrMalformedKeywordFile), ExitSoftware},
		{fmt.Errorf("check: %w", ErrTableUnsorted), ExitSoftware},
		{fmt.Errorf("check: %w", ErrAmbiguousRun), ExitSoftware},
		{ErrViewOverflow, ExitSoftware},
	}
	for _, tt := range tests {
		if got := ExitCode(tt.err); got != tt.want {
			t.Fatalf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestIsInvariant(t *testing.T) {
	if IsInvariant(ErrMalformedKeywordFile) || IsInvariant(ErrKeywordFileIO) {
		t.Fatalf("configuration errors are not invariant violations")
	}
	if !IsInvariant(fmt.Errorf("x: %w", ErrViewOverflow)) {
		t.Fatalf("wrapped overflow must be an invariant violation")
	}
}
