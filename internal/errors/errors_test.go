package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	sentinels := []error{
		ErrIllegalMove, ErrInvalidPosition, ErrCannotPickup, ErrNothingHeld,
		ErrAlreadyHolding, ErrInvalidFEN, ErrInvalidDimensions, ErrInvalidConfig,
		ErrUnknownVariant, ErrParseFailure,
	}

	for _, sentinel := range sentinels {
		t.Run(sentinel.Error(), func(t *testing.T) {
			wrapped := fmt.Errorf("outer: %w", sentinel)
			if !Is(wrapped, sentinel) {
				t.Errorf("Is(wrapped, %v) = false, want true", sentinel)
			}
		})
	}
}

// TestMoveError_Error verifies the error message format
func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *MoveError
		contains []string
	}{
		{
			name: "full context",
			err: &MoveError{
				Err:   ErrIllegalMove,
				From:  "e2",
				To:    "e5",
				Piece: "white pawn",
				Ply:   3,
			},
			contains: []string{"move 3", "white pawn", "e2-e5", "illegal move"},
		},
		{
			name:     "origin only",
			err:      &MoveError{Err: ErrCannotPickup, From: "d4"},
			contains: []string{"from d4", "cannot pick up"},
		},
		{
			name:     "no context",
			err:      &MoveError{Err: ErrNothingHeld},
			contains: []string{"no piece held"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

func TestMoveError_As(t *testing.T) {
	moveErr := &MoveError{Err: ErrIllegalMove, From: "e1", To: "g1"}
	wrapped := fmt.Errorf("session: %w", moveErr)

	var extracted *MoveError
	if !As(wrapped, &extracted) {
		t.Fatal("As() could not extract MoveError")
	}
	if extracted.To != "g1" {
		t.Errorf("extracted.To = %q, want %q", extracted.To, "g1")
	}
	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("errors.Is(wrapped, ErrIllegalMove) = false, want true")
	}
}

func TestParseError_Error(t *testing.T) {
	err := &ParseError{
		Err:      ErrParseFailure,
		Input:    "e9e4",
		Column:   2,
		Expected: "rank 1-8",
		Got:      "'9'",
	}

	msg := err.Error()
	for _, want := range []string{`"e9e4":2`, "expected rank 1-8, got '9'", "parse failure"} {
		if !strings.Contains(msg, want) {
			t.Errorf("ParseError.Error() = %q, should contain %q", msg, want)
		}
	}
	if !errors.Is(err, ErrParseFailure) {
		t.Error("errors.Is(parseErr, ErrParseFailure) = false, want true")
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "ignored") != nil {
		t.Error("Wrap(nil) should return nil")
	}

	wrapped := Wrapf(ErrInvalidConfig, "field %s", "Variant")
	if !errors.Is(wrapped, ErrInvalidConfig) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if msg := wrapped.Error(); msg != "field Variant: invalid configuration" {
		t.Errorf("Wrapf().Error() = %q", msg)
	}
}
