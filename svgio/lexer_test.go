package svgio

import (
	"errors"
	"testing"
)

func TestTokenize_Basic(t *testing.T) {
	toks, err := tokenize("M 0,0 L 10 10 C 1 1 2 2 3 3 Z")
	if err != nil {
		t.Fatalf("tokenize: unexpected error %v", err)
	}
	wantCmds := []byte{'M', 'L', 'C', 'Z'}
	if len(toks) != len(wantCmds) {
		t.Fatalf("tokenize: got %d tokens, want %d", len(toks), len(wantCmds))
	}
	for i, c := range wantCmds {
		if toks[i].cmd != c {
			t.Errorf("token[%d].cmd = %c, want %c", i, toks[i].cmd, c)
		}
	}
	if len(toks[2].nums) != 6 {
		t.Fatalf("C token: got %d numbers, want 6", len(toks[2].nums))
	}
}

func TestTokenize_RejectsUnknownCommand(t *testing.T) {
	_, err := tokenize("M 0,0 Q 1,1 2,2")
	if !errors.Is(err, ErrParse) {
		t.Fatalf("tokenize: got err %v, want ErrParse", err)
	}
}

func TestTokenize_RejectsMalformedNumber(t *testing.T) {
	_, err := tokenize("M 0,0 L 1..2 3")
	if !errors.Is(err, ErrParse) {
		t.Fatalf("tokenize: got err %v, want ErrParse", err)
	}
}

func TestTokenize_NoExponentSupport(t *testing.T) {
	// "1" reads as a plain number, leaving a bare "e2" that is rejected as
	// an unknown command letter -- confirms exponent syntax is unsupported.
	_, err := tokenize("M 1e2 3")
	if !errors.Is(err, ErrParse) {
		t.Fatalf("tokenize: got err %v, want ErrParse", err)
	}
}

func TestTokenize_ImplicitRepeat(t *testing.T) {
	toks, err := tokenize("M 0,0 10,10 20,20")
	if err != nil {
		t.Fatalf("tokenize: unexpected error %v", err)
	}
	if len(toks) != 1 {
		t.Fatalf("tokenize: got %d tokens, want 1 (repeat folds into the same command)", len(toks))
	}
	if len(toks[0].nums) != 6 {
		t.Fatalf("tokenize: got %d numbers, want 6", len(toks[0].nums))
	}
}
