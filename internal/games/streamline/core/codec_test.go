package core

import (
	"errors"
	"strings"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	b := NewBoard(3, 3, P(2, 0), P(0, 2))
	b.Set(P(1, 1), CellObstacle)

	var sb strings.Builder
	if err := Encode(&sb, b); err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}

	loaded, err := Decode(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}
	if !loaded.Equal(b) {
		t.Errorf("round trip mismatch:\ngot\n%s\nwant\n%s", loaded, b)
	}
}

func TestEncodeDecodeAfterPlay(t *testing.T) {
	b := NewBoard(5, 4, P(4, 0), P(0, 3))
	b.Set(P(2, 2), CellObstacle)
	b.Move(DirRight)
	b.Move(DirUp)

	var sb strings.Builder
	if err := Encode(&sb, b); err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}
	loaded, err := Decode(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}
	if !loaded.Equal(b) {
		t.Errorf("round trip mismatch:\ngot\n%s\nwant\n%s", loaded, b)
	}
}

func TestDecode(t *testing.T) {
	input := "2 4\n1 0\n0 3\n .X.extra\n    \n"

	b, err := Decode(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}

	if b.Height() != 2 || b.Width() != 4 {
		t.Fatalf("expected 2x4, got %dx%d", b.Height(), b.Width())
	}
	if b.Player() != P(1, 0) || b.Goal() != P(0, 3) {
		t.Errorf("player=%v goal=%v", b.Player(), b.Goal())
	}
	if got := b.Rows()[0]; got != " .X." {
		t.Errorf("row 0 = %q, want %q", got, " .X.")
	}
	if b.Completed() {
		t.Error("board should not be completed")
	}
}

func TestDecodeCRLF(t *testing.T) {
	input := "1 3\r\n0 0\r\n0 2\r\n X \r\n"

	b, err := Decode(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}
	if got := b.Rows()[0]; got != " X " {
		t.Errorf("row = %q, want %q", got, " X ")
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", ErrBadHeader},
		{"missing numbers", "3 3\n2 0\n", ErrBadHeader},
		{"not a number", "3 3\n2 0\n0 x\n", ErrBadHeader},
		{"extra header token", "1 1\n0 0\n0 0 7\n \n", ErrBadHeader},
		{"zero height", "0 3\n0 0\n0 0\n", ErrBadHeader},
		{"area overflows int", "3037000500 3037000500\n0 0\n0 1\n", ErrBadHeader},
		{"area wraps to zero", "4611686018427387904 4\n0 0\n0 1\n", ErrBadHeader},
		{"too many cells", "100000 100000\n0 0\n0 1\n", ErrBadHeader},
		{"player outside", "2 2\n2 0\n0 1\n  \n  \n", ErrBadHeader},
		{"missing rows", "3 3\n2 0\n0 2\n   \n", ErrTruncated},
		{"short row", "3 3\n2 0\n0 2\n   \n X\n   \n", ErrTruncated},
		{"unknown cell", "2 2\n1 0\n0 1\n  \n Q\n", ErrBadCell},
		{"marker in grid", "2 2\n1 0\n0 1\n @\nO \n", ErrBadCell},
		{"player on obstacle", "2 2\n1 0\n0 1\n  \nX \n", ErrBlocked},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, err := Decode(strings.NewReader(tc.input))
			if err == nil {
				t.Fatalf("expected error, got board:\n%s", b)
			}
			if b != nil {
				t.Error("no board should be returned on error")
			}
			var loadErr *LoadError
			if !errors.As(err, &loadErr) {
				t.Errorf("expected *LoadError, got %T", err)
			}
			if !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestValidSize(t *testing.T) {
	tests := []struct {
		h, w int
		want bool
	}{
		{1, 1, true},
		{6, 5, true},
		{MaxCells, 1, true},
		{256, 256, true},
		{256, 257, false},
		{0, 5, false},
		{5, -1, false},
		{3037000500, 3037000500, false},
		{1 << 62, 4, false},
	}

	for _, tt := range tests {
		if got := ValidSize(tt.h, tt.w); got != tt.want {
			t.Errorf("ValidSize(%d, %d) = %v, want %v", tt.h, tt.w, got, tt.want)
		}
	}
}
