package charset

import (
	"strings"
	"testing"
)

func TestClassChars(t *testing.T) {
	tests := []struct {
		class Class
		size  int
	}{
		{Uppercase, 26},
		{Lowercase, 26},
		{Digit, 10},
		{Symbol, 32},
	}

	for _, tt := range tests {
		t.Run(tt.class.String(), func(t *testing.T) {
			if got := len(tt.class.Chars()); got != tt.size {
				t.Errorf("len(Chars()) = %d, want %d", got, tt.size)
			}
		})
	}
}

func TestSymbolsAreASCIIPunctuation(t *testing.T) {
	var want strings.Builder
	for r := rune(0x21); r <= 0x7e; r++ {
		if (r >= '0' && r <= '9') || (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
			continue
		}
		want.WriteRune(r)
	}
	if Symbol.Chars() != want.String() {
		t.Errorf("Symbol.Chars() = %q, want %q", Symbol.Chars(), want.String())
	}
}

func TestPoolUppercaseAndDigits(t *testing.T) {
	pool := Pool(Uppercase, Digit)
	if len(pool) != 36 {
		t.Fatalf("len(pool) = %d, want 36", len(pool))
	}
	for _, r := range pool {
		if !strings.ContainsRune(uppercaseChars+digitChars, r) {
			t.Errorf("pool contains unexpected character %q", r)
		}
	}
}

func TestPoolAllClassesHasNoDuplicates(t *testing.T) {
	pool := Pool(All...)
	if len(pool) != 94 {
		t.Fatalf("len(pool) = %d, want 94", len(pool))
	}
	seen := make(map[rune]bool)
	for _, r := range pool {
		if seen[r] {
			t.Errorf("duplicate character %q in pool", r)
		}
		seen[r] = true
	}
}

func TestPoolCollapsesRepeatedClasses(t *testing.T) {
	pool := Pool(Lowercase, Lowercase, Uppercase)
	if len(pool) != 52 {
		t.Errorf("len(pool) = %d, want 52", len(pool))
	}
}

func TestPoolEmpty(t *testing.T) {
	if pool := Pool(); len(pool) != 0 {
		t.Errorf("Pool() = %q, want empty", string(pool))
	}
}

func TestParseClass(t *testing.T) {
	for _, c := range All {
		got, err := ParseClass(c.String())
		if err != nil {
			t.Fatalf("ParseClass(%q) unexpected error: %v", c.String(), err)
		}
		if got != c {
			t.Errorf("ParseClass(%q) = %v, want %v", c.String(), got, c)
		}
	}

	if _, err := ParseClass("emoji"); err != ErrUnknownClass {
		t.Errorf("ParseClass(emoji) error = %v, want %v", err, ErrUnknownClass)
	}
}
