package form

import "testing"

func TestIsPositiveIntegerText(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"", true},
		{"0", true},
		{"007", true},
		{"20", true},
		{"12a", false},
		{"-1", false},
		{" 1", false},
		{"1.5", false},
		{"٣", false},
	}

	for _, tt := range tests {
		if got := IsPositiveIntegerText(tt.text); got != tt.want {
			t.Errorf("IsPositiveIntegerText(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestResolveLength(t *testing.T) {
	tests := []struct {
		text    string
		want    int
		wantErr bool
	}{
		{text: "", want: 0},
		{text: "0", want: 0},
		{text: "007", want: 7},
		{text: "128", want: 128},
		{text: "abc", wantErr: true},
		{text: "99999999999999999999999", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ResolveLength(tt.text)
		if tt.wantErr {
			if err != ErrInvalidLength {
				t.Errorf("ResolveLength(%q) error = %v, want %v", tt.text, err, ErrInvalidLength)
			}
			continue
		}
		if err != nil {
			t.Errorf("ResolveLength(%q) unexpected error: %v", tt.text, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ResolveLength(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestAdjustLength(t *testing.T) {
	tests := []struct {
		current, delta, want int
	}{
		{0, -1, 0},
		{5, 1, 6},
		{5, -3, 2},
		{1, -1, 0},
		{2, -5, 2},
	}

	for _, tt := range tests {
		if got := AdjustLength(tt.current, tt.delta); got != tt.want {
			t.Errorf("AdjustLength(%d, %d) = %d, want %d", tt.current, tt.delta, got, tt.want)
		}
	}
}
