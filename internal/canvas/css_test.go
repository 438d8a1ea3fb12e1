package canvas

import (
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		r, g, b uint8
	}{
		{"rgb(0 128 0)", 0, 128, 0},
		{"rgb(24 255 0)", 24, 255, 0},
		{"rgb(131 245 44)", 131, 245, 44},
		{"rgba(0 128 0)", 0, 128, 0},
		{"rgb(0, 255, 255)", 0, 255, 255},
		{"rgba(10 20 30 / 0.5)", 10, 20, 30},
		{"RGB(255 255 0)", 255, 255, 0},
		{"rgb(100% 0% 50%)", 255, 0, 128},
		{"rgb(300 -5 0)", 255, 0, 0},
		{"#00ffff", 0, 255, 255},
		{"#0f0", 0, 255, 0},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			c, err := ParseColor(tc.in)
			if err != nil {
				t.Fatalf("ParseColor(%q) error = %v", tc.in, err)
			}
			r, g, b := c.RGB255()
			if r != tc.r || g != tc.g || b != tc.b {
				t.Errorf("ParseColor(%q) = (%d, %d, %d), expected (%d, %d, %d)", tc.in, r, g, b, tc.r, tc.g, tc.b)
			}
		})
	}
}

func TestParseColorErrors(t *testing.T) {
	for _, in := range []string{"", "green", "rgb(1 2)", "rgb(1 2 3 4 5)", "rgb(a b c)", "#12", "rgb(1 2 3"} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("ParseColor(%q) should fail", in)
		}
	}
}
