package presenter

import (
	"image"
	"testing"

	"github.com/soocke/screentext-go/config"
)

func TestParseGeometry(t *testing.T) {
	tests := []struct {
		in   string
		want image.Rectangle
		ok   bool
	}{
		{"400x300+10+20", image.Rect(10, 20, 410, 320), true},
		{" 400x300+-5+-7 ", image.Rect(-5, -7, 395, 293), true},
		{"400x300+-10000+-10000", image.Rect(-10000, -10000, -9600, -9700), true},
		{"0x300+1+1", image.Rectangle{}, false},
		{"400x300", image.Rectangle{}, false},
		{"garbage", image.Rectangle{}, false},
	}
	for _, tc := range tests {
		got, ok := ParseGeometry(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("ParseGeometry(%q) = %v,%v want %v,%v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
	if g := FormatGeometry(image.Rect(10, 20, 410, 320)); g != "400x300+10+20" {
		t.Fatalf("format: %s", g)
	}
}

func TestSanitizeGeometry(t *testing.T) {
	cfg := config.DefaultConfig()
	if g := sanitizeGeometry("800x600+100+50", cfg); g != "800x600+100+50" {
		t.Fatalf("on-screen geometry changed: %s", g)
	}
	if g := sanitizeGeometry("800x600+-10000+-10000", cfg); g != "800x600" {
		t.Fatalf("off-screen position kept: %s", g)
	}
	if g := sanitizeGeometry("800x600+-20+-20", cfg); g != "800x600+-20+-20" {
		t.Fatalf("slightly negative position should survive: %s", g)
	}
	if g := sanitizeGeometry("640x480", cfg); g != "640x480" {
		t.Fatalf("size-only geometry: %q", g)
	}
	if g := sanitizeGeometry("", cfg); g != "" {
		t.Fatalf("empty geometry: %q", g)
	}
}
