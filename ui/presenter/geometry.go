package presenter

import (
	"fmt"
	"image"
	"regexp"
	"strconv"
	"strings"

	"github.com/soocke/screentext-go/config"
)

// geomRe matches window geometry strings in the format "WIDTHxHEIGHT+X+Y".
var geomRe = regexp.MustCompile(`^(\d+)x(\d+)\+(-?\d+)\+(-?\d+)$`)

var sizeRe = regexp.MustCompile(`^[1-9]\d*x[1-9]\d*$`)

// ParseGeometry parses a Tk geometry string into the window rectangle.
func ParseGeometry(g string) (image.Rectangle, bool) {
	m := geomRe.FindStringSubmatch(strings.TrimSpace(g))
	if len(m) != 5 {
		return image.Rectangle{}, false
	}
	w, _ := strconv.Atoi(m[1])
	h, _ := strconv.Atoi(m[2])
	x, _ := strconv.Atoi(m[3])
	y, _ := strconv.Atoi(m[4])
	if w <= 0 || h <= 0 {
		return image.Rectangle{}, false
	}
	return image.Rect(x, y, x+w, y+h), true
}

// FormatGeometry is the inverse of ParseGeometry.
func FormatGeometry(r image.Rectangle) string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Dx(), r.Dy(), r.Min.X, r.Min.Y)
}

// sanitizeGeometry drops the position of a geometry that sits at or beyond
// the off-screen point, keeping only the size. Unparseable input yields "".
func sanitizeGeometry(g string, cfg *config.Config) string {
	g = strings.TrimSpace(g)
	if sizeRe.MatchString(g) {
		return g
	}
	r, ok := ParseGeometry(g)
	if !ok {
		return ""
	}
	if offscreen(r.Min, cfg) {
		return fmt.Sprintf("%dx%d", r.Dx(), r.Dy())
	}
	return FormatGeometry(r)
}

func offscreen(p image.Point, cfg *config.Config) bool {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	// Half the configured offset still leaves the window nowhere a user could see it.
	return p.X <= cfg.OffscreenX/2 || p.Y <= cfg.OffscreenY/2
}
