package canvas

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseColor parses the CSS color forms the game uses: "#rgb", "#rrggbb",
// and rgb()/rgba() with space or comma separated channels. An alpha
// channel is accepted and ignored.
func ParseColor(s string) (colorful.Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))

	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return colorful.Color{}, fmt.Errorf("canvas: bad color %q: %w", s, err)
		}
		return c, nil
	}

	var body string
	switch {
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		body = s[len("rgba(") : len(s)-1]
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		body = s[len("rgb(") : len(s)-1]
	default:
		return colorful.Color{}, fmt.Errorf("canvas: unsupported color %q", s)
	}

	fields := strings.Fields(strings.NewReplacer(",", " ", "/", " ").Replace(body))
	if len(fields) < 3 || len(fields) > 4 {
		return colorful.Color{}, fmt.Errorf("canvas: bad color %q", s)
	}

	var ch [3]float64
	for i := range ch {
		v, err := channel(fields[i])
		if err != nil {
			return colorful.Color{}, fmt.Errorf("canvas: bad color %q: %w", s, err)
		}
		ch[i] = v
	}
	return colorful.Color{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// channel parses "0".."255" or a percentage into [0, 1].
func channel(f string) (float64, error) {
	scale := 255.0
	if strings.HasSuffix(f, "%") {
		f = strings.TrimSuffix(f, "%")
		scale = 100
	}
	v, err := strconv.ParseFloat(f, 64)
	if err != nil {
		return 0, err
	}
	v /= scale
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return v, nil
}
