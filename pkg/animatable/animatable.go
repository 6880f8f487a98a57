// Package animatable classifies and interpolates animation target values.
//
// Target values arrive as `any` and fall into three classes:
//
//   - numbers (any Go numeric type, normalized to float64)
//   - unit strings such as "120px", "50%", or "0.5turn"
//   - color strings: "#f0a", "#ff00aa", "rgb(...)", "rgba(...)", or any
//     CSS named color
//
// [Is] reports whether a value belongs to one of these classes and can be
// interpolated; everything else (say "none" or "block") must be assigned
// directly. [Lerp] interpolates between two values of the same class.
package animatable

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Is reports whether v can be animated by interpolation.
func Is(v any) bool {
	if _, ok := AsNumber(v); ok {
		return true
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	if _, ok := ParseColor(s); ok {
		return true
	}
	_, _, ok = ParseUnit(s)
	return ok
}

// AsNumber normalizes a numeric value to float64.
func AsNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	}
	return 0, false
}

// ParseUnit splits a unit string like "120px" or "50%" into its numeric
// part and unit suffix. Bare numeric strings have an empty unit.
func ParseUnit(s string) (number float64, unit string, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, "", false
	}
	end := len(s)
	for end > 0 {
		c := s[end-1]
		if c >= '0' && c <= '9' || c == '.' {
			break
		}
		end--
	}
	if end == 0 {
		return 0, "", false
	}
	n, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0, "", false
	}
	unit = s[end:]
	switch unit {
	case "", "px", "%", "deg", "rad", "turn", "vw", "vh", "em", "rem":
		return n, unit, true
	}
	return 0, "", false
}

// Color is an RGBA color with 0-255 channels and 0-1 alpha.
type Color struct {
	R, G, B float64
	A       float64
}

// String formats the color as an rgba() string.
func (c Color) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)",
		int(math.Round(c.R)), int(math.Round(c.G)), int(math.Round(c.B)),
		strconv.FormatFloat(round5(c.A), 'f', -1, 64))
}

func round5(f float64) float64 {
	return math.Round(f*100000) / 100000
}

// ParseColor parses hex, rgb()/rgba(), and CSS named color strings.
func ParseColor(s string) (Color, bool) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return Color{}, false
	}
	if s[0] == '#' {
		return parseHex(s[1:])
	}
	if strings.HasPrefix(s, "rgb") {
		return parseRGB(s)
	}
	if named, ok := colornames.Map[s]; ok {
		return Color{
			R: float64(named.R),
			G: float64(named.G),
			B: float64(named.B),
			A: float64(named.A) / 255,
		}, true
	}
	return Color{}, false
}

func parseHex(hex string) (Color, bool) {
	var r, g, b, a uint64
	var err error
	a = 255
	parse := func(s string) (uint64, error) {
		v, err := strconv.ParseUint(s, 16, 16)
		if err == nil && len(s) == 1 {
			v = v*16 + v
		}
		return v, err
	}
	switch len(hex) {
	case 3, 4:
		if r, err = parse(hex[0:1]); err != nil {
			return Color{}, false
		}
		if g, err = parse(hex[1:2]); err != nil {
			return Color{}, false
		}
		if b, err = parse(hex[2:3]); err != nil {
			return Color{}, false
		}
		if len(hex) == 4 {
			if a, err = parse(hex[3:4]); err != nil {
				return Color{}, false
			}
		}
	case 6, 8:
		if r, err = parse(hex[0:2]); err != nil {
			return Color{}, false
		}
		if g, err = parse(hex[2:4]); err != nil {
			return Color{}, false
		}
		if b, err = parse(hex[4:6]); err != nil {
			return Color{}, false
		}
		if len(hex) == 8 {
			if a, err = parse(hex[6:8]); err != nil {
				return Color{}, false
			}
		}
	default:
		return Color{}, false
	}
	return Color{R: float64(r), G: float64(g), B: float64(b), A: float64(a) / 255}, true
}

func parseRGB(s string) (Color, bool) {
	open := strings.IndexByte(s, '(')
	end := strings.LastIndexByte(s, ')')
	if open < 0 || end < open {
		return Color{}, false
	}
	parts := strings.Split(s[open+1:end], ",")
	if len(parts) != 3 && len(parts) != 4 {
		return Color{}, false
	}
	nums := make([]float64, len(parts))
	for i, p := range parts {
		n, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Color{}, false
		}
		nums[i] = n
	}
	c := Color{R: nums[0], G: nums[1], B: nums[2], A: 1}
	if len(nums) == 4 {
		c.A = nums[3]
	}
	return c, true
}

// Lerp interpolates between from and to at progress t.
//
// Numbers interpolate linearly; unit strings interpolate their numeric
// part when units match; colors interpolate per channel and render as
// rgba() strings. Mismatched or non-animatable pairs step: from before
// t reaches 1, to at and after.
func Lerp(from, to any, t float64) any {
	if fn, ok := AsNumber(from); ok {
		if tn, ok := AsNumber(to); ok {
			return fn + (tn-fn)*t
		}
	}
	fs, fok := from.(string)
	ts, tok := to.(string)
	if fok && tok {
		if fc, ok := ParseColor(fs); ok {
			if tc, ok := ParseColor(ts); ok {
				return lerpColor(fc, tc, t).String()
			}
		}
		if fn, fu, ok := ParseUnit(fs); ok {
			if tn, tu, ok := ParseUnit(ts); ok && fu == tu {
				return formatUnit(fn+(tn-fn)*t, fu)
			}
		}
	}
	if t < 1 {
		return from
	}
	return to
}

// ZeroOf returns the zero origin for a target value: 0 for numbers,
// "0<unit>" for unit strings, transparent for colors. Controllers use it
// when a property is animated before any value has been observed.
func ZeroOf(v any) any {
	if _, ok := AsNumber(v); ok {
		return 0.0
	}
	if s, ok := v.(string); ok {
		if c, ok := ParseColor(s); ok {
			return Color{R: c.R, G: c.G, B: c.B, A: 0}.String()
		}
		if _, unit, ok := ParseUnit(s); ok {
			return formatUnit(0, unit)
		}
	}
	return v
}

func lerpColor(a, b Color, t float64) Color {
	return Color{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A + (b.A-a.A)*t,
	}
}

func formatUnit(n float64, unit string) string {
	return strconv.FormatFloat(round5(n), 'f', -1, 64) + unit
}
