package style

import (
	"fmt"

	"github.com/go-drift/motion/pkg/animatable"
	"github.com/go-drift/motion/pkg/errors"
	"github.com/go-drift/motion/pkg/value"
)

// ConvertUnits reconciles the units of target and transitionEnd values
// against each tracked value's current unit, so interpolation always
// happens within a single unit space.
//
// For each property whose declared target unit differs from the tracked
// value's current unit, the tracked value is re-seeded from the reader's
// computed value when available, or restated as zero in the target's
// unit otherwise. The input maps are not mutated.
func ConvertUnits(store *value.Store, reader Reader, target, transitionEnd map[string]any) (map[string]any, map[string]any) {
	for key, want := range target {
		_, wantUnit, ok := parseUnitOf(want)
		if !ok {
			continue
		}
		v, tracked := store.Get(key)
		if !tracked {
			continue
		}
		_, haveUnit, haveOK := parseUnitOf(v.Get())
		if !haveOK || haveUnit == wantUnit {
			continue
		}
		if reader != nil {
			if cur, ok := reader.Read(key); ok {
				v.Set(cur)
				continue
			}
		}
		errors.Report(&errors.MotionError{
			Op:   "style.ConvertUnits",
			Kind: errors.KindConvert,
			Err:  fmt.Errorf("no computed value for %q, restating as zero in unit %q", key, wantUnit),
		})
		v.Set(formatZero(wantUnit))
	}
	return target, transitionEnd
}

func parseUnitOf(v any) (float64, string, bool) {
	if n, ok := animatable.AsNumber(v); ok {
		return n, "", true
	}
	if s, ok := v.(string); ok {
		return animatable.ParseUnit(s)
	}
	return 0, "", false
}

func formatZero(unit string) any {
	if unit == "" {
		return 0.0
	}
	return "0" + unit
}
