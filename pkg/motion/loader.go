package motion

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/motion/pkg/errors"
	"github.com/go-drift/motion/pkg/tween"
)

// Variant files declare a component's variant set in YAML, keeping motion
// design alongside other app assets:
//
//	visible:
//	  target:
//	    opacity: 1
//	    x: 0
//	  transition:
//	    duration: 300ms
//	    ease: ease-out
//	    staggerChildren: 50ms
//	hidden:
//	  target:
//	    opacity: 0
//	  transitionEnd:
//	    display: none
//
// Durations use Go duration syntax. Ease accepts the named curves
// (linear, ease, ease-in, ease-out, ease-in-out) or cubic-bezier(a,b,c,d).

type variantSpec struct {
	Target        map[string]any  `yaml:"target"`
	Transition    *transitionSpec `yaml:"transition"`
	TransitionEnd map[string]any  `yaml:"transitionEnd"`
}

type transitionSpec struct {
	Delay            string `yaml:"delay"`
	Duration         string `yaml:"duration"`
	Ease             string `yaml:"ease"`
	BeforeChildren   bool   `yaml:"beforeChildren"`
	AfterChildren    bool   `yaml:"afterChildren"`
	StaggerChildren  string `yaml:"staggerChildren"`
	StaggerDirection int    `yaml:"staggerDirection"`
	DelayChildren    string `yaml:"delayChildren"`
}

// LoadVariants reads a YAML variant file.
func LoadVariants(r io.Reader) (Variants, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, configErr("motion.LoadVariants", err)
	}
	return ParseVariants(data)
}

// ParseVariants parses a YAML variant file from memory.
func ParseVariants(data []byte) (Variants, error) {
	var specs map[string]variantSpec
	if err := yaml.Unmarshal(data, &specs); err != nil {
		return nil, configErr("motion.ParseVariants", err)
	}
	variants := make(Variants, len(specs))
	for label, spec := range specs {
		v := Variant{
			Target:        Target(spec.Target),
			TransitionEnd: Target(spec.TransitionEnd),
		}
		if spec.Transition != nil {
			transition, err := spec.Transition.build()
			if err != nil {
				return nil, configErr("motion.ParseVariants", fmt.Errorf("variant %q: %w", label, err))
			}
			v.Transition = transition
		}
		variants[label] = v
	}
	return variants, nil
}

func (s *transitionSpec) build() (*Transition, error) {
	t := &Transition{
		BeforeChildren:   s.BeforeChildren,
		AfterChildren:    s.AfterChildren,
		StaggerDirection: s.StaggerDirection,
	}
	var err error
	if t.Delay, err = parseDuration("delay", s.Delay); err != nil {
		return nil, err
	}
	if t.Duration, err = parseDuration("duration", s.Duration); err != nil {
		return nil, err
	}
	if t.StaggerChildren, err = parseDuration("staggerChildren", s.StaggerChildren); err != nil {
		return nil, err
	}
	if t.DelayChildren, err = parseDuration("delayChildren", s.DelayChildren); err != nil {
		return nil, err
	}
	if t.Ease, err = parseEase(s.Ease); err != nil {
		return nil, err
	}
	return t, nil
}

func parseDuration(field, s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, err)
	}
	return d, nil
}

func parseEase(name string) (func(float64) float64, error) {
	switch name {
	case "":
		return nil, nil
	case "linear":
		return tween.LinearCurve, nil
	case "ease":
		return tween.Ease, nil
	case "ease-in":
		return tween.EaseIn, nil
	case "ease-out":
		return tween.EaseOut, nil
	case "ease-in-out":
		return tween.EaseInOut, nil
	}
	if strings.HasPrefix(name, "cubic-bezier(") && strings.HasSuffix(name, ")") {
		parts := strings.Split(name[len("cubic-bezier("):len(name)-1], ",")
		if len(parts) != 4 {
			return nil, fmt.Errorf("ease: cubic-bezier needs 4 control values, got %d", len(parts))
		}
		nums := make([]float64, 4)
		for i, p := range parts {
			n, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				return nil, fmt.Errorf("ease: %w", err)
			}
			nums[i] = n
		}
		return tween.CubicBezier(nums[0], nums[1], nums[2], nums[3]), nil
	}
	return nil, fmt.Errorf("ease: unknown curve %q", name)
}

func configErr(op string, err error) error {
	return &errors.MotionError{
		Op:   op,
		Kind: errors.KindConfig,
		Err:  err,
	}
}
