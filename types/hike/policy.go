package hike

import (
	"fmt"
	"strings"
)

// ElevationPolicy decides which elevation figures a Summary carries.
// The two policies answer different questions about a hike
// (how much climbing vs. how high) and are never produced together.
type ElevationPolicy int

const (
	// ElevationGain accumulates ascent and descent, ignoring
	// per-step changes smaller than the noise threshold.
	ElevationGain ElevationPolicy = iota
	// ElevationMax reports the highest elevation reached.
	ElevationMax
)

func (p ElevationPolicy) String() string {
	switch p {
	case ElevationGain:
		return "gain"
	case ElevationMax:
		return "max"
	}
	return fmt.Sprintf("ElevationPolicy(%d)", int(p))
}

// ParseElevationPolicy accepts "gain" (or "ascent") and "max" (or "max_ele").
func ParseElevationPolicy(s string) (ElevationPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gain", "ascent", "":
		return ElevationGain, nil
	case "max", "max_ele":
		return ElevationMax, nil
	}
	return ElevationGain, fmt.Errorf("unknown elevation policy %q (want gain or max)", s)
}

func (p ElevationPolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *ElevationPolicy) UnmarshalText(text []byte) error {
	v, err := ParseElevationPolicy(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
